package model

// Follow is a directed edge: UserID follows FollowUserID. The composite
// primary key keeps the pair unique.
type Follow struct {
	UserID       uint `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	FollowUserID uint `json:"follow_user_id" gorm:"primaryKey;autoIncrement:false"`
}

// TableName keeps the historical table name.
func (Follow) TableName() string { return "users_follow_list" }
