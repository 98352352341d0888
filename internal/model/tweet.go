package model

// Tweet is an append-only post. The auto-increment ID doubles as the
// timeline insertion order.
type Tweet struct {
	ID     uint   `json:"-" gorm:"primaryKey"`
	UserID uint   `json:"user_id" gorm:"not null;index"`
	Tweet  string `json:"tweet" gorm:"size:300;not null"`
}

// TimelineEntry is a single row of a timeline response.
type TimelineEntry struct {
	UserID uint   `json:"user_id"`
	Tweet  string `json:"tweet"`
}
