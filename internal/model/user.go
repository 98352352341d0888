package model

// User represents a registered account.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"size:255;not null"`
	Email        string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Profile      string `json:"profile" gorm:"size:2000"`
	PasswordHash string `json:"-" gorm:"column:hashed_password;size:255;not null"` // Never expose in JSON
}
