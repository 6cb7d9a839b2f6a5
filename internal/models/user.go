package models

// UserModel represents a registered traveler account.
type UserModel struct {
	Base
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-"     gorm:"not null"` // bcrypt, never exposed
}

func (UserModel) TableName() string { return "users" }
