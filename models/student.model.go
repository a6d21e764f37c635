package models

import "gorm.io/gorm"

// Student is a learner identity. The email is the login key and never
// changes; the password field always holds a bcrypt hash.
type Student struct {
	gorm.Model
	Email    string `json:"email" gorm:"unique;not null"`
	Password string `json:"-" gorm:"not null"`
	Name     string `json:"name" gorm:"default:''"`
}
