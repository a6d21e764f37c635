package models

import "gorm.io/gorm"

// Admin is an operator identity seeded at startup. Username is the login key.
type Admin struct {
	gorm.Model
	Username string `json:"username" gorm:"unique;not null"`
	Password string `json:"-" gorm:"not null"`
}
