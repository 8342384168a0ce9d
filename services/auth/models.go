package auth

import "gorm.io/gorm"

// User is an identity-provider account, distinct from the vault's stored
// credential records.
type User struct {
	gorm.Model
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	Name     string `json:"name"`
}
