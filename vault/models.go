package vault

import (
	"strings"
	"time"
)

// Account is a stored credential record. Password and Secret are held in
// cleartext by the underlying store; keeping every access behind the Store
// interface is what allows encryption-at-rest to be added without touching
// call sites.
type Account struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"not null"`
	Password  string    `json:"password" gorm:"not null"`
	Secret    string    `json:"secret"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Account) HasSecret() bool {
	return strings.TrimSpace(a.Secret) != ""
}

func (a *Account) HasPassword() bool {
	return a.Password != ""
}

// SafeAccount is the listing view with credentials stripped.
type SafeAccount struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	HasSecret   bool      `json:"hasSecret"`
	HasPassword bool      `json:"hasPassword"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (a *Account) Safe() SafeAccount {
	return SafeAccount{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		HasSecret:   a.HasSecret(),
		HasPassword: a.HasPassword(),
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

type Announcement struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64"`
	Message   string    `json:"message" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
