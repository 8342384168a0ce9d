package session

import "time"

// UserSession is the tracking record for an active sign-in, one row per
// device/browser.
type UserSession struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Token     string    `json:"-" gorm:"uniqueIndex;size:255;not null"`
	IPAddress string    `json:"ip_address" gorm:"size:45"`
	UserAgent string    `json:"-" gorm:"size:500"`
	Browser   string    `json:"browser" gorm:"-"`
	OS        string    `json:"os" gorm:"-"`
	Current   bool      `json:"current" gorm:"-"`
	CreatedAt time.Time `json:"created_at"`
	LastUsed  time.Time `json:"last_used"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (UserSession) TableName() string {
	return "user_sessions"
}

// Service tracks active sessions alongside the scs store so users can see
// and revoke their other devices.
type Service interface {
	TrackSession(userID uint, token string, ipAddress, userAgent string, expiresAt time.Time) error
	UpdateLastUsed(token string) error
	GetUserSessions(userID uint, currentToken string) ([]UserSession, error)
	RemoveSessionByToken(token string) error
	CleanupExpiredSessions() error
}
