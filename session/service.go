package session

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/mileusna/useragent"
	"gorm.io/gorm"
)

type sessionService struct {
	db *gorm.DB
}

func NewSessionService(db *gorm.DB) Service {
	return &sessionService{db: db}
}

// hashToken keeps raw scs tokens out of the tracking table.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (s *sessionService) TrackSession(userID uint, token string, ipAddress, userAgent string, expiresAt time.Time) error {
	record := UserSession{
		UserID:    userID,
		Token:     hashToken(token),
		IPAddress: ipAddress,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
		LastUsed:  time.Now(),
		ExpiresAt: expiresAt,
	}
	return s.db.Create(&record).Error
}

func (s *sessionService) UpdateLastUsed(token string) error {
	return s.db.Model(&UserSession{}).
		Where("token = ?", hashToken(token)).
		Update("last_used", time.Now()).Error
}

func (s *sessionService) GetUserSessions(userID uint, currentToken string) ([]UserSession, error) {
	var sessions []UserSession
	err := s.db.Where("user_id = ? AND expires_at > ?", userID, time.Now()).
		Order("last_used DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}

	currentHash := hashToken(currentToken)
	for i := range sessions {
		if sessions[i].Token == currentHash {
			sessions[i].Current = true
		}
		ua := useragent.Parse(sessions[i].UserAgent)
		sessions[i].Browser = ua.Name
		sessions[i].OS = ua.OS
	}
	return sessions, nil
}

func (s *sessionService) RemoveSessionByToken(token string) error {
	return s.db.Where("token = ?", hashToken(token)).Delete(&UserSession{}).Error
}

func (s *sessionService) CleanupExpiredSessions() error {
	return s.db.Where("expires_at < ?", time.Now()).Delete(&UserSession{}).Error
}
