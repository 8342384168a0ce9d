package vault

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/happywht/gg-mange/services/logging"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("email and password are required")
)

// Store is the persistence boundary for accounts and announcements. Updates
// are last-writer-wins; there is no optimistic locking.
type Store interface {
	CreateAccount(account *Account) error
	GetAccount(id string) (*Account, error)
	ListAccounts() ([]Account, error)
	UpdateAccount(account *Account) (bool, error)
	DeleteAccount(id string) (bool, error)

	PublishAnnouncement(message string) (*Announcement, error)
	CurrentAnnouncement() (*Announcement, error)
	DeleteAnnouncements() (int64, error)
}

type gormStore struct {
	db     *gorm.DB
	logger *logging.Service
}

func NewStore(db *gorm.DB, logger *logging.Service) Store {
	return &gormStore{db: db, logger: logger}
}

func (s *gormStore) CreateAccount(account *Account) error {
	if strings.TrimSpace(account.Email) == "" || account.Password == "" {
		return ErrValidation
	}

	if account.ID == "" {
		account.ID = uuid.New().String()
	}

	if err := s.db.Create(account).Error; err != nil {
		s.logger.Error("failed to create account",
			zap.Error(err),
			zap.String("account_id", account.ID))
		return fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("account created", zap.String("account_id", account.ID))
	return nil
}

func (s *gormStore) GetAccount(id string) (*Account, error) {
	var account Account
	if err := s.db.First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Error("failed to load account",
			zap.Error(err),
			zap.String("account_id", id))
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	return &account, nil
}

func (s *gormStore) ListAccounts() ([]Account, error) {
	var accounts []Account
	if err := s.db.Order("created_at DESC").Find(&accounts).Error; err != nil {
		s.logger.Error("failed to list accounts", zap.Error(err))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *gormStore) UpdateAccount(account *Account) (bool, error) {
	if strings.TrimSpace(account.Email) == "" || account.Password == "" {
		return false, ErrValidation
	}

	result := s.db.Model(&Account{}).
		Where("id = ?", account.ID).
		Updates(map[string]any{
			"name":     account.Name,
			"email":    account.Email,
			"password": account.Password,
			"secret":   account.Secret,
		})
	if result.Error != nil {
		s.logger.Error("failed to update account",
			zap.Error(result.Error),
			zap.String("account_id", account.ID))
		return false, fmt.Errorf("failed to update account: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (s *gormStore) DeleteAccount(id string) (bool, error) {
	result := s.db.Delete(&Account{}, "id = ?", id)
	if result.Error != nil {
		s.logger.Error("failed to delete account",
			zap.Error(result.Error),
			zap.String("account_id", id))
		return false, fmt.Errorf("failed to delete account: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		s.logger.Info("account deleted", zap.String("account_id", id))
	}
	return result.RowsAffected > 0, nil
}

func (s *gormStore) PublishAnnouncement(message string) (*Announcement, error) {
	announcement := &Announcement{
		ID:      uuid.New().String(),
		Message: message,
	}

	if err := s.db.Create(announcement).Error; err != nil {
		s.logger.Error("failed to publish announcement", zap.Error(err))
		return nil, fmt.Errorf("failed to publish announcement: %w", err)
	}

	s.logger.Info("announcement published", zap.String("announcement_id", announcement.ID))
	return announcement, nil
}

// CurrentAnnouncement returns the newest announcement; older rows are
// retained but never surfaced.
func (s *gormStore) CurrentAnnouncement() (*Announcement, error) {
	var announcement Announcement
	err := s.db.Order("created_at DESC").First(&announcement).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Error("failed to load announcement", zap.Error(err))
		return nil, fmt.Errorf("failed to load announcement: %w", err)
	}
	return &announcement, nil
}

func (s *gormStore) DeleteAnnouncements() (int64, error) {
	result := s.db.Where("1 = 1").Delete(&Announcement{})
	if result.Error != nil {
		s.logger.Error("failed to delete announcements", zap.Error(result.Error))
		return 0, fmt.Errorf("failed to delete announcements: %w", result.Error)
	}
	return result.RowsAffected, nil
}
