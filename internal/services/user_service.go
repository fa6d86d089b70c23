package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "dinero/internal/errors"
	"dinero/internal/models"
)

// userService handles user resolution.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// GetOrCreateUser resolves a Telegram id to the internal user row, creating
// it on first reference. Repeated calls with the same id return the same row;
// the username is only stored on creation.
func (s *userService) GetOrCreateUser(telegramID int64, username string) (*models.User, error) {
	if telegramID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "telegram_id is required")
	}

	var user models.User
	err := s.db.Where("telegram_id = ?", telegramID).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user = models.User{TelegramID: telegramID, Username: username}
	if createErr := s.db.Create(&user).Error; createErr != nil {
		// Lost a creation race: another request inserted this telegram_id
		// first, so the unique index rejected ours. Use theirs.
		var existing models.User
		if findErr := s.db.Where("telegram_id = ?", telegramID).First(&existing).Error; findErr == nil {
			return &existing, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, createErr)
	}

	return &user, nil
}
