package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "dinero/internal/errors"
	"dinero/internal/models"
)

// defaultSourceType is applied when the caller does not tag the source.
const defaultSourceType = "other"

// sourceService handles money source business logic.
type sourceService struct {
	db *gorm.DB
}

// NewSourceService creates a new SourceServicer.
func NewSourceService(db *gorm.DB) SourceServicer {
	return &sourceService{db: db}
}

// GetUserSources returns all sources for a user, newest first.
func (s *sourceService) GetUserSources(userID uint) ([]models.MoneySource, error) {
	var sources []models.MoneySource
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&sources).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if sources == nil {
		sources = []models.MoneySource{}
	}
	return sources, nil
}

// GetSourceByID retrieves a source by ID for a specific user.
func (s *sourceService) GetSourceByID(userID, sourceID uint) (*models.MoneySource, error) {
	var source models.MoneySource
	if err := s.db.Where("id = ? AND user_id = ?", sourceID, userID).First(&source).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSourceNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &source, nil
}

// CreateSource creates a money source with an initial balance.
func (s *sourceService) CreateSource(userID uint, name, sourceType string, balance decimal.Decimal) (*models.MoneySource, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if balance.Sign() < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "balance must not be negative")
	}
	if sourceType == "" {
		sourceType = defaultSourceType
	}

	source := &models.MoneySource{
		UserID:  userID,
		Name:    name,
		Balance: balance,
		Type:    sourceType,
	}
	if err := s.db.Create(source).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return source, nil
}

// UpdateSourceBalance overwrites a source's balance. The update is scoped to
// the user; a missing row is acknowledged silently.
func (s *sourceService) UpdateSourceBalance(userID, sourceID uint, balance decimal.Decimal) error {
	if err := s.db.Model(&models.MoneySource{}).
		Where("id = ? AND user_id = ?", sourceID, userID).
		Update("balance", balance).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// DeleteSource deletes a source unless expenses still reference it, in which
// case it fails with a conflict naming the expense count.
func (s *sourceService) DeleteSource(userID, sourceID uint) error {
	var count int64
	if err := s.db.Model(&models.Expense{}).
		Where("source_id = ? AND user_id = ?", sourceID, userID).
		Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.WithMessage(apperrors.ErrSourceHasExpenses,
			fmt.Sprintf("Cannot delete source with %d expenses. Delete expenses first.", count))
	}

	if err := s.db.Where("id = ? AND user_id = ?", sourceID, userID).
		Delete(&models.MoneySource{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
