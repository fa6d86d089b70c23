package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "dinero/internal/errors"
	"dinero/internal/models"
)

// DefaultExpenseLimit caps the expense listing when the caller does not ask
// for a specific count.
const DefaultExpenseLimit = 50

// expenseService handles expense business logic.
type expenseService struct {
	db            *gorm.DB
	sourceService SourceServicer
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB, sourceService SourceServicer) ExpenseServicer {
	return &expenseService{db: db, sourceService: sourceService}
}

// GetUserExpenses returns up to limit expenses for a user, newest first,
// each enriched with its source's name and type.
func (s *expenseService) GetUserExpenses(userID uint, limit int) ([]models.ExpenseWithSource, error) {
	if limit <= 0 {
		limit = DefaultExpenseLimit
	}

	var rows []models.ExpenseWithSource
	err := s.db.Table("expenses").
		Select("expenses.id, expenses.user_id, expenses.source_id, expenses.amount, expenses.category, expenses.note, expenses.created_at, money_sources.name AS source_name, money_sources.type AS source_type").
		Joins("JOIN money_sources ON money_sources.id = expenses.source_id").
		Where("expenses.user_id = ?", userID).
		Order("expenses.created_at DESC, expenses.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if rows == nil {
		rows = []models.ExpenseWithSource{}
	}
	return rows, nil
}

// CreateExpense records an expense and debits its source's balance within one
// transaction. The debit is a single conditional update, so two concurrent
// expenses can never drive the balance negative.
func (s *expenseService) CreateExpense(userID, sourceID uint, amount decimal.Decimal, category, note string) (*models.Expense, error) {
	if sourceID == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "source_id is required")
	}
	if amount.Sign() <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}

	// Ensure the source exists for this user before touching balances.
	if _, err := s.sourceService.GetSourceByID(userID, sourceID); err != nil {
		return nil, err
	}

	expense := &models.Expense{
		UserID:   userID,
		SourceID: sourceID,
		Amount:   amount,
		Category: category,
		Note:     note,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Debit only while the balance still covers the amount. Zero rows
		// affected means another expense drained the source first.
		res := tx.Model(&models.MoneySource{}).
			Where("id = ? AND user_id = ? AND balance >= ?", sourceID, userID, amount).
			Update("balance", gorm.Expr("balance - ?", amount))
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrInsufficientBalance
		}

		if err := tx.Create(expense).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return expense, nil
}

// DeleteExpense deletes an expense and credits its amount back to the source
// within one transaction.
func (s *expenseService) DeleteExpense(userID, expenseID uint) error {
	var expense models.Expense
	if err := s.db.Where("id = ? AND user_id = ?", expenseID, userID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrExpenseNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		// The row delete gates the credit: if a racing request already
		// removed this expense, rolling back prevents a double restore.
		res := tx.Where("id = ? AND user_id = ?", expenseID, userID).Delete(&models.Expense{})
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrExpenseNotFound
		}

		if err := tx.Model(&models.MoneySource{}).
			Where("id = ?", expense.SourceID).
			Update("balance", gorm.Expr("balance + ?", expense.Amount)).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}
