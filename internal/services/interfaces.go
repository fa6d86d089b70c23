package services

import (
	"github.com/shopspring/decimal"

	"dinero/internal/models"
)

// UserServicer defines the contract for user resolution.
type UserServicer interface {
	GetOrCreateUser(telegramID int64, username string) (*models.User, error)
}

// SourceServicer defines the contract for money source management.
type SourceServicer interface {
	GetUserSources(userID uint) ([]models.MoneySource, error)
	GetSourceByID(userID, sourceID uint) (*models.MoneySource, error)
	CreateSource(userID uint, name, sourceType string, balance decimal.Decimal) (*models.MoneySource, error)
	UpdateSourceBalance(userID, sourceID uint, balance decimal.Decimal) error
	DeleteSource(userID, sourceID uint) error
}

// ExpenseServicer defines the contract for expense management.
type ExpenseServicer interface {
	GetUserExpenses(userID uint, limit int) ([]models.ExpenseWithSource, error)
	CreateExpense(userID, sourceID uint, amount decimal.Decimal, category, note string) (*models.Expense, error)
	DeleteExpense(userID, expenseID uint) error
}

// CategoryTotal is a per-category sum within the monthly summary.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// MonthlySummary aggregates spending for the calendar month containing "now".
type MonthlySummary struct {
	Categories []CategoryTotal `json:"categories"`
	Total      decimal.Decimal `json:"total"`
}

// DailyTotal is a per-day sum within the weekly summary.
type DailyTotal struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// WeeklySummary covers the trailing 7-day window, ascending by date.
type WeeklySummary struct {
	Daily []DailyTotal `json:"daily"`
}

// SourceSpend pairs a source with the total amount spent against it.
type SourceSpend struct {
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
	Spent   decimal.Decimal `json:"spent"`
}

// SourceSummary lists spend per source, highest spend first.
type SourceSummary struct {
	Sources []SourceSpend `json:"sources"`
}

// StatisticsServicer defines the contract for the read-only aggregations.
type StatisticsServicer interface {
	MonthlySummary(userID uint) (*MonthlySummary, error)
	WeeklySummary(userID uint) (*WeeklySummary, error)
	SourceSummary(userID uint) (*SourceSummary, error)
}
