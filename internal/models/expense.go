package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a debit transaction against a money source. Creating an
// expense debits the source's balance by the same amount; deleting it credits
// the amount back.
type Expense struct {
	Base
	UserID   uint            `gorm:"not null;index" json:"user_id"`
	SourceID uint            `gorm:"not null;index" json:"source_id"`
	Amount   decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Category string          `gorm:"not null" json:"category"`
	Note     string          `json:"note"`

	Source MoneySource `gorm:"foreignKey:SourceID" json:"-"`
}

// ExpenseWithSource is an expense row enriched with its source's name and
// type, as returned by the expense listing.
type ExpenseWithSource struct {
	ID         uint            `json:"id"`
	UserID     uint            `json:"user_id"`
	SourceID   uint            `json:"source_id"`
	Amount     decimal.Decimal `json:"amount"`
	Category   string          `json:"category"`
	Note       string          `json:"note"`
	CreatedAt  time.Time       `json:"created_at"`
	SourceName string          `json:"source_name"`
	SourceType string          `json:"source_type"`
}
