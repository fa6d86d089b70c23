package models

import "github.com/shopspring/decimal"

// MoneySource represents a named money account with a mutable balance and a
// free-form category tag such as "cash", "card" or "other".
type MoneySource struct {
	Base
	UserID  uint            `gorm:"not null;index" json:"user_id"`
	Name    string          `gorm:"not null" json:"name"`
	Balance decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"balance"`
	Type    string          `gorm:"not null" json:"type"`

	Expenses []Expense `gorm:"foreignKey:SourceID" json:"expenses,omitempty"`
}
