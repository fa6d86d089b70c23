package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"dinero/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// D parses a decimal literal, failing the test on malformed input.
func D(t *testing.T, value string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(value)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", value, err)
	}
	return d
}

// CreateTestUser creates a user with a unique telegram id.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	n := nextID()
	user := &models.User{
		TelegramID: 100000 + n,
		Username:   fmt.Sprintf("user%d", n),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestSource creates a money source with the given balance.
func CreateTestSource(t *testing.T, db *gorm.DB, userID uint, balance decimal.Decimal) *models.MoneySource {
	t.Helper()

	source := &models.MoneySource{
		UserID:  userID,
		Name:    fmt.Sprintf("Test Source %d", nextID()),
		Balance: balance,
		Type:    "cash",
	}
	if err := db.Create(source).Error; err != nil {
		t.Fatalf("failed to create test source: %v", err)
	}
	return source
}

// CreateTestExpense creates an expense row directly, without touching the
// source's balance.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID, sourceID uint, amount decimal.Decimal, category string) *models.Expense {
	t.Helper()
	return CreateTestExpenseAt(t, db, userID, sourceID, amount, category, time.Time{})
}

// CreateTestExpenseAt creates an expense row with an explicit creation time,
// for exercising the date-windowed statistics.
func CreateTestExpenseAt(t *testing.T, db *gorm.DB, userID, sourceID uint, amount decimal.Decimal, category string, createdAt time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:   userID,
		SourceID: sourceID,
		Amount:   amount,
		Category: category,
	}
	if !createdAt.IsZero() {
		expense.CreatedAt = createdAt
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}
