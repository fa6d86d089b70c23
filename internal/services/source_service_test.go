package services

import (
	"testing"
	"time"

	"dinero/internal/models"
	"dinero/internal/testutil"

	"github.com/shopspring/decimal"
)

func TestCreateSource(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSourceService(db)
		user := testutil.CreateTestUser(t, db)

		source, err := svc.CreateSource(user.ID, "Wallet", "cash", testutil.D(t, "100"))
		testutil.AssertNoError(t, err)

		if source.ID == 0 {
			t.Fatal("expected non-zero source ID")
		}
		testutil.AssertDecimalEqual(t, "100", source.Balance)
		if source.Type != "cash" {
			t.Errorf("expected type cash, got %q", source.Type)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSourceService(db)
		user := testutil.CreateTestUser(t, db)

		source, err := svc.CreateSource(user.ID, "Wallet", "", decimal.Zero)
		testutil.AssertNoError(t, err)

		if source.Type != "other" {
			t.Errorf("expected default type other, got %q", source.Type)
		}
		testutil.AssertDecimalEqual(t, "0", source.Balance)
	})

	t.Run("missing_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSourceService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateSource(user.ID, "", "cash", decimal.Zero)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("negative_balance", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSourceService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateSource(user.ID, "Wallet", "cash", testutil.D(t, "-1"))
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserSources(t *testing.T) {
	t.Run("newest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSourceService(db)
		user := testutil.CreateTestUser(t, db)

		first := testutil.CreateTestSource(t, db, user.ID, decimal.Zero)
		second := testutil.CreateTestSource(t, db, user.ID, decimal.Zero)

		sources, err := svc.GetUserSources(user.ID)
		testutil.AssertNoError(t, err)

		if len(sources) != 2 {
			t.Fatalf("expected 2 sources, got %d", len(sources))
		}
		if sources[0].ID != second.ID || sources[1].ID != first.ID {
			t.Errorf("expected newest first, got order %d, %d", sources[0].ID, sources[1].ID)
		}
	})

	t.Run("scoped_to_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSourceService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)
		testutil.CreateTestSource(t, db, user1.ID, decimal.Zero)

		sources, err := svc.GetUserSources(user2.ID)
		testutil.AssertNoError(t, err)

		if len(sources) != 0 {
			t.Errorf("expected no sources for other user, got %d", len(sources))
		}
	})
}

func TestUpdateSourceBalance(t *testing.T) {
	t.Run("overwrites", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSourceService(db)
		user := testutil.CreateTestUser(t, db)
		source := testutil.CreateTestSource(t, db, user.ID, testutil.D(t, "100"))

		err := svc.UpdateSourceBalance(user.ID, source.ID, testutil.D(t, "250.50"))
		testutil.AssertNoError(t, err)

		updated, err := svc.GetSourceByID(user.ID, source.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, "250.50", updated.Balance)
	})

	t.Run("missing_source_is_silent_ack", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSourceService(db)
		user := testutil.CreateTestUser(t, db)

		err := svc.UpdateSourceBalance(user.ID, 99999, testutil.D(t, "10"))
		testutil.AssertNoError(t, err)
	})

	t.Run("other_users_source_untouched", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSourceService(db)
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		source := testutil.CreateTestSource(t, db, owner.ID, testutil.D(t, "100"))

		err := svc.UpdateSourceBalance(other.ID, source.ID, testutil.D(t, "0"))
		testutil.AssertNoError(t, err)

		unchanged, err := svc.GetSourceByID(owner.ID, source.ID)
		testutil.AssertNoError(t, err)
		testutil.AssertDecimalEqual(t, "100", unchanged.Balance)
	})
}

func TestDeleteSource(t *testing.T) {
	t.Run("clean_source_is_deleted", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSourceService(db)
		user := testutil.CreateTestUser(t, db)
		source := testutil.CreateTestSource(t, db, user.ID, decimal.Zero)

		err := svc.DeleteSource(user.ID, source.ID)
		testutil.AssertNoError(t, err)

		_, err = svc.GetSourceByID(user.ID, source.ID)
		testutil.AssertAppError(t, err, "SOURCE_NOT_FOUND")
	})

	t.Run("blocked_while_expenses_reference_it", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSourceService(db)
		user := testutil.CreateTestUser(t, db)
		source := testutil.CreateTestSource(t, db, user.ID, testutil.D(t, "100"))
		testutil.CreateTestExpense(t, db, user.ID, source.ID, testutil.D(t, "10"), "food")
		testutil.CreateTestExpense(t, db, user.ID, source.ID, testutil.D(t, "20"), "transport")

		err := svc.DeleteSource(user.ID, source.ID)
		testutil.AssertAppError(t, err, "SOURCE_HAS_EXPENSES")
		if err.Error() != "Cannot delete source with 2 expenses. Delete expenses first." {
			t.Errorf("conflict message should name the expense count, got %q", err.Error())
		}

		// Source survives.
		_, getErr := svc.GetSourceByID(user.ID, source.ID)
		testutil.AssertNoError(t, getErr)
	})

	t.Run("unblocked_after_expenses_are_gone", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSourceService(db)
		user := testutil.CreateTestUser(t, db)
		source := testutil.CreateTestSource(t, db, user.ID, testutil.D(t, "100"))
		expense := testutil.CreateTestExpense(t, db, user.ID, source.ID, testutil.D(t, "10"), "food")

		if err := db.Delete(&models.Expense{}, expense.ID).Error; err != nil {
			t.Fatalf("failed to delete expense: %v", err)
		}

		err := svc.DeleteSource(user.ID, source.ID)
		testutil.AssertNoError(t, err)
	})
}

func TestGetSourceByID(t *testing.T) {
	t.Run("wrong_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSourceService(db)
		owner := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)
		source := testutil.CreateTestSource(t, db, owner.ID, decimal.Zero)

		_, err := svc.GetSourceByID(other.ID, source.ID)
		testutil.AssertAppError(t, err, "SOURCE_NOT_FOUND")
	})

	t.Run("created_at_is_set", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewSourceService(db)
		user := testutil.CreateTestUser(t, db)
		source := testutil.CreateTestSource(t, db, user.ID, decimal.Zero)

		got, err := svc.GetSourceByID(user.ID, source.ID)
		testutil.AssertNoError(t, err)
		if got.CreatedAt.IsZero() || got.CreatedAt.After(time.Now().Add(time.Minute)) {
			t.Errorf("unexpected created_at %v", got.CreatedAt)
		}
	})
}
