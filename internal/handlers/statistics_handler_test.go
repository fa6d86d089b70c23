package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "dinero/internal/errors"
	"dinero/internal/models"
	"dinero/internal/services"
)

// --- mock statistics service ---

type mockStatisticsService struct {
	monthlySummaryFn func(userID uint) (*services.MonthlySummary, error)
	weeklySummaryFn  func(userID uint) (*services.WeeklySummary, error)
	sourceSummaryFn  func(userID uint) (*services.SourceSummary, error)
}

func (m *mockStatisticsService) MonthlySummary(userID uint) (*services.MonthlySummary, error) {
	if m.monthlySummaryFn != nil {
		return m.monthlySummaryFn(userID)
	}
	return &services.MonthlySummary{Categories: []services.CategoryTotal{}}, nil
}

func (m *mockStatisticsService) WeeklySummary(userID uint) (*services.WeeklySummary, error) {
	if m.weeklySummaryFn != nil {
		return m.weeklySummaryFn(userID)
	}
	return &services.WeeklySummary{Daily: []services.DailyTotal{}}, nil
}

func (m *mockStatisticsService) SourceSummary(userID uint) (*services.SourceSummary, error) {
	if m.sourceSummaryFn != nil {
		return m.sourceSummaryFn(userID)
	}
	return &services.SourceSummary{Sources: []services.SourceSpend{}}, nil
}

// verify interface compliance
var _ services.StatisticsServicer = (*mockStatisticsService)(nil)

func setupStatisticsRouter(handler *StatisticsHandler) *gin.Engine {
	r := gin.New()
	r.GET("/statistics/monthly", handler.GetMonthly)
	r.GET("/statistics/weekly", handler.GetWeekly)
	r.GET("/statistics/sources", handler.GetSources)
	return r
}

// --- tests ---

func TestStatisticsHandler_GetMonthly(t *testing.T) {
	t.Run("returns 200 with categories and total", func(t *testing.T) {
		statsSvc := &mockStatisticsService{
			monthlySummaryFn: func(_ uint) (*services.MonthlySummary, error) {
				return &services.MonthlySummary{
					Categories: []services.CategoryTotal{
						{Category: "food", Total: decimal.NewFromInt(30)},
						{Category: "transport", Total: decimal.NewFromInt(5)},
					},
					Total: decimal.NewFromInt(35),
				}, nil
			},
		}
		handler := NewStatisticsHandler(&mockUserService{}, statsSvc)
		r := setupStatisticsRouter(handler)

		rec := doRequest(r, "GET", "/statistics/monthly?telegram_id=123", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		categories := result["categories"].([]interface{})
		if len(categories) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(categories))
		}
		first := categories[0].(map[string]interface{})
		if first["category"] != "food" {
			t.Errorf("expected food first, got %v", first["category"])
		}
	})

	t.Run("returns 400 on missing telegram_id", func(t *testing.T) {
		handler := NewStatisticsHandler(&mockUserService{}, &mockStatisticsService{})
		r := setupStatisticsRouter(handler)

		rec := doRequest(r, "GET", "/statistics/monthly", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 500 when the service fails", func(t *testing.T) {
		statsSvc := &mockStatisticsService{
			monthlySummaryFn: func(_ uint) (*services.MonthlySummary, error) {
				return nil, apperrors.ErrInternalServer
			},
		}
		handler := NewStatisticsHandler(&mockUserService{}, statsSvc)
		r := setupStatisticsRouter(handler)

		rec := doRequest(r, "GET", "/statistics/monthly?telegram_id=123", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}

func TestStatisticsHandler_GetWeekly(t *testing.T) {
	t.Run("returns 200 with daily rows", func(t *testing.T) {
		statsSvc := &mockStatisticsService{
			weeklySummaryFn: func(_ uint) (*services.WeeklySummary, error) {
				return &services.WeeklySummary{
					Daily: []services.DailyTotal{
						{Date: "2026-08-28", Total: decimal.NewFromInt(20)},
						{Date: "2026-08-30", Total: decimal.NewFromInt(25)},
					},
				}, nil
			},
		}
		handler := NewStatisticsHandler(&mockUserService{}, statsSvc)
		r := setupStatisticsRouter(handler)

		rec := doRequest(r, "GET", "/statistics/weekly?telegram_id=123", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		daily := result["daily"].([]interface{})
		if len(daily) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(daily))
		}
		first := daily[0].(map[string]interface{})
		if first["date"] != "2026-08-28" {
			t.Errorf("expected 2026-08-28 first, got %v", first["date"])
		}
	})

	t.Run("resolves the user before querying", func(t *testing.T) {
		var gotUserID uint
		userSvc := &mockUserService{
			getOrCreateUserFn: func(telegramID int64, _ string) (*models.User, error) {
				return &models.User{Base: models.Base{ID: 77}, TelegramID: telegramID}, nil
			},
		}
		statsSvc := &mockStatisticsService{
			weeklySummaryFn: func(userID uint) (*services.WeeklySummary, error) {
				gotUserID = userID
				return &services.WeeklySummary{Daily: []services.DailyTotal{}}, nil
			},
		}
		handler := NewStatisticsHandler(userSvc, statsSvc)
		r := setupStatisticsRouter(handler)

		doRequest(r, "GET", "/statistics/weekly?telegram_id=123", "")

		if gotUserID != 77 {
			t.Errorf("expected user id 77, got %d", gotUserID)
		}
	})
}

func TestStatisticsHandler_GetSources(t *testing.T) {
	t.Run("returns 200 with per-source spend", func(t *testing.T) {
		statsSvc := &mockStatisticsService{
			sourceSummaryFn: func(_ uint) (*services.SourceSummary, error) {
				return &services.SourceSummary{
					Sources: []services.SourceSpend{
						{Name: "Cash", Balance: decimal.NewFromInt(425), Spent: decimal.NewFromInt(75)},
						{Name: "Card", Balance: decimal.NewFromInt(200), Spent: decimal.Zero},
					},
				}, nil
			},
		}
		handler := NewStatisticsHandler(&mockUserService{}, statsSvc)
		r := setupStatisticsRouter(handler)

		rec := doRequest(r, "GET", "/statistics/sources?telegram_id=123", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		sources := result["sources"].([]interface{})
		if len(sources) != 2 {
			t.Fatalf("expected 2 sources, got %d", len(sources))
		}
		first := sources[0].(map[string]interface{})
		if first["name"] != "Cash" {
			t.Errorf("expected Cash first, got %v", first["name"])
		}
	})

	t.Run("returns 400 on missing telegram_id", func(t *testing.T) {
		handler := NewStatisticsHandler(&mockUserService{}, &mockStatisticsService{})
		r := setupStatisticsRouter(handler)

		rec := doRequest(r, "GET", "/statistics/sources", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
