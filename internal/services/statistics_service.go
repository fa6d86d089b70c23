package services

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "dinero/internal/errors"
	"dinero/internal/models"
)

// statisticsService implements the read-only aggregation queries. The date
// arithmetic differs between the two engines, so each query is branched on
// the dialect the same way the storage selection is.
type statisticsService struct {
	db *gorm.DB
}

// NewStatisticsService creates a new StatisticsServicer.
func NewStatisticsService(db *gorm.DB) StatisticsServicer {
	return &statisticsService{db: db}
}

func (s *statisticsService) postgres() bool {
	return s.db.Dialector.Name() == "postgres"
}

// MonthlySummary sums expenses by category for the calendar month containing
// "now", plus the grand total for that month.
func (s *statisticsService) MonthlySummary(userID uint) (*MonthlySummary, error) {
	monthFilter := "strftime('%Y-%m', created_at) = strftime('%Y-%m', 'now')"
	if s.postgres() {
		monthFilter = "date_trunc('month', created_at) = date_trunc('month', CURRENT_DATE)"
	}

	var categories []CategoryTotal
	if err := s.db.Model(&models.Expense{}).
		Select("category, SUM(amount) AS total").
		Where("user_id = ?", userID).
		Where(monthFilter).
		Group("category").
		Order("total DESC").
		Scan(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if categories == nil {
		categories = []CategoryTotal{}
	}

	total := decimal.Zero
	for _, c := range categories {
		total = total.Add(c.Total)
	}

	return &MonthlySummary{Categories: categories, Total: total}, nil
}

// WeeklySummary sums expenses by calendar day for the trailing 7-day window,
// ascending by date.
func (s *statisticsService) WeeklySummary(userID uint) (*WeeklySummary, error) {
	day := "DATE(created_at)"
	windowFilter := "created_at >= date('now', '-7 days')"
	if s.postgres() {
		// to_char keeps the grouped day a plain string on the wire.
		day = "to_char(created_at, 'YYYY-MM-DD')"
		windowFilter = "created_at >= CURRENT_DATE - INTERVAL '7 days'"
	}

	var daily []DailyTotal
	if err := s.db.Model(&models.Expense{}).
		Select(day+" AS date, SUM(amount) AS total").
		Where("user_id = ?", userID).
		Where(windowFilter).
		Group(day).
		Order("date ASC").
		Scan(&daily).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if daily == nil {
		daily = []DailyTotal{}
	}

	return &WeeklySummary{Daily: daily}, nil
}

// SourceSummary reports, for every source the user owns, its name, current
// balance, and total spent against it. Sources with no expenses report zero
// spend through the LEFT JOIN.
func (s *statisticsService) SourceSummary(userID uint) (*SourceSummary, error) {
	var sources []SourceSpend
	if err := s.db.Table("money_sources").
		Select("money_sources.name, money_sources.balance, COALESCE(SUM(expenses.amount), 0) AS spent").
		Joins("LEFT JOIN expenses ON expenses.source_id = money_sources.id").
		Where("money_sources.user_id = ?", userID).
		Group("money_sources.id, money_sources.name, money_sources.balance").
		Order("spent DESC").
		Scan(&sources).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if sources == nil {
		sources = []SourceSpend{}
	}

	return &SourceSummary{Sources: sources}, nil
}
