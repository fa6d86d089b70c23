package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dinero/internal/services"
)

// StatisticsHandler handles the read-only aggregation requests.
type StatisticsHandler struct {
	userService       services.UserServicer
	statisticsService services.StatisticsServicer
}

// NewStatisticsHandler creates a new StatisticsHandler.
func NewStatisticsHandler(userService services.UserServicer, statisticsService services.StatisticsServicer) *StatisticsHandler {
	return &StatisticsHandler{userService: userService, statisticsService: statisticsService}
}

// resolveUser parses the telegram_id query parameter and resolves the user.
func (h *StatisticsHandler) resolveUser(c *gin.Context) (uint, error) {
	telegramID, err := telegramIDFromQuery(c)
	if err != nil {
		return 0, err
	}
	user, err := h.userService.GetOrCreateUser(telegramID, "")
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

// GetMonthly reports per-category sums for the current calendar month.
// @Summary     Monthly statistics
// @Tags        statistics
// @Produce     json
// @Param       telegram_id query int true "Telegram id"
// @Success     200 {object} services.MonthlySummary "Per-category sums and grand total"
// @Failure     400 {object} ErrorResponse "Missing telegram_id"
// @Router      /statistics/monthly [get]
func (h *StatisticsHandler) GetMonthly(c *gin.Context) {
	userID, err := h.resolveUser(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.statisticsService.MonthlySummary(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetWeekly reports per-day sums for the trailing 7 days.
// @Summary     Weekly statistics
// @Tags        statistics
// @Produce     json
// @Param       telegram_id query int true "Telegram id"
// @Success     200 {object} services.WeeklySummary "Per-day sums, ascending"
// @Failure     400 {object} ErrorResponse "Missing telegram_id"
// @Router      /statistics/weekly [get]
func (h *StatisticsHandler) GetWeekly(c *gin.Context) {
	userID, err := h.resolveUser(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.statisticsService.WeeklySummary(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetSources reports spend per source.
// @Summary     Per-source statistics
// @Tags        statistics
// @Produce     json
// @Param       telegram_id query int true "Telegram id"
// @Success     200 {object} services.SourceSummary "Spend per source, descending"
// @Failure     400 {object} ErrorResponse "Missing telegram_id"
// @Router      /statistics/sources [get]
func (h *StatisticsHandler) GetSources(c *gin.Context) {
	userID, err := h.resolveUser(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.statisticsService.SourceSummary(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
