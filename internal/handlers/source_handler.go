package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "dinero/internal/errors"
	"dinero/internal/services"
)

// SourceHandler handles money source requests.
type SourceHandler struct {
	userService   services.UserServicer
	sourceService services.SourceServicer
}

// NewSourceHandler creates a new SourceHandler.
func NewSourceHandler(userService services.UserServicer, sourceService services.SourceServicer) *SourceHandler {
	return &SourceHandler{userService: userService, sourceService: sourceService}
}

// CreateSourceRequest represents the request payload for creating a source.
type CreateSourceRequest struct {
	TelegramID int64           `json:"telegram_id" binding:"required"`
	Name       string          `json:"name" binding:"required"`
	Balance    decimal.Decimal `json:"balance" binding:"omitempty,gte=0"`
	Type       string          `json:"type"`
}

// UpdateSourceRequest represents the request payload for overwriting a
// source's balance. The new value is intentionally unvalidated.
type UpdateSourceRequest struct {
	TelegramID int64           `json:"telegram_id" binding:"required"`
	Balance    decimal.Decimal `json:"balance"`
}

// GetSources lists the user's sources, newest first.
// @Summary     List money sources
// @Tags        sources
// @Produce     json
// @Param       telegram_id query int true "Telegram id"
// @Success     200 {array} models.MoneySource "Sources, newest first"
// @Failure     400 {object} ErrorResponse "Missing telegram_id"
// @Router      /sources [get]
func (h *SourceHandler) GetSources(c *gin.Context) {
	telegramID, err := telegramIDFromQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetOrCreateUser(telegramID, "")
	if err != nil {
		respondWithError(c, err)
		return
	}

	sources, err := h.sourceService.GetUserSources(user.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, sources)
}

// CreateSource adds a money source.
// @Summary     Create a money source
// @Tags        sources
// @Accept      json
// @Produce     json
// @Param       request body CreateSourceRequest true "Source details"
// @Success     201 {object} map[string]interface{} "Created id"
// @Failure     400 {object} ErrorResponse "Missing required fields"
// @Router      /sources [post]
func (h *SourceHandler) CreateSource(c *gin.Context) {
	var req CreateSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "telegram_id and name are required"))
		return
	}

	user, err := h.userService.GetOrCreateUser(req.TelegramID, "")
	if err != nil {
		respondWithError(c, err)
		return
	}

	source, err := h.sourceService.CreateSource(user.ID, req.Name, req.Type, req.Balance)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": source.ID, "message": "Source added successfully"})
}

// UpdateSource overwrites a source's balance.
// @Summary     Update a source's balance
// @Tags        sources
// @Accept      json
// @Produce     json
// @Param       id path int true "Source ID"
// @Param       request body UpdateSourceRequest true "New balance"
// @Success     200 {object} map[string]interface{} "Ack"
// @Failure     400 {object} ErrorResponse "Missing telegram_id"
// @Router      /sources/{id} [put]
func (h *SourceHandler) UpdateSource(c *gin.Context) {
	sourceID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "telegram_id is required"))
		return
	}

	user, err := h.userService.GetOrCreateUser(req.TelegramID, "")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.sourceService.UpdateSourceBalance(user.ID, sourceID, req.Balance); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Source updated successfully"})
}

// DeleteSource deletes a source with no remaining expenses.
// @Summary     Delete a money source
// @Description Fails while any expense still references the source
// @Tags        sources
// @Produce     json
// @Param       id path int true "Source ID"
// @Param       telegram_id query int true "Telegram id"
// @Success     200 {object} map[string]interface{} "Ack"
// @Failure     400 {object} ErrorResponse "Missing telegram_id or source still referenced"
// @Router      /sources/{id} [delete]
func (h *SourceHandler) DeleteSource(c *gin.Context) {
	sourceID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	telegramID, err := telegramIDFromQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetOrCreateUser(telegramID, "")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.sourceService.DeleteSource(user.ID, sourceID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Source deleted successfully"})
}
