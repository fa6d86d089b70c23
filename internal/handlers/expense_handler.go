package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "dinero/internal/errors"
	"dinero/internal/services"
)

// ExpenseHandler handles expense requests.
type ExpenseHandler struct {
	userService    services.UserServicer
	expenseService services.ExpenseServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(userService services.UserServicer, expenseService services.ExpenseServicer) *ExpenseHandler {
	return &ExpenseHandler{userService: userService, expenseService: expenseService}
}

// CreateExpenseRequest represents the request payload for recording an expense.
type CreateExpenseRequest struct {
	TelegramID int64           `json:"telegram_id" binding:"required"`
	SourceID   uint            `json:"source_id" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Category   string          `json:"category" binding:"required"`
	Note       string          `json:"note"`
}

// GetExpenses lists the user's expenses, newest first.
// @Summary     List expenses
// @Description List expenses enriched with their source's name and type
// @Tags        expenses
// @Produce     json
// @Param       telegram_id query int true "Telegram id"
// @Param       limit query int false "Row limit (default 50)"
// @Success     200 {array} models.ExpenseWithSource "Expenses, newest first"
// @Failure     400 {object} ErrorResponse "Missing telegram_id"
// @Router      /expenses [get]
func (h *ExpenseHandler) GetExpenses(c *gin.Context) {
	telegramID, err := telegramIDFromQuery(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	limit := services.DefaultExpenseLimit
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must be a positive integer"))
			return
		}
	}

	user, err := h.userService.GetOrCreateUser(telegramID, "")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenses, err := h.expenseService.GetUserExpenses(user.ID, limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// CreateExpense records an expense against a source.
// @Summary     Record an expense
// @Description Debits the source's balance by the expense amount in the same transaction
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     201 {object} map[string]interface{} "Created id"
// @Failure     400 {object} ErrorResponse "Missing fields or insufficient balance"
// @Failure     404 {object} ErrorResponse "Source not found"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Missing required fields"))
		return
	}

	user, err := h.userService.GetOrCreateUser(req.TelegramID, "")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.CreateExpense(user.ID, req.SourceID, req.Amount, req.Category, req.Note)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": expense.ID, "message": "Expense added successfully"})
}

// DeleteExpense deletes an expense, restoring its source's balance.
// @Summary     Delete an expense
// @Description Credits the expense amount back to its source in the same transaction
// @Tags        expenses
// @Produce     json
// @Param       id path int true "Expense ID"
// @Param       telegram_id query int true "Telegram id"
// @Success     200 {object} map[string]interface{} "Ack"
// @Failure     400 {object} ErrorResponse "Missing telegram_id"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	expenseID, err := parsePathID(c, "id")
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

	if err := h.expenseService.DeleteExpense(user.ID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted and balance restored"})
}
