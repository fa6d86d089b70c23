package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "dinero/internal/errors"
	"dinero/internal/services"
)

// UserHandler handles user initialization requests.
type UserHandler struct {
	userService services.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService services.UserServicer) *UserHandler {
	return &UserHandler{userService: userService}
}

// InitUserRequest represents the request payload for initializing a user.
type InitUserRequest struct {
	TelegramID int64  `json:"telegram_id" binding:"required"`
	Username   string `json:"username"`
}

// InitUser resolves or lazily creates the user for a Telegram id.
// @Summary     Initialize a user
// @Description Resolve the internal user id for a Telegram id, creating the user on first reference
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body InitUserRequest true "User identity"
// @Success     200 {object} map[string]interface{} "Internal user id"
// @Failure     400 {object} ErrorResponse "Missing telegram_id"
// @Router      /init [post]
func (h *UserHandler) InitUser(c *gin.Context) {
	var req InitUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "telegram_id is required"))
		return
	}

	user, err := h.userService.GetOrCreateUser(req.TelegramID, req.Username)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": user.ID, "message": "User initialized"})
}
