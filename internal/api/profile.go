package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/inkwellhq/inkwell/internal/auth"
	"github.com/inkwellhq/inkwell/internal/models"
	"github.com/inkwellhq/inkwell/pkg/logging"
)

// ProfileHandler serves the authenticated profile endpoint
type ProfileHandler struct {
	users  UserStore
	logger *zap.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(users UserStore) *ProfileHandler {
	return &ProfileHandler{
		users:  users,
		logger: logging.WithComponent("profile-api"),
	}
}

// updateProfileRequest is the PUT /api/posts/profile body. Pointers
// distinguish "not supplied" from "set to empty".
type updateProfileRequest struct {
	Name   *string `json:"name"`
	Bio    *string `json:"bio"`
	Avatar *string `json:"avatar"`
}

// Update handles PUT /api/posts/profile. Only the authenticated user's
// own profile is touched; absent fields keep their current values.
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		models.RespondWithError(c, http.StatusUnauthorized, models.NewUnauthorizedError("authentication required"))
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		models.RespondWithError(c, http.StatusBadRequest, models.NewValidationError("invalid request body"))
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Unexpected failure", zap.Error(err))
		models.RespondWithError(c, http.StatusInternalServerError, models.NewInternalError(err))
		return
	}
	if user == nil {
		models.RespondWithError(c, http.StatusNotFound, models.NewNotFoundError("user", userID))
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}

	if err := user.Validate(); err != nil {
		models.RespondWithError(c, http.StatusBadRequest, models.NewValidationError(err.Error()))
		return
	}

	if err := h.users.Update(c.Request.Context(), user); err != nil {
		h.logger.Error("Unexpected failure", zap.Error(err))
		models.RespondWithError(c, http.StatusInternalServerError, models.NewInternalError(err))
		return
	}

	c.JSON(http.StatusOK, user)
}
