package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"la-interior-backend/internal/auth"
	"la-interior-backend/internal/models"
	"la-interior-backend/internal/store"
)

type ProfileHandler struct {
	service *auth.Service
}

func NewProfileHandler(service *auth.Service) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// GetProfile godoc
// @Summary     Get profile
// @Description Returns the authenticated user's account details.
// @Tags        profile
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.ProfileResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	_, username, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := h.service.Profile(username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to load profile", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.ProfileResponse{User: *user})
}

// UpdateProfile godoc
// @Summary     Update profile
// @Description Overwrites the non-credential account fields.
// @Tags        profile
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.UpdateProfileRequest true "Profile fields"
// @Success     200 {object} models.ProfileResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	_, username, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	user, err := h.service.UpdateProfile(username, req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "user not found"})
		case errors.Is(err, auth.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update profile", Message: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, models.ProfileResponse{User: *user})
}

// UpdatePassword godoc
// @Summary     Change password
// @Description Verifies the current password and replaces it.
// @Tags        profile
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.UpdatePasswordRequest true "Current and new password"
// @Success     200 {object} models.MessageResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Router      /profile/password [post]
func (h *ProfileHandler) UpdatePassword(c *gin.Context) {
	_, username, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	if err := h.service.UpdatePassword(username, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingFields), errors.Is(err, auth.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		case errors.Is(err, auth.ErrInvalidCredentials):
			c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "incorrect current password"})
		case errors.Is(err, store.ErrUserNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "user not found"})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update password", Message: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Password updated successfully"})
}

// UpdatePIN godoc
// @Summary     Change PIN
// @Description Verifies the account password and replaces the 6-digit PIN.
// @Tags        profile
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.UpdatePINRequest true "Password and new PIN"
// @Success     200 {object} models.MessageResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     403 {object} models.ErrorResponse
// @Router      /profile/pin [post]
func (h *ProfileHandler) UpdatePIN(c *gin.Context) {
	_, username, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.UpdatePINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	if err := h.service.UpdatePIN(username, req.Password, req.NewPIN); err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingFields), errors.Is(err, auth.ErrInvalidPIN):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		case errors.Is(err, auth.ErrInvalidCredentials):
			c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "incorrect password"})
		case errors.Is(err, store.ErrUserNotFound):
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "user not found"})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update PIN", Message: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "PIN updated successfully"})
}
