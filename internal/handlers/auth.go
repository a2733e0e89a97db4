package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"la-interior-backend/internal/auth"
	"la-interior-backend/internal/middleware"
	"la-interior-backend/internal/models"
	"la-interior-backend/internal/store"
)

type AuthHandler struct {
	service *auth.Service
}

func NewAuthHandler(service *auth.Service) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register godoc
// @Summary     Register a new account
// @Description Creates an account with a password and a 6-digit PIN, and returns a JWT for the new user.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.RegisterRequest true "Account details"
// @Success     201 {object} models.AuthResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	user, token, err := h.service.Register(req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameTaken), errors.Is(err, store.ErrEmailTaken):
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: err.Error()})
		case errors.Is(err, auth.ErrMissingFields),
			errors.Is(err, auth.ErrPasswordTooShort),
			errors.Is(err, auth.ErrInvalidPIN),
			errors.Is(err, auth.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "registration failed", Message: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, models.AuthResponse{
		User:        *user,
		AccessToken: token,
		Message:     "Account created successfully!",
	})
}

// Login godoc
// @Summary     Log in
// @Description Verifies the username, password, and PIN, and returns a JWT.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.LoginRequest true "Credentials"
// @Success     200 {object} models.AuthResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	user, token, err := h.service.Login(req.Username, req.Password, req.PIN)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingFields):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		case errors.Is(err, auth.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "login failed", Message: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, models.AuthResponse{
		User:        *user,
		AccessToken: token,
		Message:     "Login successful!",
	})
}

// currentUser pulls the authenticated identity placed by the auth
// middleware.
func currentUser(c *gin.Context) (userID, username string, ok bool) {
	id, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return "", "", false
	}
	name, _ := c.Get(middleware.UsernameKey)
	nameStr, _ := name.(string)
	return id.(string), nameStr, true
}
