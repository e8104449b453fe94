package auth

import (
	"errors"
	"net/http"

	"varsity/internal/shared/utils/response"
	"varsity/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	RefreshToken(c *gin.Context)
	ChangePassword(c *gin.Context)
	Logout(c *gin.Context)
	Me(c *gin.Context)
}

type controller struct {
	service  Service
	validate *validator.Validate
	log      *logger.Logger
}

func NewController(service Service) Controller {
	return &controller{
		service:  service,
		validate: validator.New(),
		log:      logger.GetDefault(),
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create an account. Role defaults to AUDIENCE when omitted.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration details"
// @Success 201 {object} response.StandardApiResponse{data=AuthResponse}
// @Failure 400 {object} response.StandardApiResponse
// @Failure 409 {object} response.StandardApiResponse
// @Router /auth/register [post]
func (ctrl *controller) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := ctrl.validate.Struct(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", formatValidationErrors(err))
		return
	}

	authResp, err := ctrl.service.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserAlreadyExists):
			response.Error(c, http.StatusConflict, "User with this email already exists", nil)
		case errors.Is(err, ErrInvalidRole):
			response.Error(c, http.StatusBadRequest, "Invalid role", nil)
		default:
			ctrl.log.ErrorWithContext(c.Request.Context(), "registration failed", err, nil)
			response.Error(c, http.StatusInternalServerError, "Registration failed", nil)
		}
		return
	}

	ctrl.log.LogAuthSuccess(c.Request.Context(), authResp.User.ID, "register")
	response.Success(c, http.StatusCreated, "User registered successfully", authResp)
}

// Login godoc
// @Summary Login a user
// @Description Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} response.StandardApiResponse{data=AuthResponse}
// @Failure 401 {object} response.StandardApiResponse
// @Router /auth/login [post]
func (ctrl *controller) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := ctrl.validate.Struct(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", formatValidationErrors(err))
		return
	}

	authResp, err := ctrl.service.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			ctrl.log.LogAuthFailure(c.Request.Context(), "invalid credentials", c.ClientIP())
			response.Error(c, http.StatusUnauthorized, "Invalid email or password", nil)
		default:
			ctrl.log.ErrorWithContext(c.Request.Context(), "login failed", err, nil)
			response.Error(c, http.StatusInternalServerError, "Login failed", nil)
		}
		return
	}

	ctrl.log.LogAuthSuccess(c.Request.Context(), authResp.User.ID, "login")
	response.Success(c, http.StatusOK, "Login successful", authResp)
}

// RefreshToken godoc
// @Summary Refresh access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} response.StandardApiResponse{data=TokenPair}
// @Failure 401 {object} response.StandardApiResponse
// @Router /auth/refresh [post]
func (ctrl *controller) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := ctrl.validate.Struct(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", formatValidationErrors(err))
		return
	}

	tokenPair, err := ctrl.service.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, ErrTokenExpired):
			response.Error(c, http.StatusUnauthorized, "Refresh token expired", nil)
		case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusUnauthorized, "Invalid refresh token", nil)
		default:
			ctrl.log.ErrorWithContext(c.Request.Context(), "token refresh failed", err, nil)
			response.Error(c, http.StatusInternalServerError, "Token refresh failed", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, "Token refreshed successfully", tokenPair)
}

// ChangePassword godoc
// @Summary Change password for the authenticated user
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "Password change details"
// @Success 200 {object} response.StandardApiResponse
// @Failure 401 {object} response.StandardApiResponse
// @Router /auth/change-password [put]
func (ctrl *controller) ChangePassword(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		response.Error(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := ctrl.validate.Struct(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Validation failed", formatValidationErrors(err))
		return
	}

	err := ctrl.service.ChangePassword(c.Request.Context(), userID.(string), &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "Current password is incorrect", nil)
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "User not found", nil)
		default:
			ctrl.log.ErrorWithContext(c.Request.Context(), "password change failed", err, nil)
			response.Error(c, http.StatusInternalServerError, "Password change failed", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, "Password changed successfully", nil)
}

// Logout godoc
// @Summary Logout a user
// @Description Stateless logout. Clients discard their tokens.
// @Tags auth
// @Produce json
// @Success 200 {object} response.StandardApiResponse
// @Router /auth/logout [post]
func (ctrl *controller) Logout(c *gin.Context) {
	response.Success(c, http.StatusOK, "Logged out successfully", nil)
}

// Me godoc
// @Summary Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.StandardApiResponse{data=UserResponse}
// @Failure 401 {object} response.StandardApiResponse
// @Router /auth/me [get]
func (ctrl *controller) Me(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		response.Error(c, http.StatusUnauthorized, "User not authenticated", nil)
		return
	}

	user, err := ctrl.service.GetUserByID(c.Request.Context(), userID.(string))
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "User not found", nil)
		default:
			ctrl.log.ErrorWithContext(c.Request.Context(), "fetching profile failed", err, nil)
			response.Error(c, http.StatusInternalServerError, "Failed to get user profile", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, "User profile retrieved successfully", user)
}

func formatValidationErrors(err error) []map[string]string {
	var validationErrors []map[string]string

	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range errs {
			validationErrors = append(validationErrors, map[string]string{
				"field": e.Field(),
				"tag":   e.Tag(),
				"value": e.Param(),
			})
		}
	}

	return validationErrors
}
