package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studytrack/api/internal/middleware"
	"studytrack/api/internal/models"
	"studytrack/api/internal/security"
	"studytrack/api/internal/service"
)

type signUpRequest struct {
	Name           string  `json:"name" binding:"required,min=2"`
	Email          string  `json:"email" binding:"required,email"`
	Password       string  `json:"password" binding:"required,min=6"`
	TargetLanguage string  `json:"targetLanguage"`
	TargetLevel    string  `json:"targetLevel" binding:"omitempty,oneof=A1 A2 B1 B2 C1 C2"`
	DailyGoalHours float64 `json:"dailyGoalHours" binding:"omitempty,min=0.5,max=24"`
}

type userResponse struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	Name           string  `json:"name"`
	TargetLanguage string  `json:"targetLanguage"`
	TargetLevel    string  `json:"targetLevel"`
	DailyGoalHours float64 `json:"dailyGoalHours"`
}

func (h HandlerSet) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authService.SignUp(c.Request.Context(), service.SignUpInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		TargetLanguage: req.TargetLanguage,
		TargetLevel:    req.TargetLevel,
		DailyGoalHours: req.DailyGoalHours,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Msg("sign up failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	security.SetSessionCookie(c, h.cfg.Security.CookieName, result.Token, !h.cfg.IsDevelopment())
	c.JSON(http.StatusCreated, gin.H{"user": toUserResponse(result.User)})
}

type signInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h HandlerSet) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authService.SignIn(c.Request.Context(), service.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		h.log.Error().Err(err).Msg("sign in failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	security.SetSessionCookie(c, h.cfg.Security.CookieName, result.Token, !h.cfg.IsDevelopment())
	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(result.User)})
}

func (h HandlerSet) SignOut(c *gin.Context) {
	security.ClearSessionCookie(c, h.cfg.Security.CookieName, !h.cfg.IsDevelopment())
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

func (h HandlerSet) Me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not_authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}

func currentUser(c *gin.Context) (models.User, bool) {
	userVal, exists := c.Get(middleware.ContextUser)
	if !exists {
		return models.User{}, false
	}
	user, ok := userVal.(models.User)
	return user, ok
}

func toUserResponse(user models.User) userResponse {
	return userResponse{
		ID:             user.ID,
		Email:          user.Email,
		Name:           user.Name,
		TargetLanguage: user.TargetLanguage,
		TargetLevel:    string(user.TargetLevel),
		DailyGoalHours: user.DailyGoalHours,
	}
}
