package handler

import (
	"github.com/ADI-2707/Web-App/internal/middleware"
	"github.com/ADI-2707/Web-App/internal/service"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		FullName        string `json:"full_name" binding:"required,max=100"`
		Email           string `json:"email" binding:"required,email"`
		Password        string `json:"password" binding:"required"`
		ConfirmPassword string `json:"confirm_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	user, err := h.authService.Register(req.FullName, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		ReplyError(c, err)
		return
	}
	Created(c, gin.H{"user": user.Brief()})
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request: "+err.Error())
		return
	}

	user, token, expireAt, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		ReplyError(c, err)
		return
	}
	Success(c, gin.H{
		"token":     token,
		"expire_at": expireAt,
		"user":      user.Brief(),
	})
}

// GET /auth/me
func (h *AuthHandler) GetMe(c *gin.Context) {
	user := middleware.GetCurrentUser(c)
	if user == nil {
		Unauthorized(c, 40101, "not authenticated")
		return
	}
	Success(c, gin.H{"user": user.Brief()})
}
