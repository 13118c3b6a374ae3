package handler

import (
	"strconv"

	"github.com/ADI-2707/Web-App/internal/model"
	"github.com/ADI-2707/Web-App/internal/service"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	authService *service.AuthService
}

func NewUserHandler(authService *service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// GET /users/search
func (h *UserHandler) SearchUsers(c *gin.Context) {
	keyword := c.Query("q")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 50 {
		limit = 10
	}

	users, err := h.authService.SearchUsers(keyword, limit)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	list := make([]model.UserBrief, 0, len(users))
	for i := range users {
		list = append(list, users[i].Brief())
	}
	Success(c, gin.H{"users": list})
}
