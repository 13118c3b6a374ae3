package router

import (
	"github.com/ADI-2707/Web-App/internal/handler"
	"github.com/ADI-2707/Web-App/internal/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Deps struct {
	DB             *gorm.DB
	JWTSecret      string
	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	ProjectHandler *handler.ProjectHandler
}

func Setup(r *gin.Engine, deps Deps) {
	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api/v1")

	// Public routes (no auth)
	auth := api.Group("/auth")
	{
		auth.POST("/register", deps.AuthHandler.Register)
		auth.POST("/login", deps.AuthHandler.Login)
	}

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(deps.JWTSecret, deps.DB))
	{
		authed.GET("/auth/me", deps.AuthHandler.GetMe)

		// User search (invite picker)
		authed.GET("/users/search", deps.UserHandler.SearchUsers)

		// Projects
		projects := authed.Group("/projects")
		{
			projects.POST("", deps.ProjectHandler.Create)
			projects.GET("/owned", deps.ProjectHandler.Owned)
			projects.GET("/joined", deps.ProjectHandler.Joined)
			projects.GET("/search", deps.ProjectHandler.Search)
			projects.GET("/:id", deps.ProjectHandler.Overview)
			projects.POST("/:id/verify-pin", deps.ProjectHandler.VerifyPIN)
		}
	}
}
