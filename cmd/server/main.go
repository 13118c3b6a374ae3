package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ADI-2707/Web-App/internal/config"
	"github.com/ADI-2707/Web-App/internal/handler"
	"github.com/ADI-2707/Web-App/internal/model"
	"github.com/ADI-2707/Web-App/internal/router"
	"github.com/ADI-2707/Web-App/internal/service"
	"github.com/ADI-2707/Web-App/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	// Load config
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Logger
	zlog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	// Database
	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		zlog.Fatalf("connect database: %v", err)
	}

	// Auto migrate
	if err := db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.ProjectMember{},
	); err != nil {
		zlog.Fatalf("auto migrate: %v", err)
	}

	// Redis (PIN attempt limiting)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pinGuard := service.NewPINGuard(rdb, cfg.Security.MaxPINAttempts, cfg.Security.PINAttemptWindow)

	// Services
	authService := service.NewAuthService(db, cfg.JWT.Secret, cfg.JWT.ExpireHours)
	projectService := service.NewProjectService(db, pinGuard, zlog, cfg.Security)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService)

	// Gin engine
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	router.Setup(r, router.Deps{
		DB:             db,
		JWTSecret:      cfg.JWT.Secret,
		AuthHandler:    authHandler,
		UserHandler:    userHandler,
		ProjectHandler: projectHandler,
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	zlog.Infof("server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		zlog.Fatalf("server run: %v", err)
	}
}
