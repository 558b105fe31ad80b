package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"cricket-live-backend/internal/config"
	"cricket-live-backend/internal/handlers"
	"cricket-live-backend/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	wallet := services.NewWalletStore(cfg.InitialCoins)
	registry := services.NewTokenRegistry()
	matches := services.NewMatchIndex()
	ledger := services.NewWithdrawLedger(wallet)

	hub := handlers.NewHub(registry, matches)
	wsHandler := handlers.NewWebSocketHandler(hub)
	tokenHandler := handlers.NewTokenHandler(registry, matches, cfg)
	eventHandler := handlers.NewEventHandler(matches, hub)
	userHandler := handlers.NewUserHandler(wallet, registry, ledger, hub, cfg)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	router.GET("/", func(c *gin.Context) {
		c.String(200, "OK - server running")
	})

	router.POST("/create", tokenHandler.Create)
	router.POST("/simulate", eventHandler.Simulate)
	router.POST("/user/create", userHandler.CreateUser)
	router.POST("/player-action", userHandler.PlayerAction)
	router.POST("/withdraw", userHandler.Withdraw)

	router.GET("/ws", wsHandler.HandleWebSocket)

	log.Infof("Backend listening on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
