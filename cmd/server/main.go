package main

import (
	"log"
	"net/http"

	"github.com/siddhityagi17/event-manager/config"
	"github.com/siddhityagi17/event-manager/internal/cache"
	"github.com/siddhityagi17/event-manager/internal/database"
	"github.com/siddhityagi17/event-manager/internal/handler"
	"github.com/siddhityagi17/event-manager/internal/repository"
	"github.com/siddhityagi17/event-manager/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	eventRepo := repository.NewEventRepository(pool)
	eventCache := cache.NewRedisEventCache(rdb)
	eventService := service.NewEventService(eventRepo, eventCache)
	eventHandler := handler.NewEventHandler(eventService)

	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	eventHandler.RegisterRoutes(router)

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
