package main

import (
	"log"
	"net/http"
	"os"

	"frontdesk/config"
	"frontdesk/jobs"
	"frontdesk/routes"
	"frontdesk/services"
	"frontdesk/services/logger"

	"github.com/gin-gonic/gin"
)

func main() {

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	upstream := services.NewUpstream(config.UpstreamBaseURL())

	views := services.NewViewRegistry(services.ViewRegistryOptions{
		Upstream: upstream,
		Redis:    config.RedisClient,
		Melody:   m,
		PushURL:  config.UpstreamWSURL(),
		Logger:   logger.NewDefaultLogger(logger.InfoLevel),
	})

	if err := jobs.InitCronJobs(c, views, config.RedisClient, upstream); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, views, upstream)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
