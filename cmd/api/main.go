package main

import (
	"fmt"
	"log"
	"os"

	"solar-string-sim/internal/api/handlers"
	"solar-string-sim/internal/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development; environment wins over file values.
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded .env")
	}

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	simulateHandler := handlers.NewSimulateHandler()
	cellsHandler := handlers.NewCellsHandler()
	solversHandler := handlers.NewSolversHandler()
	sweepHandler := handlers.NewSweepHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.RunSimulation)
		api.GET("/simulate/:id/curve", simulateHandler.GetCurve)
		api.POST("/simulate/compare", simulateHandler.CompareSolvers)

		api.POST("/sweep", sweepHandler.RunSweep)

		api.GET("/cells", cellsHandler.ListCells)
		api.GET("/solvers", solversHandler.ListSolvers)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
