package main

import (
	"fmt"
	"log"
	"os"

	"carllos-backend/config"
	"carllos-backend/routes"
	"carllos-backend/services"
	"carllos-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()
}

func main() {
	store, err := storage.New(config.DB)
	if err != nil {
		log.Fatalf("Failed to prepare storage: %v", err)
	}

	appData := services.NewAppData(store)
	if err := appData.Load(); err != nil {
		log.Fatalf("Failed to load data: %v", err)
	}

	if os.Getenv("BACKUP_ENABLED") == "true" {
		backup := services.NewBackupService(config.DBPath())
		backup.StartScheduler()
		defer backup.Stop()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter(appData)
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
