package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"salonledger-backend/config"
	"salonledger-backend/models"
	"salonledger-backend/routes"
	"salonledger-backend/services"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}
	config.InitLogger()
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.CostSettings{},
		&models.Material{},
		&models.ServiceRecipe{},
		&models.Service{},
		&models.Combo{},
		&models.SubscriptionPlan{},
		&models.Employee{},
		&models.Appointment{},
		&models.Transaction{},
	)
}

func main() {
	defer config.Log.Sync()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	services.NewPriceSyncService(config.DB).StartScheduler()

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
