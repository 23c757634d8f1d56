package routes

import (
	"salonledger-backend/config"
	"salonledger-backend/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	api := r.Group("/api")
	{
		// Material routes
		materials := api.Group("/materials")
		{
			materials.POST("", controllers.CreateMaterial)
			materials.GET("", controllers.GetMaterials)
			materials.GET("/:id", controllers.GetMaterial)
			materials.PUT("/:id", controllers.UpdateMaterial)
			materials.DELETE("/:id", controllers.DeleteMaterial)
		}

		// Recipe routes
		recipes := api.Group("/recipes")
		{
			recipes.POST("", controllers.CreateRecipe)
			recipes.GET("", controllers.GetRecipes)
			recipes.GET("/:id", controllers.GetRecipe)
			recipes.PUT("/:id", controllers.UpdateRecipe)
			recipes.DELETE("/:id", controllers.DeleteRecipe)
		}

		// Service routes
		services := api.Group("/services")
		{
			services.POST("", controllers.CreateService)
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.PUT("/:id", controllers.UpdateService)
			services.DELETE("/:id", controllers.DeleteService)
			services.GET("/:id/pricing", controllers.GetServicePricing)
		}

		// Combo routes
		combos := api.Group("/combos")
		{
			combos.POST("", controllers.CreateCombo)
			combos.GET("", controllers.GetCombos)
			combos.GET("/:id", controllers.GetCombo)
			combos.PUT("/:id/discount", controllers.UpdateComboDiscount)
			combos.PUT("/:id/price", controllers.UpdateComboPrice)
			combos.GET("/:id/profitability", controllers.GetComboProfitability)
			combos.DELETE("/:id", controllers.DeleteCombo)
		}

		// Subscription plan routes
		plans := api.Group("/plans")
		{
			plans.POST("", controllers.CreatePlan)
			plans.GET("", controllers.GetPlans)
			plans.GET("/:id", controllers.GetPlan)
			plans.PUT("/:id", controllers.UpdatePlan)
			plans.DELETE("/:id", controllers.DeletePlan)
			plans.GET("/:id/profitability", controllers.GetPlanProfitability)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", controllers.CreateAppointment)
			appointments.GET("", controllers.GetAppointments)
			appointments.PUT("/:id", controllers.UpdateAppointment)
			appointments.DELETE("/:id", controllers.DeleteAppointment)
		}

		// Transaction routes
		transactions := api.Group("/transactions")
		{
			transactions.POST("", controllers.CreateTransaction)
			transactions.GET("", controllers.GetTransactions)
			transactions.PUT("/:id", controllers.UpdateTransaction)
			transactions.DELETE("/:id", controllers.DeleteTransaction)
		}

		// Cost settings routes
		api.GET("/settings", controllers.GetCostSettings)
		api.PUT("/settings", controllers.UpdateCostSettings)
		api.GET("/costs/summary", controllers.GetCostSummary)

		// Reports routes
		reportController := controllers.ReportController{}
		api.GET("/reports", reportController.GetPeriodReport)

		// Commission routes
		api.GET("/commissions", controllers.GetCommissionReport)

		// Employee routes
		employees := api.Group("/employees")
		{
			employees.GET("", controllers.GetEmployees)
			employees.POST("", controllers.AddEmployee)
			employees.PUT("/:id", controllers.UpdateEmployee)
			employees.DELETE("/:id", controllers.DeleteEmployee)
		}
	}

	return r
}
