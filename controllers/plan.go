// controllers/plan.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"salonledger-backend/analytics"
	"salonledger-backend/config"
	"salonledger-backend/models"
	"salonledger-backend/services"
	"salonledger-backend/utils"
)

type CreatePlanInput struct {
	Name             string               `json:"name" binding:"required"`
	Price            float64              `json:"price" binding:"min=0"`
	Period           string               `json:"period" binding:"omitempty,oneof=monthly yearly"`
	IncludedServices []models.PlanService `json:"includedServices"`
	Features         []string             `json:"features"`
	IsPopular        bool                 `json:"isPopular"`
}

type UpdatePlanInput struct {
	Name             *string               `json:"name"`
	Price            *float64              `json:"price"`
	Period           *string               `json:"period"`
	IncludedServices *[]models.PlanService `json:"includedServices"`
	Features         *[]string             `json:"features"`
	IsPopular        *bool                 `json:"isPopular"`
}

// planEligible mirrors combo eligibility: every included service must
// exist and carry a recipe, and quantities must be non-negative.
func planEligible(included []models.PlanService) (string, bool) {
	recipes, err := services.LoadRecipeMap(config.DB)
	if err != nil {
		return "Failed to load recipes", false
	}
	for _, item := range included {
		if item.Quantity < 0 {
			return "Service quantities must be non-negative", false
		}
		if _, ok := recipes[item.ServiceID]; !ok {
			return "Service " + item.ServiceID.String() + " has no recipe and cannot join a plan", false
		}
	}
	return "", true
}

func CreatePlan(c *gin.Context) {
	var input CreatePlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if msg, ok := planEligible(input.IncludedServices); !ok {
		utils.RespondWithError(c, http.StatusBadRequest, msg)
		return
	}

	period := input.Period
	if period == "" {
		period = models.PlanPeriodMonthly
	}

	plan := models.SubscriptionPlan{
		Name:             input.Name,
		Price:            input.Price,
		Period:           period,
		IncludedServices: input.IncludedServices,
		Features:         input.Features,
		IsPopular:        input.IsPopular,
	}

	if err := config.DB.Create(&plan).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create plan")
		return
	}

	c.JSON(http.StatusCreated, plan)
}

func GetPlans(c *gin.Context) {
	var plans []models.SubscriptionPlan
	if err := config.DB.Find(&plans).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve plans")
		return
	}
	c.JSON(http.StatusOK, plans)
}

func getPlan(c *gin.Context) (models.SubscriptionPlan, bool) {
	var plan models.SubscriptionPlan
	planUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid plan ID format")
		return plan, false
	}
	if err := config.DB.First(&plan, "id = ?", planUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Plan not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return plan, false
	}
	return plan, true
}

func GetPlan(c *gin.Context) {
	plan, ok := getPlan(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, plan)
}

func UpdatePlan(c *gin.Context) {
	plan, ok := getPlan(c)
	if !ok {
		return
	}

	var input UpdatePlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name != nil {
		plan.Name = *input.Name
	}
	if input.Price != nil {
		if !utils.ValidMoney(*input.Price) {
			utils.RespondWithError(c, http.StatusBadRequest, "Price must be non-negative")
			return
		}
		plan.Price = *input.Price
	}
	if input.Period != nil {
		if *input.Period != models.PlanPeriodMonthly && *input.Period != models.PlanPeriodYearly {
			utils.RespondWithError(c, http.StatusBadRequest, "Period must be monthly or yearly")
			return
		}
		plan.Period = *input.Period
	}
	if input.IncludedServices != nil {
		if msg, ok := planEligible(*input.IncludedServices); !ok {
			utils.RespondWithError(c, http.StatusBadRequest, msg)
			return
		}
		plan.IncludedServices = *input.IncludedServices
	}
	if input.Features != nil {
		plan.Features = *input.Features
	}
	if input.IsPopular != nil {
		plan.IsPopular = *input.IsPopular
	}

	if err := config.DB.Save(&plan).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update plan")
		return
	}

	c.JSON(http.StatusOK, plan)
}

func DeletePlan(c *gin.Context) {
	planUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid plan ID format")
		return
	}

	result := config.DB.Delete(&models.SubscriptionPlan{}, "id = ?", planUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete plan")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Plan not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Plan deleted successfully"})
}

// GetPlanProfitability costs the plan against current recipes and
// flags prices below the suggested minimum.
func GetPlanProfitability(c *gin.Context) {
	plan, ok := getPlan(c)
	if !ok {
		return
	}

	recipes, err := services.LoadRecipeMap(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load recipes")
		return
	}
	materials, err := services.LoadMaterialMap(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load materials")
		return
	}
	costPerMinute, err := services.CurrentCostPerMinute(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to compute cost base")
		return
	}

	c.JSON(http.StatusOK, analytics.AnalyzePlan(plan, recipes, materials, costPerMinute))
}
