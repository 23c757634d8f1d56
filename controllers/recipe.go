// controllers/recipe.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"salonledger-backend/config"
	"salonledger-backend/models"
	"salonledger-backend/services"
	"salonledger-backend/utils"
)

type CreateRecipeInput struct {
	ServiceID              uuid.UUID               `json:"serviceId" binding:"required"`
	ExecutionTimeMinutes   float64                 `json:"executionTimeMinutes" binding:"min=0"`
	Yields                 float64                 `json:"yields"`
	MaterialsUsed          []models.RecipeMaterial `json:"materialsUsed"`
	AdditionalCostsPercent float64                 `json:"additionalCostsPercent"`
	SafetyMarginPercent    float64                 `json:"safetyMarginPercent"`
	ProfitMarginPercent    float64                 `json:"profitMarginPercent"`
}

type UpdateRecipeInput struct {
	ExecutionTimeMinutes   *float64                 `json:"executionTimeMinutes"`
	Yields                 *float64                 `json:"yields"`
	MaterialsUsed          *[]models.RecipeMaterial `json:"materialsUsed"`
	AdditionalCostsPercent *float64                 `json:"additionalCostsPercent"`
	SafetyMarginPercent    *float64                 `json:"safetyMarginPercent"`
	ProfitMarginPercent    *float64                 `json:"profitMarginPercent"`
}

func validRecipeQuantities(materials []models.RecipeMaterial) bool {
	for _, m := range materials {
		if m.Quantity < 0 {
			return false
		}
	}
	return true
}

// CreateRecipe attaches a cost recipe to a service. A service holds at
// most one recipe.
func CreateRecipe(c *gin.Context) {
	var input CreateRecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !validRecipeQuantities(input.MaterialsUsed) {
		utils.RespondWithError(c, http.StatusBadRequest, "Material quantities must be non-negative")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", input.ServiceID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	var count int64
	config.DB.Model(&models.ServiceRecipe{}).Where("service_id = ?", input.ServiceID).Count(&count)
	if count > 0 {
		utils.RespondWithError(c, http.StatusConflict, "Service already has a recipe")
		return
	}

	yields := input.Yields
	if yields <= 0 {
		yields = 1
	}

	recipe := models.ServiceRecipe{
		ServiceID:              input.ServiceID,
		ExecutionTimeMinutes:   input.ExecutionTimeMinutes,
		Yields:                 yields,
		MaterialsUsed:          input.MaterialsUsed,
		AdditionalCostsPercent: input.AdditionalCostsPercent,
		SafetyMarginPercent:    input.SafetyMarginPercent,
		ProfitMarginPercent:    input.ProfitMarginPercent,
	}

	if err := config.DB.Create(&recipe).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create recipe")
		return
	}

	if err := services.RecomputeDerivedPrices(config.DB); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to refresh derived prices")
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

func GetRecipes(c *gin.Context) {
	var recipes []models.ServiceRecipe
	if err := config.DB.Find(&recipes).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve recipes")
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func GetRecipe(c *gin.Context) {
	recipeUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid recipe ID format")
		return
	}

	var recipe models.ServiceRecipe
	if err := config.DB.First(&recipe, "id = ?", recipeUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Recipe not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func UpdateRecipe(c *gin.Context) {
	recipeUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid recipe ID format")
		return
	}

	var input UpdateRecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var recipe models.ServiceRecipe
	if err := config.DB.First(&recipe, "id = ?", recipeUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Recipe not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.ExecutionTimeMinutes != nil {
		recipe.ExecutionTimeMinutes = *input.ExecutionTimeMinutes
	}
	if input.Yields != nil {
		yields := *input.Yields
		if yields <= 0 {
			yields = 1
		}
		recipe.Yields = yields
	}
	if input.MaterialsUsed != nil {
		if !validRecipeQuantities(*input.MaterialsUsed) {
			utils.RespondWithError(c, http.StatusBadRequest, "Material quantities must be non-negative")
			return
		}
		recipe.MaterialsUsed = *input.MaterialsUsed
	}
	if input.AdditionalCostsPercent != nil {
		recipe.AdditionalCostsPercent = *input.AdditionalCostsPercent
	}
	if input.SafetyMarginPercent != nil {
		recipe.SafetyMarginPercent = *input.SafetyMarginPercent
	}
	if input.ProfitMarginPercent != nil {
		recipe.ProfitMarginPercent = *input.ProfitMarginPercent
	}

	if err := config.DB.Save(&recipe).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update recipe")
		return
	}

	if err := services.RecomputeDerivedPrices(config.DB); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to refresh derived prices")
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func DeleteRecipe(c *gin.Context) {
	recipeUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid recipe ID format")
		return
	}

	result := config.DB.Delete(&models.ServiceRecipe{}, "id = ?", recipeUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete recipe")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Recipe not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recipe deleted successfully"})
}
