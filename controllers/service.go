// controllers/service.go
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

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	Price           float64 `json:"price" binding:"min=0"`
	DurationMinutes int     `json:"durationMinutes" binding:"min=0"`
	UseManualPrice  bool    `json:"useManualPrice"`
	UseRounding     *bool   `json:"useRounding"`
}

// UpdateServiceInput defines the expected JSON structure for updating a service
type UpdateServiceInput struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Category        *string  `json:"category"`
	Price           *float64 `json:"price"`
	DurationMinutes *int     `json:"durationMinutes"`
	UseManualPrice  *bool    `json:"useManualPrice"`
	UseRounding     *bool    `json:"useRounding"`
	IsActive        *bool    `json:"isActive"`
}

// CreateService creates a new service. A manual price is stored
// verbatim; an auto price stays zero until a recipe is attached, then
// follows the recipe on every recompute.
func CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	useRounding := true
	if input.UseRounding != nil {
		useRounding = *input.UseRounding
	}

	service := models.Service{
		Name:            input.Name,
		Description:     input.Description,
		Category:        input.Category,
		DurationMinutes: input.DurationMinutes,
		UseManualPrice:  input.UseManualPrice,
		UseRounding:     useRounding,
		IsActive:        true,
	}
	if input.UseManualPrice {
		service.Price = input.Price
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, service)
}

// GetServices retrieves all services
func GetServices(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetService retrieves a specific service by ID
func GetService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, service)
}

// UpdateService updates an existing service. Price edits are only
// honored in manual mode; in auto mode the price is re-derived after
// any flag change.
func UpdateService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var input UpdateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.Category != nil {
		service.Category = *input.Category
	}
	if input.DurationMinutes != nil {
		service.DurationMinutes = *input.DurationMinutes
	}
	if input.UseManualPrice != nil {
		service.UseManualPrice = *input.UseManualPrice
	}
	if input.UseRounding != nil {
		service.UseRounding = *input.UseRounding
	}
	if input.IsActive != nil {
		service.IsActive = *input.IsActive
	}
	if input.Price != nil && service.UseManualPrice {
		service.Price = *input.Price
	}

	if err := config.DB.Save(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update service")
		return
	}

	if !service.UseManualPrice {
		if err := services.RecomputeDerivedPrices(config.DB); err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to refresh derived prices")
			return
		}
		config.DB.First(&service, "id = ?", serviceUUID)
	}

	c.JSON(http.StatusOK, service)
}

// DeleteService soft deletes a service
func DeleteService(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	result := config.DB.Delete(&models.Service{}, "id = ?", serviceUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete service")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully"})
}

// GetServicePricing returns the full cost breakdown and the derived
// sale price for a service, with unresolved-reference warnings.
func GetServicePricing(c *gin.Context) {
	serviceUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid service ID format")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	var recipe models.ServiceRecipe
	if err := config.DB.First(&recipe, "service_id = ?", serviceUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Service has no recipe")
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

	breakdown := analytics.ServiceBreakdown(recipe, materials, costPerMinute)
	salePrice := analytics.SalePrice(breakdown.TotalCost, recipe.ProfitMarginPercent)
	rounded := analytics.RoundCommercial(salePrice)

	c.JSON(http.StatusOK, gin.H{
		"breakdown":    breakdown,
		"salePrice":    salePrice,
		"roundedPrice": rounded,
		"currentPrice": service.Price,
	})
}
