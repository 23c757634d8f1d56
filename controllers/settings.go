// controllers/settings.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonledger-backend/analytics"
	"salonledger-backend/config"
	"salonledger-backend/models"
	"salonledger-backend/services"
	"salonledger-backend/utils"
)

// GetCostSettings returns the singleton cost configuration.
func GetCostSettings(c *gin.Context) {
	settings, err := services.LoadCostSettings(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load cost settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateCostSettings replaces the cost configuration and refreshes
// every derived service price, since cost-per-minute may have moved.
func UpdateCostSettings(c *gin.Context) {
	settings, err := services.LoadCostSettings(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load cost settings")
		return
	}

	var input models.CostSettings
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	for _, p := range []float64{
		input.Personnel.SocialChargesPercent,
		input.Personnel.DefaultCommissionRatePercent,
		input.Taxes.CardFeePercent,
		input.Taxes.ServiceTaxPercent,
	} {
		if !utils.ValidPercent(p) {
			utils.RespondWithError(c, http.StatusBadRequest, "Percentages must be between 0 and 100")
			return
		}
	}

	settings.Personnel = input.Personnel
	settings.Operational = input.Operational
	settings.Administrative = input.Administrative
	settings.Taxes = input.Taxes

	if err := config.DB.Save(&settings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update cost settings")
		return
	}

	if err := services.RecomputeDerivedPrices(config.DB); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to refresh derived prices")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// GetCostSummary returns the aggregated monthly cost base.
func GetCostSummary(c *gin.Context) {
	settings, err := services.LoadCostSettings(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load cost settings")
		return
	}

	var employees []models.Employee
	if err := config.DB.Where("is_active = ?", true).Find(&employees).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load employees")
		return
	}

	c.JSON(http.StatusOK, analytics.AggregateCosts(settings, employees))
}
