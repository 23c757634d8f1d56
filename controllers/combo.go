// controllers/combo.go
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

type CreateComboInput struct {
	Name            string      `json:"name" binding:"required"`
	ServiceIDs      []uuid.UUID `json:"serviceIds" binding:"required,min=1"`
	DiscountPercent float64     `json:"discountPercent"`
	UseRounding     *bool       `json:"useRounding"`
}

type ComboDiscountInput struct {
	DiscountPercent float64 `json:"discountPercent" binding:"min=0,max=100"`
}

type ComboPriceInput struct {
	FinalPrice float64 `json:"finalPrice" binding:"min=0"`
}

// comboEligible verifies every included service exists and has a
// recipe. Inclusion of recipe-less services is rejected up front, not
// during computation.
func comboEligible(serviceIDs []uuid.UUID) (string, bool) {
	recipes, err := services.LoadRecipeMap(config.DB)
	if err != nil {
		return "Failed to load recipes", false
	}
	for _, id := range serviceIDs {
		var count int64
		config.DB.Model(&models.Service{}).Where("id = ?", id).Count(&count)
		if count == 0 {
			return "Service " + id.String() + " not found", false
		}
		if _, ok := recipes[id]; !ok {
			return "Service " + id.String() + " has no recipe and cannot join a combo", false
		}
	}
	return "", true
}

// sumComboPrices adds up the current individual prices of the combo's
// services.
func sumComboPrices(serviceIDs []uuid.UUID) (float64, error) {
	serviceMap, err := services.LoadServiceMap(config.DB)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, id := range serviceIDs {
		sum += serviceMap[id].Price
	}
	return sum, nil
}

// CreateCombo creates a combo; the final price is derived from the
// discount over the current sum of individual prices.
func CreateCombo(c *gin.Context) {
	var input CreateComboInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !utils.ValidPercent(input.DiscountPercent) {
		utils.RespondWithError(c, http.StatusBadRequest, "Discount must be between 0 and 100")
		return
	}
	if msg, ok := comboEligible(input.ServiceIDs); !ok {
		utils.RespondWithError(c, http.StatusBadRequest, msg)
		return
	}

	useRounding := true
	if input.UseRounding != nil {
		useRounding = *input.UseRounding
	}

	sum, err := sumComboPrices(input.ServiceIDs)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load services")
		return
	}

	combo := models.Combo{
		Name:            input.Name,
		ServiceIDs:      input.ServiceIDs,
		DiscountPercent: input.DiscountPercent,
		UseRounding:     useRounding,
		FinalPrice:      analytics.ComboFromDiscount(sum, input.DiscountPercent, useRounding),
	}

	if err := config.DB.Create(&combo).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create combo")
		return
	}

	c.JSON(http.StatusCreated, combo)
}

func GetCombos(c *gin.Context) {
	var combos []models.Combo
	if err := config.DB.Find(&combos).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve combos")
		return
	}
	c.JSON(http.StatusOK, combos)
}

func getCombo(c *gin.Context) (models.Combo, bool) {
	var combo models.Combo
	comboUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid combo ID format")
		return combo, false
	}
	if err := config.DB.First(&combo, "id = ?", comboUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Combo not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return combo, false
	}
	return combo, true
}

func GetCombo(c *gin.Context) {
	combo, ok := getCombo(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, combo)
}

// UpdateComboDiscount is the discount-driven transform: the final
// price is recomputed and commercial rounding applies when enabled.
func UpdateComboDiscount(c *gin.Context) {
	combo, ok := getCombo(c)
	if !ok {
		return
	}

	var input ComboDiscountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	sum, err := sumComboPrices(combo.ServiceIDs)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load services")
		return
	}

	combo.DiscountPercent = input.DiscountPercent
	combo.FinalPrice = analytics.ComboFromDiscount(sum, input.DiscountPercent, combo.UseRounding)

	if err := config.DB.Save(&combo).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update combo")
		return
	}

	c.JSON(http.StatusOK, combo)
}

// UpdateComboPrice is the price-driven transform: the entered price is
// stored verbatim (no rounding) and the discount is back-derived.
func UpdateComboPrice(c *gin.Context) {
	combo, ok := getCombo(c)
	if !ok {
		return
	}

	var input ComboPriceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	sum, err := sumComboPrices(combo.ServiceIDs)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load services")
		return
	}

	combo.FinalPrice = input.FinalPrice
	combo.DiscountPercent = analytics.ComboFromPrice(sum, input.FinalPrice)

	if err := config.DB.Save(&combo).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update combo")
		return
	}

	c.JSON(http.StatusOK, combo)
}

func DeleteCombo(c *gin.Context) {
	comboUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid combo ID format")
		return
	}

	result := config.DB.Delete(&models.Combo{}, "id = ?", comboUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete combo")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Combo not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Combo deleted successfully"})
}

// GetComboProfitability returns the full commercial analysis of a
// combo against current prices and costs.
func GetComboProfitability(c *gin.Context) {
	combo, ok := getCombo(c)
	if !ok {
		return
	}

	serviceMap, err := services.LoadServiceMap(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load services")
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

	c.JSON(http.StatusOK, analytics.AnalyzeCombo(combo, serviceMap, recipes, materials, costPerMinute))
}
