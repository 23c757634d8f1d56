// controllers/material.go
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

// CreateMaterialInput defines the expected JSON structure for creating a material
type CreateMaterialInput struct {
	Name         string  `json:"name" binding:"required"`
	PackagePrice float64 `json:"packagePrice" binding:"min=0"`
	PackageSize  float64 `json:"packageSize" binding:"required,gt=0"`
	Unit         string  `json:"unit"`
}

// UpdateMaterialInput defines the expected JSON structure for updating a material
type UpdateMaterialInput struct {
	Name         *string  `json:"name"`
	PackagePrice *float64 `json:"packagePrice"`
	PackageSize  *float64 `json:"packageSize"`
	Unit         *string  `json:"unit"`
}

func CreateMaterial(c *gin.Context) {
	var input CreateMaterialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	material := models.Material{
		Name:         input.Name,
		PackagePrice: input.PackagePrice,
		PackageSize:  input.PackageSize,
		Unit:         input.Unit,
	}

	if err := config.DB.Create(&material).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create material")
		return
	}

	c.JSON(http.StatusCreated, material)
}

func GetMaterials(c *gin.Context) {
	var materials []models.Material
	if err := config.DB.Find(&materials).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve materials")
		return
	}
	c.JSON(http.StatusOK, materials)
}

func GetMaterial(c *gin.Context) {
	materialUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid material ID format")
		return
	}

	var material models.Material
	if err := config.DB.First(&material, "id = ?", materialUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Material not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, material)
}

// UpdateMaterial updates a material and refreshes derived service
// prices, since package price changes shift material costs.
func UpdateMaterial(c *gin.Context) {
	materialUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid material ID format")
		return
	}

	var input UpdateMaterialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var material models.Material
	if err := config.DB.First(&material, "id = ?", materialUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Material not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		material.Name = *input.Name
	}
	if input.PackagePrice != nil {
		if !utils.ValidMoney(*input.PackagePrice) {
			utils.RespondWithError(c, http.StatusBadRequest, "Package price must be non-negative")
			return
		}
		material.PackagePrice = *input.PackagePrice
	}
	if input.PackageSize != nil {
		if *input.PackageSize <= 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Package size must be positive")
			return
		}
		material.PackageSize = *input.PackageSize
	}
	if input.Unit != nil {
		material.Unit = *input.Unit
	}

	if err := config.DB.Save(&material).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update material")
		return
	}

	if err := services.RecomputeDerivedPrices(config.DB); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to refresh derived prices")
		return
	}

	c.JSON(http.StatusOK, material)
}

func DeleteMaterial(c *gin.Context) {
	materialUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid material ID format")
		return
	}

	result := config.DB.Delete(&models.Material{}, "id = ?", materialUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete material")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Material not found")
		return
	}

	if err := services.RecomputeDerivedPrices(config.DB); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to refresh derived prices")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Material deleted successfully"})
}
