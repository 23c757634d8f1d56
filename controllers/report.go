// controllers/report.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"salonledger-backend/analytics"
	"salonledger-backend/config"
	"salonledger-backend/models"
	"salonledger-backend/services"
	"salonledger-backend/utils"
)

// ReportController handles all reporting functions
type ReportController struct{}

// GetPeriodReport returns the comparative KPI report for the window
// given by startDate/endDate (YYYY-MM-DD, inclusive). The comparison
// window is derived automatically.
func (rc *ReportController) GetPeriodReport(c *gin.Context) {
	period, ok := parsePeriod(c)
	if !ok {
		utils.RespondWithError(c, http.StatusBadRequest, "startDate and endDate are required as YYYY-MM-DD")
		return
	}

	var appointments []models.Appointment
	if err := config.DB.Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load appointments")
		return
	}

	var transactions []models.Transaction
	if err := config.DB.Find(&transactions).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load transactions")
		return
	}

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

	report := analytics.ComputePeriodReport(appointments, transactions, settings, employees, period, time.Now())
	c.JSON(http.StatusOK, report)
}
