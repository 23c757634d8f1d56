// controllers/commission.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salonledger-backend/analytics"
	"salonledger-backend/config"
	"salonledger-backend/models"
	"salonledger-backend/services"
	"salonledger-backend/utils"
)

// GetCommissionReport aggregates per-professional commissions for the
// requested window and its comparison window. Appointments store the
// professional's display name, so the name→employee resolution happens
// here at the boundary and the engine only sees resolved ids.
func GetCommissionReport(c *gin.Context) {
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

	var employees []models.Employee
	if err := config.DB.Find(&employees).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load employees")
		return
	}

	settings, err := services.LoadCostSettings(config.DB)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load cost settings")
		return
	}

	resolve := make(map[string]uuid.UUID, len(employees))
	for _, e := range employees {
		resolve[e.Name] = e.ID
	}

	rates := analytics.CommissionRates{
		DefaultRatePercent: settings.Personnel.DefaultCommissionRatePercent,
		Overrides:          settings.Personnel.CommissionOverrides,
	}

	report := analytics.ComputeCommissions(appointments, employees, rates, resolve, period)
	c.JSON(http.StatusOK, report)
}
