// controllers/appointment.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"salonledger-backend/config"
	"salonledger-backend/models"
	"salonledger-backend/utils"
)

type CreateAppointmentInput struct {
	Date         string    `json:"date" binding:"required"` // YYYY-MM-DD
	Time         string    `json:"time"`
	CustomerID   uuid.UUID `json:"customerId" binding:"required"`
	ServiceName  string    `json:"serviceName" binding:"required"`
	Professional string    `json:"professional"`
	Price        float64   `json:"price" binding:"min=0"`
}

type UpdateAppointmentInput struct {
	Date          *string  `json:"date"`
	Time          *string  `json:"time"`
	ServiceName   *string  `json:"serviceName"`
	Professional  *string  `json:"professional"`
	Price         *float64 `json:"price"`
	Status        *string  `json:"status" binding:"omitempty,oneof=scheduled completed canceled no_show"`
	PaymentStatus *string  `json:"paymentStatus" binding:"omitempty,oneof=pending paid"`
}

func CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := time.Parse(dateLayout, input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	appointment := models.Appointment{
		Date:          date,
		Time:          input.Time,
		CustomerID:    input.CustomerID,
		ServiceName:   input.ServiceName,
		Professional:  input.Professional,
		Price:         input.Price,
		Status:        models.AppointmentScheduled,
		PaymentStatus: models.PaymentPending,
	}

	if err := config.DB.Create(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

func GetAppointments(c *gin.Context) {
	var appointments []models.Appointment
	if err := config.DB.Order("date, time").Find(&appointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// UpdateAppointment updates an appointment. When the update lands it
// in the completed+paid state, the matching income transaction is
// synthesized exactly once; leaving that state removes it again so the
// ledger always mirrors billable appointments.
func UpdateAppointment(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var appointment models.Appointment
	if err := config.DB.First(&appointment, "id = ?", appointmentUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	wasBillable := appointment.Billable()

	if input.Date != nil {
		date, err := time.Parse(dateLayout, *input.Date)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		appointment.Date = date
	}
	if input.Time != nil {
		appointment.Time = *input.Time
	}
	if input.ServiceName != nil {
		appointment.ServiceName = *input.ServiceName
	}
	if input.Professional != nil {
		appointment.Professional = *input.Professional
	}
	if input.Price != nil {
		appointment.Price = *input.Price
	}
	if input.Status != nil {
		appointment.Status = *input.Status
	}
	if input.PaymentStatus != nil {
		appointment.PaymentStatus = *input.PaymentStatus
	}

	if err := config.DB.Save(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	if err := syncAppointmentTransaction(appointment, wasBillable); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to sync appointment transaction")
		return
	}

	c.JSON(http.StatusOK, appointment)
}

func syncAppointmentTransaction(appointment models.Appointment, wasBillable bool) error {
	isBillable := appointment.Billable()

	switch {
	case isBillable && !wasBillable:
		transaction := models.Transaction{
			Date:          appointment.Date,
			Description:   appointment.ServiceName,
			Type:          models.TransactionIncome,
			Amount:        appointment.Price,
			Category:      "Serviços",
			CanBeDeleted:  false,
			AppointmentID: &appointment.ID,
		}
		return config.DB.Create(&transaction).Error
	case !isBillable && wasBillable:
		return config.DB.Unscoped().
			Delete(&models.Transaction{}, "appointment_id = ?", appointment.ID).Error
	case isBillable:
		// Keep the mirror in step with price or date edits.
		return config.DB.Model(&models.Transaction{}).
			Where("appointment_id = ?", appointment.ID).
			Updates(map[string]interface{}{
				"date":        appointment.Date,
				"amount":      appointment.Price,
				"description": appointment.ServiceName,
			}).Error
	}
	return nil
}

func DeleteAppointment(c *gin.Context) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	result := config.DB.Delete(&models.Appointment{}, "id = ?", appointmentUUID)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	// The synthetic mirror goes with the appointment.
	if err := config.DB.Unscoped().
		Delete(&models.Transaction{}, "appointment_id = ?", appointmentUUID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to remove appointment transaction")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted successfully"})
}
