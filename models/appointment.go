package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCanceled  = "canceled"
	AppointmentNoShow    = "no_show"

	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

type Appointment struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Date       time.Time `gorm:"index;not null" json:"date"`
	Time       string    `gorm:"type:varchar(5)" json:"time"` // "HH:MM"
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null" json:"customerId"`

	ServiceName  string  `gorm:"not null" json:"serviceName"`
	Professional string  `json:"professional"`
	Price        float64 `gorm:"type:decimal(10,2);default:0.0" json:"price"`

	Status        string `gorm:"type:varchar(20);default:'scheduled'" json:"status"`
	PaymentStatus string `gorm:"type:varchar(20);default:'pending'" json:"paymentStatus"`

	gorm.Model
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// Billable reports whether the appointment contributes service revenue.
func (a *Appointment) Billable() bool {
	return a.Status == AppointmentCompleted && a.PaymentStatus == PaymentPaid
}
