package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction is one cash-flow entry. Rows synthesized from a
// completed and paid appointment carry AppointmentID and
// CanBeDeleted=false; they follow the appointment and reject direct
// edits or deletes.
type Transaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Date        time.Time `gorm:"index;not null" json:"date"`
	Description string    `json:"description"`

	Type     string  `gorm:"type:varchar(10);not null" json:"type"`
	Amount   float64 `gorm:"type:decimal(10,2);not null" json:"amount"`
	Category string  `gorm:"default:'Outros'" json:"category"`

	CanBeDeleted  bool       `gorm:"default:true" json:"canBeDeleted"`
	AppointmentID *uuid.UUID `gorm:"type:uuid;index" json:"appointmentId,omitempty"`

	gorm.Model
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}

// Synthetic reports whether the transaction mirrors an appointment.
func (t *Transaction) Synthetic() bool {
	return t.AppointmentID != nil
}
