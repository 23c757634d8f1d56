package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleProfessional = "professional"
	RoleReceptionist = "receptionist"
	RoleManager      = "manager"
)

type Employee struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name  string    `gorm:"not null" json:"name"`
	Phone string    `json:"phone"`

	Role     string `gorm:"type:varchar(20);default:'professional'" json:"role"`
	IsActive bool   `gorm:"default:true" json:"isActive"`

	gorm.Model
}

func (e *Employee) BeforeCreate(tx *gorm.DB) (err error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return
}
