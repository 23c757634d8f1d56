package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Material struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	PackagePrice float64   `gorm:"type:decimal(10,2);not null" json:"packagePrice"`
	PackageSize  float64   `gorm:"not null" json:"packageSize"`
	Unit         string    `gorm:"default:'ml'" json:"unit"`

	gorm.Model
}

func (m *Material) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}

// CostPerUnit is the package price spread over the package size.
func (m *Material) CostPerUnit() float64 {
	if m.PackageSize <= 0 {
		return 0
	}
	return m.PackagePrice / m.PackageSize
}
