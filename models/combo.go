package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Combo bundles services at a discount. FinalPrice and DiscountPercent
// are mutually derivable from the sum of the included services'
// prices; only services with a recipe are eligible for inclusion.
type Combo struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name       string    `gorm:"not null" json:"name"`
	ServiceIDs UUIDList  `gorm:"type:jsonb;default:'[]'" json:"serviceIds"`

	FinalPrice      float64 `gorm:"type:decimal(10,2);default:0.0" json:"finalPrice"`
	DiscountPercent float64 `gorm:"type:decimal(5,2);default:0.0" json:"discountPercent"`
	UseRounding     bool    `gorm:"default:true" json:"useRounding"`

	gorm.Model
}

func (c *Combo) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
