package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceRecipe is the cost/time formula behind a service: materials,
// execution time and margins. One recipe per service.
type ServiceRecipe struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"serviceId"`

	ExecutionTimeMinutes   float64            `gorm:"default:0" json:"executionTimeMinutes"`
	Yields                 float64            `gorm:"default:1" json:"yields"`
	MaterialsUsed          RecipeMaterialList `gorm:"type:jsonb;default:'[]'" json:"materialsUsed"`
	AdditionalCostsPercent float64            `gorm:"type:decimal(5,2);default:0.0" json:"additionalCostsPercent"`
	SafetyMarginPercent    float64            `gorm:"type:decimal(5,2);default:0.0" json:"safetyMarginPercent"`
	ProfitMarginPercent    float64            `gorm:"type:decimal(5,2);default:0.0" json:"profitMarginPercent"`

	gorm.Model
}

func (r *ServiceRecipe) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
