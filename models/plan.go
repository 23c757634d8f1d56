package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PlanPeriodMonthly = "monthly"
	PlanPeriodYearly  = "yearly"
)

type SubscriptionPlan struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"not null" json:"name"`

	Price            float64         `gorm:"type:decimal(10,2);not null" json:"price"`
	Period           string          `gorm:"type:varchar(10);default:'monthly'" json:"period"`
	IncludedServices PlanServiceList `gorm:"type:jsonb;default:'[]'" json:"includedServices"`
	Features         StringList      `gorm:"type:jsonb;default:'[]'" json:"features"`
	IsPopular        bool            `gorm:"default:false" json:"isPopular"`

	gorm.Model
}

func (p *SubscriptionPlan) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
