package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Category    string    `gorm:"default:'General'" json:"category"`

	// Price is a derived field while UseManualPrice is false: it is
	// recomputed from the recipe and cost-per-minute on every write
	// path and must never be set directly by callers in that mode.
	Price           float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	UseManualPrice  bool    `gorm:"default:false" json:"useManualPrice"`
	UseRounding     bool    `gorm:"default:true" json:"useRounding"`
	IsActive        bool    `gorm:"default:true" json:"isActive"`

	gorm.Model
}

func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
