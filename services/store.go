// services/store.go
package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"salonledger-backend/analytics"
	"salonledger-backend/models"
)

// LoadCostSettings returns the singleton settings row, creating a
// zeroed one on first access.
func LoadCostSettings(db *gorm.DB) (models.CostSettings, error) {
	var settings models.CostSettings
	err := db.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.CostSettings{
			Personnel: models.PersonnelCosts{
				SalaryOverrides:     models.MoneyByEmployee{},
				CommissionOverrides: models.MoneyByEmployee{},
				WorkingDaysPerMonth: 22,
				WorkingHoursPerDay:  8,
			},
		}
		err = db.Create(&settings).Error
	}
	return settings, err
}

func LoadMaterialMap(db *gorm.DB) (map[uuid.UUID]models.Material, error) {
	var materials []models.Material
	if err := db.Find(&materials).Error; err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]models.Material, len(materials))
	for _, m := range materials {
		out[m.ID] = m
	}
	return out, nil
}

// LoadRecipeMap keys recipes by their service id (one recipe per
// service).
func LoadRecipeMap(db *gorm.DB) (map[uuid.UUID]models.ServiceRecipe, error) {
	var recipes []models.ServiceRecipe
	if err := db.Find(&recipes).Error; err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]models.ServiceRecipe, len(recipes))
	for _, r := range recipes {
		out[r.ServiceID] = r
	}
	return out, nil
}

func LoadServiceMap(db *gorm.DB) (map[uuid.UUID]models.Service, error) {
	var services []models.Service
	if err := db.Find(&services).Error; err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]models.Service, len(services))
	for _, s := range services {
		out[s.ID] = s
	}
	return out, nil
}

// CurrentCostPerMinute recomputes the cost base from settings and the
// active roster.
func CurrentCostPerMinute(db *gorm.DB) (float64, error) {
	settings, err := LoadCostSettings(db)
	if err != nil {
		return 0, err
	}
	var employees []models.Employee
	if err := db.Where("is_active = ?", true).Find(&employees).Error; err != nil {
		return 0, err
	}
	return analytics.AggregateCosts(settings, employees).CostPerMinute, nil
}
