// services/price_sync.go
package services

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"salonledger-backend/analytics"
	"salonledger-backend/config"
	"salonledger-backend/models"
)

// PriceSyncService keeps cached derived service prices in step with
// the cost base. Write paths already recompute eagerly; the nightly
// pass catches drift from out-of-band data changes.
type PriceSyncService struct {
	db *gorm.DB
}

func NewPriceSyncService(db *gorm.DB) *PriceSyncService {
	return &PriceSyncService{db: db}
}

func (s *PriceSyncService) StartScheduler() {
	c := cron.New()

	// Run every day at 3 AM
	c.AddFunc("0 3 * * *", s.SyncDerivedPrices)

	c.Start()
	config.Log.Info("price sync scheduler started")
}

func (s *PriceSyncService) SyncDerivedPrices() {
	config.Log.Info("starting derived price sync")

	if err := RecomputeDerivedPrices(s.db); err != nil {
		config.Log.Error("derived price sync failed", zap.Error(err))
		return
	}

	config.Log.Info("derived price sync completed")
}

// RecomputeDerivedPrices refreshes the cached price of every
// auto-priced service from its recipe and the current cost-per-minute.
// Called after any write that can shift costs: settings, materials,
// recipes, service pricing flags, roster changes.
func RecomputeDerivedPrices(db *gorm.DB) error {
	costPerMinute, err := CurrentCostPerMinute(db)
	if err != nil {
		return err
	}
	materials, err := LoadMaterialMap(db)
	if err != nil {
		return err
	}
	recipes, err := LoadRecipeMap(db)
	if err != nil {
		return err
	}

	var services []models.Service
	if err := db.Where("use_manual_price = ?", false).Find(&services).Error; err != nil {
		return err
	}

	for _, service := range services {
		recipe, ok := recipes[service.ID]
		if !ok {
			continue
		}
		price := analytics.DerivedPrice(recipe, materials, costPerMinute, service.UseRounding)
		if price == service.Price {
			continue
		}
		if err := db.Model(&models.Service{}).Where("id = ?", service.ID).
			Update("price", price).Error; err != nil {
			return err
		}
		config.Log.Info("derived price updated",
			zap.String("serviceId", service.ID.String()),
			zap.Float64("price", price))
	}
	return nil
}
