package analytics

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonledger-backend/models"
)

func TestComboFromDiscount(t *testing.T) {
	// Services priced 100 and 50, 10% discount.
	assert.InDelta(t, 135, ComboFromDiscount(150, 10, false), 1e-9)
	assert.InDelta(t, 135.90, ComboFromDiscount(150, 10, true), 1e-9)
}

func TestComboFromPrice(t *testing.T) {
	testData := []struct {
		name     string
		sum      float64
		newPrice float64
		want     float64
	}{
		{name: "ten percent discount back-derived", sum: 150, newPrice: 135, want: 10},
		{name: "full price means no discount", sum: 150, newPrice: 150, want: 0},
		{name: "price above sum yields negative discount", sum: 100, newPrice: 110, want: -10},
		{name: "zero sum guard", sum: 0, newPrice: 50, want: 0},
	}

	for _, tt := range testData {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ComboFromPrice(tt.sum, tt.newPrice), 1e-9)
		})
	}
}

func comboFixture() (models.Combo, map[uuid.UUID]models.Service, map[uuid.UUID]models.ServiceRecipe, map[uuid.UUID]models.Material) {
	cutID := uuid.New()
	colorID := uuid.New()
	materialID := uuid.New()

	services := map[uuid.UUID]models.Service{
		cutID:   {ID: cutID, Name: "Cut", Price: 100, DurationMinutes: 30},
		colorID: {ID: colorID, Name: "Color", Price: 50, DurationMinutes: 60},
	}
	recipes := map[uuid.UUID]models.ServiceRecipe{
		cutID: {ServiceID: cutID, ExecutionTimeMinutes: 30, Yields: 1},
		colorID: {
			ServiceID:            colorID,
			ExecutionTimeMinutes: 60,
			Yields:               1,
			MaterialsUsed:        models.RecipeMaterialList{{MaterialID: materialID, Quantity: 1}},
		},
	}
	materials := map[uuid.UUID]models.Material{
		materialID: {ID: materialID, PackagePrice: 20, PackageSize: 2},
	}
	combo := models.Combo{
		ID:         uuid.New(),
		Name:       "Cut + Color",
		ServiceIDs: models.UUIDList{cutID, colorID},
		FinalPrice: 135.90,
	}
	return combo, services, recipes, materials
}

func TestAnalyzeCombo(t *testing.T) {
	combo, services, recipes, materials := comboFixture()

	got := AnalyzeCombo(combo, services, recipes, materials, 1)

	assert.InDelta(t, 150, got.SumOfIndividualPrices, 1e-9)
	// Cut: 30 labor. Color: 10 materials + 60 labor. Total 100.
	assert.InDelta(t, 100, got.TotalOperationalCost, 1e-9)
	assert.InDelta(t, 90, got.TotalDurationMinutes, 1e-9)
	assert.InDelta(t, 35.90, got.NetProfit, 1e-9)
	assert.InDelta(t, 35.90/135.90*100, got.ProfitMarginPercent, 1e-9)
	assert.InDelta(t, 35.90/90, got.ValuePerMinute, 1e-9)
	assert.False(t, got.Unprofitable)
	assert.Empty(t, got.Warnings)
}

func TestAnalyzeComboUnprofitable(t *testing.T) {
	combo, services, recipes, materials := comboFixture()
	combo.FinalPrice = 50

	got := AnalyzeCombo(combo, services, recipes, materials, 1)

	assert.True(t, got.Unprofitable)
	assert.Negative(t, got.NetProfit)
}

func TestAnalyzeComboDanglingService(t *testing.T) {
	combo, services, recipes, materials := comboFixture()
	combo.ServiceIDs = append(combo.ServiceIDs, uuid.New())

	got := AnalyzeCombo(combo, services, recipes, materials, 1)

	require.Len(t, got.Warnings, 1)
	assert.InDelta(t, 150, got.SumOfIndividualPrices, 1e-9)
}

func TestAnalyzeComboZeroPriceGuards(t *testing.T) {
	combo, services, recipes, materials := comboFixture()
	combo.FinalPrice = 0

	got := AnalyzeCombo(combo, services, recipes, materials, 1)

	assert.Zero(t, got.ProfitMarginPercent)
}

func TestAnalyzePlan(t *testing.T) {
	serviceID := uuid.New()
	materialID := uuid.New()
	recipes := map[uuid.UUID]models.ServiceRecipe{
		serviceID: {
			ServiceID:            serviceID,
			ExecutionTimeMinutes: 30,
			Yields:               1,
			MaterialsUsed:        models.RecipeMaterialList{{MaterialID: materialID, Quantity: 1}},
		},
	}
	materials := map[uuid.UUID]models.Material{
		materialID: {ID: materialID, PackagePrice: 10, PackageSize: 2},
	}
	plan := models.SubscriptionPlan{
		Name:  "Monthly Cut",
		Price: 150,
		IncludedServices: models.PlanServiceList{
			{ServiceID: serviceID, Quantity: 4},
		},
	}

	got := AnalyzePlan(plan, recipes, materials, 1)

	// Breakdown cost 35 per execution, 4 included.
	assert.InDelta(t, 140, got.TotalOperationalCost, 1e-9)
	assert.InDelta(t, 161, got.SuggestedMinimumPrice, 1e-9)
	assert.InDelta(t, 10, got.Profit, 1e-9)
	assert.InDelta(t, 10.0/150*100, got.MarginPercent, 1e-9)
	assert.True(t, got.BelowSuggestedMinimum)
}

func TestAnalyzePlanMissingRecipe(t *testing.T) {
	plan := models.SubscriptionPlan{
		Price:            100,
		IncludedServices: models.PlanServiceList{{ServiceID: uuid.New(), Quantity: 2}},
	}

	got := AnalyzePlan(plan, nil, nil, 1)

	assert.Zero(t, got.TotalOperationalCost)
	assert.Len(t, got.Warnings, 1)
	assert.False(t, got.BelowSuggestedMinimum)
}
