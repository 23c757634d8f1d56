package analytics

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"salonledger-backend/models"
)

func TestServiceBreakdown(t *testing.T) {
	materialID := uuid.New()
	materials := map[uuid.UUID]models.Material{
		materialID: {ID: materialID, Name: "Tint", PackagePrice: 10, PackageSize: 2},
	}
	recipe := models.ServiceRecipe{
		ExecutionTimeMinutes: 30,
		Yields:               1,
		MaterialsUsed: models.RecipeMaterialList{
			{MaterialID: materialID, Quantity: 1},
		},
	}

	got := ServiceBreakdown(recipe, materials, 1)

	assert.InDelta(t, 5, got.MaterialsCost, 1e-9)
	assert.InDelta(t, 0, got.CostWithAdditionals, 1e-9)
	assert.InDelta(t, 30, got.LaborCost, 1e-9)
	assert.InDelta(t, 35, got.TotalCost, 1e-9)
	assert.Empty(t, got.Warnings)
}

func TestServiceBreakdownMargins(t *testing.T) {
	materialID := uuid.New()
	materials := map[uuid.UUID]models.Material{
		materialID: {ID: materialID, PackagePrice: 40, PackageSize: 4},
	}
	recipe := models.ServiceRecipe{
		ExecutionTimeMinutes:   60,
		Yields:                 2,
		MaterialsUsed:          models.RecipeMaterialList{{MaterialID: materialID, Quantity: 2}},
		AdditionalCostsPercent: 10,
		SafetyMarginPercent:    20,
	}

	got := ServiceBreakdown(recipe, materials, 0.5)

	// Raw materials 2*10=20, /yields=10; additionals 10%; labor 60*0.5/2=15.
	assert.InDelta(t, 10, got.MaterialsCost, 1e-9)
	assert.InDelta(t, 1, got.CostWithAdditionals, 1e-9)
	assert.InDelta(t, 15, got.LaborCost, 1e-9)
	assert.InDelta(t, 26*1.20, got.TotalCost, 1e-9)
}

func TestServiceBreakdownMissingMaterial(t *testing.T) {
	recipe := models.ServiceRecipe{
		ExecutionTimeMinutes: 10,
		Yields:               1,
		MaterialsUsed:        models.RecipeMaterialList{{MaterialID: uuid.New(), Quantity: 3}},
	}

	got := ServiceBreakdown(recipe, map[uuid.UUID]models.Material{}, 1)

	// Dangling reference contributes zero cost but is surfaced.
	assert.Zero(t, got.MaterialsCost)
	assert.InDelta(t, 10, got.TotalCost, 1e-9)
	assert.Len(t, got.Warnings, 1)
}

func TestServiceBreakdownZeroYieldsDefaultsToOne(t *testing.T) {
	recipe := models.ServiceRecipe{ExecutionTimeMinutes: 20, Yields: 0}

	got := ServiceBreakdown(recipe, nil, 2)

	assert.InDelta(t, 40, got.LaborCost, 1e-9)
}

func TestSalePrice(t *testing.T) {
	testData := []struct {
		name          string
		totalCost     float64
		marginPercent float64
		want          float64
	}{
		{name: "fifty percent margin doubles cost", totalCost: 35, marginPercent: 50, want: 70},
		{name: "zero margin sells at cost", totalCost: 35, marginPercent: 0, want: 35},
		{name: "margin on price not on cost", totalCost: 80, marginPercent: 20, want: 100},
		{name: "hundred percent margin is clamped", totalCost: 10, marginPercent: 100, want: 10 / 0.01},
		{name: "negative margin is clamped to zero", totalCost: 10, marginPercent: -5, want: 10},
	}

	for _, tt := range testData {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SalePrice(tt.totalCost, tt.marginPercent), 1e-9)
		})
	}
}

func TestDerivedPrice(t *testing.T) {
	materialID := uuid.New()
	materials := map[uuid.UUID]models.Material{
		materialID: {ID: materialID, PackagePrice: 10, PackageSize: 2},
	}
	recipe := models.ServiceRecipe{
		ExecutionTimeMinutes: 30,
		Yields:               1,
		MaterialsUsed:        models.RecipeMaterialList{{MaterialID: materialID, Quantity: 1}},
		ProfitMarginPercent:  50,
	}

	// Cost 35, margin-on-price 50% -> 70, rounded -> 75.90.
	assert.InDelta(t, 75.90, DerivedPrice(recipe, materials, 1, true), 1e-9)
	assert.InDelta(t, 70, DerivedPrice(recipe, materials, 1, false), 1e-9)
}
