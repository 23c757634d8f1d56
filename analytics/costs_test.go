package analytics

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"salonledger-backend/models"
)

func testSettings() models.CostSettings {
	return models.CostSettings{
		Personnel: models.PersonnelCosts{
			DefaultBaseSalary:    2000,
			SocialChargesPercent: 30,
			SalaryOverrides:      models.MoneyByEmployee{},
			WorkingDaysPerMonth:  22,
			WorkingHoursPerDay:   8,
		},
		Operational: models.OperationalCosts{
			Rent:                   3000,
			Utilities:              500,
			ProductsEstimate:       800,
			CleaningAndMaintenance: 200,
		},
		Administrative: models.AdministrativeCosts{
			Marketing:  400,
			Accounting: 300,
			Software:   150,
			ProLabore:  2000,
			Other:      50,
		},
		Taxes: models.TaxCosts{
			FixedTaxes:        600,
			CardFeePercent:    3, // per transaction, must not enter the base
			ServiceTaxPercent: 5,
		},
	}
}

func TestAggregateCosts(t *testing.T) {
	alice := models.Employee{ID: uuid.New(), Name: "Alice"}
	bruna := models.Employee{ID: uuid.New(), Name: "Bruna"}

	settings := testSettings()
	settings.Personnel.SalaryOverrides[bruna.ID] = 3000

	got := AggregateCosts(settings, []models.Employee{alice, bruna})

	// (2000 default + 3000 override) * 1.30 social charges.
	assert.InDelta(t, 6500, got.PersonnelCost, 1e-9)
	assert.InDelta(t, 4500, got.OperationalCost, 1e-9)
	assert.InDelta(t, 2900, got.AdministrativeCost, 1e-9)
	assert.InDelta(t, 600, got.TaxCost, 1e-9)
	assert.InDelta(t, 14500, got.TotalMonthlyCost, 1e-9)

	// 22 days * 8 hours = 176 monthly hours.
	assert.InDelta(t, 14500.0/176, got.CostPerHour, 1e-9)
	assert.InDelta(t, 14500.0/176/60, got.CostPerMinute, 1e-9)
}

func TestAggregateCostsZeroHoursGuard(t *testing.T) {
	settings := testSettings()
	settings.Personnel.WorkingDaysPerMonth = 0

	got := AggregateCosts(settings, nil)

	assert.Positive(t, got.TotalMonthlyCost)
	assert.Zero(t, got.CostPerHour)
	assert.Zero(t, got.CostPerMinute)
}

func TestAggregateCostsNoEmployees(t *testing.T) {
	got := AggregateCosts(testSettings(), nil)
	assert.Zero(t, got.PersonnelCost)
}

func TestAggregateCostsDeterministic(t *testing.T) {
	employees := []models.Employee{
		{ID: uuid.New(), Name: "Alice"},
		{ID: uuid.New(), Name: "Bruna"},
	}
	settings := testSettings()

	first := AggregateCosts(settings, employees)
	second := AggregateCosts(settings, employees)

	assert.Equal(t, first, second)
}
