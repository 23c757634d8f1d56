package analytics

import "salonledger-backend/models"

// CostSummary is the normalized monthly cost base of the salon. The
// total doubles as the break-even revenue target for any reporting
// period regardless of its length.
type CostSummary struct {
	PersonnelCost      float64 `json:"personnelCost"`
	OperationalCost    float64 `json:"operationalCost"`
	AdministrativeCost float64 `json:"administrativeCost"`
	TaxCost            float64 `json:"taxCost"`
	TotalMonthlyCost   float64 `json:"totalMonthlyCost"`
	CostPerHour        float64 `json:"costPerHour"`
	CostPerMinute      float64 `json:"costPerMinute"`
}

// pct converts a 0-100 percentage to a fraction. Percentages live as
// 0-100 on the models; all internal math uses fractions.
func pct(p float64) float64 {
	return p / 100
}

// AggregateCosts folds the cost configuration and the employee roster
// into the monthly cost breakdown and the cost-per-minute figure that
// drives all service pricing.
func AggregateCosts(settings models.CostSettings, employees []models.Employee) CostSummary {
	personnel := settings.Personnel

	var totalSalary float64
	for _, e := range employees {
		if salary, ok := personnel.SalaryOverrides[e.ID]; ok {
			totalSalary += salary
		} else {
			totalSalary += personnel.DefaultBaseSalary
		}
	}
	personnelCost := totalSalary * (1 + pct(personnel.SocialChargesPercent))

	op := settings.Operational
	operationalCost := op.Rent + op.Utilities + op.ProductsEstimate + op.CleaningAndMaintenance

	adm := settings.Administrative
	administrativeCost := adm.Marketing + adm.Accounting + adm.Software +
		adm.ProLabore + adm.Depreciation + adm.Other

	// Card and service-tax percentages apply per transaction; only the
	// fixed taxes belong in the monthly base.
	taxCost := settings.Taxes.FixedTaxes

	total := personnelCost + operationalCost + administrativeCost + taxCost

	var costPerHour float64
	monthlyHours := personnel.WorkingDaysPerMonth * personnel.WorkingHoursPerDay
	if monthlyHours > 0 {
		costPerHour = total / monthlyHours
	}

	return CostSummary{
		PersonnelCost:      personnelCost,
		OperationalCost:    operationalCost,
		AdministrativeCost: administrativeCost,
		TaxCost:            taxCost,
		TotalMonthlyCost:   total,
		CostPerHour:        costPerHour,
		CostPerMinute:      costPerHour / 60,
	}
}
