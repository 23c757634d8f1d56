package analytics

import (
	"sort"

	"github.com/google/uuid"

	"salonledger-backend/models"
)

// CommissionRates is the commission configuration: a default rate and
// per-employee overrides, both as 0-100 percentages.
type CommissionRates struct {
	DefaultRatePercent float64               `json:"defaultRatePercent"`
	Overrides          map[uuid.UUID]float64 `json:"overrides"`
}

// ProfessionalCommission is one professional's windowed totals.
type ProfessionalCommission struct {
	EmployeeID   uuid.UUID `json:"employeeId"`
	Name         string    `json:"name"`
	Appointments int       `json:"appointments"`
	Revenue      float64   `json:"revenue"`
	RatePercent  float64   `json:"ratePercent"`
	Commission   float64   `json:"commission"`
}

type CommissionSummary struct {
	Period          Period                   `json:"period"`
	Professionals   []ProfessionalCommission `json:"professionals"`
	TotalRevenue    float64                  `json:"totalRevenue"`
	TotalCommission float64                  `json:"totalCommission"`
}

type CommissionReport struct {
	Current    CommissionSummary `json:"current"`
	Comparison CommissionSummary `json:"comparison"`
}

// ComputeCommissions aggregates completed appointments per active
// professional for the period and its comparison window. The caller
// supplies resolve, a professional-name to employee-id mapping, so the
// engine itself never matches by free-form name.
func ComputeCommissions(
	appointments []models.Appointment,
	employees []models.Employee,
	rates CommissionRates,
	resolve map[string]uuid.UUID,
	period Period,
) CommissionReport {
	current := NormalizePeriod(period)
	comparison := ComparisonWindow(current)

	professionals := make(map[uuid.UUID]models.Employee)
	for _, e := range employees {
		if e.IsActive && e.Role == models.RoleProfessional {
			professionals[e.ID] = e
		}
	}

	return CommissionReport{
		Current:    commissionWindow(appointments, professionals, rates, resolve, current),
		Comparison: commissionWindow(appointments, professionals, rates, resolve, comparison),
	}
}

func commissionWindow(
	appointments []models.Appointment,
	professionals map[uuid.UUID]models.Employee,
	rates CommissionRates,
	resolve map[string]uuid.UUID,
	window Period,
) CommissionSummary {
	summary := CommissionSummary{Period: window}

	rows := make(map[uuid.UUID]*ProfessionalCommission)
	for _, a := range appointments {
		if a.Status != models.AppointmentCompleted || !window.Contains(a.Date) {
			continue
		}
		employeeID, ok := resolve[a.Professional]
		if !ok {
			continue
		}
		employee, ok := professionals[employeeID]
		if !ok {
			continue
		}

		row := rows[employeeID]
		if row == nil {
			rate := rates.DefaultRatePercent
			if override, ok := rates.Overrides[employeeID]; ok {
				rate = override
			}
			row = &ProfessionalCommission{
				EmployeeID:  employeeID,
				Name:        employee.Name,
				RatePercent: rate,
			}
			rows[employeeID] = row
		}
		row.Appointments++
		row.Revenue += a.Price
	}

	summary.Professionals = make([]ProfessionalCommission, 0, len(rows))
	for _, row := range rows {
		row.Commission = row.Revenue * pct(row.RatePercent)
		summary.TotalRevenue += row.Revenue
		summary.TotalCommission += row.Commission
		summary.Professionals = append(summary.Professionals, *row)
	}

	sort.Slice(summary.Professionals, func(i, j int) bool {
		a, b := summary.Professionals[i], summary.Professionals[j]
		if a.Revenue != b.Revenue {
			return a.Revenue > b.Revenue
		}
		return a.Name < b.Name
	})

	return summary
}
