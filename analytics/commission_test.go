package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonledger-backend/models"
)

func commissionFixture() ([]models.Employee, map[string]uuid.UUID) {
	employees := []models.Employee{
		{ID: uuid.New(), Name: "Carla", Role: models.RoleProfessional, IsActive: true},
		{ID: uuid.New(), Name: "Diego", Role: models.RoleProfessional, IsActive: true},
		{ID: uuid.New(), Name: "Elisa", Role: models.RoleReceptionist, IsActive: true},
		{ID: uuid.New(), Name: "Fabio", Role: models.RoleProfessional, IsActive: false},
	}
	resolve := make(map[string]uuid.UUID, len(employees))
	for _, e := range employees {
		resolve[e.Name] = e.ID
	}
	return employees, resolve
}

func professionalAppointment(name string, date time.Time, price float64) models.Appointment {
	return models.Appointment{
		ID:           uuid.New(),
		Date:         date,
		CustomerID:   uuid.New(),
		Professional: name,
		Price:        price,
		Status:       models.AppointmentCompleted,
	}
}

func TestComputeCommissions(t *testing.T) {
	employees, resolve := commissionFixture()
	carlaID := resolve["Carla"]

	appointments := []models.Appointment{
		professionalAppointment("Carla", day(2024, time.June, 10), 100),
		professionalAppointment("Carla", day(2024, time.June, 12), 50),
		professionalAppointment("Diego", day(2024, time.June, 11), 200),
		// Comparison window.
		professionalAppointment("Diego", day(2024, time.June, 5), 80),
		// Not completed: excluded.
		{ID: uuid.New(), Date: day(2024, time.June, 13), Professional: "Carla",
			Price: 500, Status: models.AppointmentScheduled},
	}

	rates := CommissionRates{
		DefaultRatePercent: 10,
		Overrides:          map[uuid.UUID]float64{carlaID: 25},
	}

	report := ComputeCommissions(appointments, employees, rates, resolve, reportPeriod())
	current := report.Current

	require.Len(t, current.Professionals, 2)

	// Sorted by revenue, so Diego first.
	assert.Equal(t, "Diego", current.Professionals[0].Name)
	assert.InDelta(t, 200, current.Professionals[0].Revenue, 1e-9)
	assert.InDelta(t, 10, current.Professionals[0].RatePercent, 1e-9)
	assert.InDelta(t, 20, current.Professionals[0].Commission, 1e-9)

	assert.Equal(t, "Carla", current.Professionals[1].Name)
	assert.Equal(t, 2, current.Professionals[1].Appointments)
	assert.InDelta(t, 150, current.Professionals[1].Revenue, 1e-9)
	assert.InDelta(t, 25, current.Professionals[1].RatePercent, 1e-9)
	assert.InDelta(t, 37.50, current.Professionals[1].Commission, 1e-9)

	assert.InDelta(t, 350, current.TotalRevenue, 1e-9)
	assert.InDelta(t, 57.50, current.TotalCommission, 1e-9)

	// The comparison window only holds Diego's June 5 appointment.
	require.Len(t, report.Comparison.Professionals, 1)
	assert.InDelta(t, 80, report.Comparison.TotalRevenue, 1e-9)
	assert.InDelta(t, 8, report.Comparison.TotalCommission, 1e-9)
}

func TestComputeCommissionsSkipsNonProfessionals(t *testing.T) {
	employees, resolve := commissionFixture()

	appointments := []models.Appointment{
		// Receptionist and inactive professional never earn commission.
		professionalAppointment("Elisa", day(2024, time.June, 10), 100),
		professionalAppointment("Fabio", day(2024, time.June, 10), 100),
		// Unknown name cannot be resolved.
		professionalAppointment("Ghost", day(2024, time.June, 10), 100),
	}

	report := ComputeCommissions(appointments, employees, CommissionRates{DefaultRatePercent: 10}, resolve, reportPeriod())

	assert.Empty(t, report.Current.Professionals)
	assert.Zero(t, report.Current.TotalCommission)
}
