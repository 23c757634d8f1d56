package analytics

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonledger-backend/models"
)

var (
	ana   = uuid.New()
	bia   = uuid.New()
	clara = uuid.New()
)

func completedPaid(customer uuid.UUID, date time.Time, price float64) models.Appointment {
	return models.Appointment{
		ID:            uuid.New(),
		Date:          date,
		CustomerID:    customer,
		ServiceName:   "Cut",
		Price:         price,
		Status:        models.AppointmentCompleted,
		PaymentStatus: models.PaymentPaid,
	}
}

func reportPeriod() Period {
	return Period{Start: day(2024, time.June, 10), End: day(2024, time.June, 16)}
}

func reportNow() time.Time {
	return day(2024, time.June, 17)
}

func computeFixture(appointments []models.Appointment, transactions []models.Transaction) PeriodReport {
	return ComputePeriodReport(appointments, transactions, testSettings(), nil, reportPeriod(), reportNow())
}

func TestPeriodReportRevenueAndExpenses(t *testing.T) {
	appointments := []models.Appointment{
		completedPaid(ana, day(2024, time.June, 10), 100),
		completedPaid(bia, day(2024, time.June, 12), 50),
		// Completed but unpaid: counts for attendance, not revenue.
		{ID: uuid.New(), Date: day(2024, time.June, 13), CustomerID: clara,
			Status: models.AppointmentCompleted, PaymentStatus: models.PaymentPending, Price: 80},
		// Outside the window.
		completedPaid(ana, day(2024, time.June, 20), 999),
	}
	syntheticFor := appointments[0].ID
	transactions := []models.Transaction{
		// Synthetic mirror of the first appointment: must not double count.
		{ID: uuid.New(), Date: day(2024, time.June, 10), Type: models.TransactionIncome,
			Amount: 100, AppointmentID: &syntheticFor},
		// Manual income is additive.
		{ID: uuid.New(), Date: day(2024, time.June, 11), Type: models.TransactionIncome, Amount: 30},
		{ID: uuid.New(), Date: day(2024, time.June, 11), Type: models.TransactionExpense,
			Amount: 40, Category: "Produtos"},
	}

	report := computeFixture(appointments, transactions)
	current := report.Current

	assert.InDelta(t, 180, current.Revenue, 1e-9)
	assert.InDelta(t, 40, current.Expenses, 1e-9)
	assert.InDelta(t, 140, current.NetProfit, 1e-9)
	assert.Equal(t, 3, current.CompletedCount)
	assert.InDelta(t, 60, current.AverageTicket, 1e-9)

	// Break-even is the monthly cost base, never pro-rated to the window.
	assert.InDelta(t, AggregateCosts(testSettings(), nil).TotalMonthlyCost, current.BreakEvenTarget, 1e-9)
	assert.Equal(t, current.BreakEvenTarget, report.Comparison.BreakEvenTarget)
}

func TestPeriodReportAttendanceRate(t *testing.T) {
	appointments := []models.Appointment{
		completedPaid(ana, day(2024, time.June, 10), 100),
		{ID: uuid.New(), Date: day(2024, time.June, 11), CustomerID: bia, Status: models.AppointmentNoShow},
		// Scheduled and canceled stay out of the denominator.
		{ID: uuid.New(), Date: day(2024, time.June, 12), CustomerID: bia, Status: models.AppointmentScheduled},
		{ID: uuid.New(), Date: day(2024, time.June, 12), CustomerID: clara, Status: models.AppointmentCanceled},
	}

	report := computeFixture(appointments, nil)

	assert.InDelta(t, 0.5, report.Current.AttendanceRate, 1e-9)
}

func TestPeriodReportAttendanceRateZeroGuard(t *testing.T) {
	appointments := []models.Appointment{
		{ID: uuid.New(), Date: day(2024, time.June, 12), CustomerID: bia, Status: models.AppointmentScheduled},
	}

	report := computeFixture(appointments, nil)

	assert.Zero(t, report.Current.AttendanceRate)
	assert.Zero(t, report.Current.AverageTicket)
}

func TestPeriodReportNewVersusRecurringClients(t *testing.T) {
	appointments := []models.Appointment{
		// Ana's first-ever visit predates the window: recurring.
		completedPaid(ana, day(2024, time.February, 1), 50),
		completedPaid(ana, day(2024, time.June, 11), 60),
		// Bia's only appointment is inside the window: new, even though
		// it is a no-show.
		{ID: uuid.New(), Date: day(2024, time.June, 12), CustomerID: bia, Status: models.AppointmentNoShow},
	}

	report := computeFixture(appointments, nil)

	assert.Equal(t, 1, report.Current.NewClients)
	assert.Equal(t, 1, report.Current.RecurringClients)
}

func TestPeriodReportDailyCashFlow(t *testing.T) {
	appointments := []models.Appointment{
		completedPaid(ana, day(2024, time.June, 10), 100),
		completedPaid(bia, day(2024, time.June, 12), 50),
	}
	transactions := []models.Transaction{
		{ID: uuid.New(), Date: day(2024, time.June, 12), Type: models.TransactionExpense,
			Amount: 70, Category: "Contas"},
	}

	report := computeFixture(appointments, transactions)
	flow := report.Current.DailyCashFlow

	require.Len(t, flow, 7, "one entry per calendar day, including idle days")

	want := []DailyCashFlow{
		{Date: day(2024, time.June, 10), Income: 100, RunningBalance: 100},
		{Date: day(2024, time.June, 11), RunningBalance: 100},
		{Date: day(2024, time.June, 12), Income: 50, Expense: 70, RunningBalance: 80},
		{Date: day(2024, time.June, 13), RunningBalance: 80},
		{Date: day(2024, time.June, 14), RunningBalance: 80},
		{Date: day(2024, time.June, 15), RunningBalance: 80},
		{Date: day(2024, time.June, 16), RunningBalance: 80},
	}
	if diff := cmp.Diff(want, flow); diff != "" {
		t.Errorf("daily cash flow mismatch (-want +got):\n%s", diff)
	}
}

func TestPeriodReportExpenseByCategory(t *testing.T) {
	transactions := []models.Transaction{
		{ID: uuid.New(), Date: day(2024, time.June, 10), Type: models.TransactionExpense, Amount: 300, Category: "Pessoal"},
		{ID: uuid.New(), Date: day(2024, time.June, 11), Type: models.TransactionExpense, Amount: 100, Category: "Produtos"},
		{ID: uuid.New(), Date: day(2024, time.June, 11), Type: models.TransactionExpense, Amount: 200, Category: "Produtos"},
		{ID: uuid.New(), Date: day(2024, time.June, 12), Type: models.TransactionExpense, Amount: 50, Category: "Decoração"},
	}

	report := computeFixture(nil, transactions)
	categories := report.Current.ExpenseByCategory

	require.Len(t, categories, 3)
	assert.Equal(t, "Pessoal", categories[0].Category)
	assert.Equal(t, "Produtos", categories[1].Category)
	assert.InDelta(t, 300, categories[1].Amount, 1e-9)
	assert.Equal(t, "Decoração", categories[2].Category)

	// Known categories keep their pinned color; unknown ones take the
	// fallback palette in first-seen order.
	assert.Equal(t, knownCategoryColors["Pessoal"], categories[0].Color)
	assert.Equal(t, fallbackPalette[0], categories[2].Color)
}

func TestPeriodReportTopSpenders(t *testing.T) {
	var appointments []models.Appointment
	customers := make([]uuid.UUID, 12)
	for i := range customers {
		customers[i] = uuid.New()
		appointments = append(appointments,
			completedPaid(customers[i], day(2024, time.June, 11), float64(10*(i+1))))
	}
	// A second visit pushes the last customer further ahead.
	appointments = append(appointments, completedPaid(customers[11], day(2024, time.June, 14), 5))

	report := computeFixture(appointments, nil)
	top := report.Current.TopSpenders

	require.Len(t, top, 10, "top spenders are capped at ten")
	assert.Equal(t, customers[11], top[0].CustomerID)
	assert.InDelta(t, 125, top[0].Total, 1e-9)
	assert.Equal(t, 2, top[0].Visits)
	assert.GreaterOrEqual(t, top[0].Total, top[9].Total)
}

func TestPeriodReportAtRiskClients(t *testing.T) {
	now := reportNow()
	appointments := []models.Appointment{
		// 90 days since last completed visit: at risk.
		completedPaid(ana, now.AddDate(0, 0, -90), 50),
		// 30 days: still recent.
		completedPaid(bia, now.AddDate(0, 0, -30), 50),
		// 150 days: considered lost.
		completedPaid(clara, now.AddDate(0, 0, -150), 50),
	}

	report := computeFixture(appointments, nil)
	atRisk := report.Current.AtRiskClients

	require.Len(t, atRisk, 1)
	assert.Equal(t, ana, atRisk[0].CustomerID)
	assert.Equal(t, 90, atRisk[0].DaysSinceLastVisit)
}

func TestPeriodReportAtRiskBoundsAreStrict(t *testing.T) {
	now := reportNow()
	appointments := []models.Appointment{
		completedPaid(ana, now.AddDate(0, 0, -60), 50),
		completedPaid(bia, now.AddDate(0, 0, -120), 50),
		completedPaid(clara, now.AddDate(0, 0, -61), 50),
	}

	report := computeFixture(appointments, nil)
	atRisk := report.Current.AtRiskClients

	require.Len(t, atRisk, 1)
	assert.Equal(t, clara, atRisk[0].CustomerID)
}

func TestPeriodReportComparisonWindowUsesSameLogic(t *testing.T) {
	appointments := []models.Appointment{
		// Inside the comparison window (June 3-9).
		completedPaid(ana, day(2024, time.June, 5), 80),
		// Inside the current window.
		completedPaid(bia, day(2024, time.June, 11), 120),
	}

	report := computeFixture(appointments, nil)

	assert.InDelta(t, 120, report.Current.Revenue, 1e-9)
	assert.InDelta(t, 80, report.Comparison.Revenue, 1e-9)
	assert.Equal(t, report.Current.Period.Days(), report.Comparison.Period.Days())
	assert.Len(t, report.Comparison.DailyCashFlow, 7)
}

func TestPeriodReportDeterministic(t *testing.T) {
	appointments := []models.Appointment{
		completedPaid(ana, day(2024, time.June, 10), 100),
		completedPaid(bia, day(2024, time.June, 12), 50),
	}
	transactions := []models.Transaction{
		{ID: uuid.New(), Date: day(2024, time.June, 11), Type: models.TransactionExpense, Amount: 40, Category: "Contas"},
	}

	first := computeFixture(appointments, transactions)
	second := computeFixture(appointments, transactions)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("recomputation drifted (-first +second):\n%s", diff)
	}
}
