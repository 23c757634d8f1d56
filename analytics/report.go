package analytics

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"salonledger-backend/models"
	"salonledger-backend/utils"
)

const (
	topSpenderLimit = 10
	atRiskLimit     = 10

	// Lapse window for at-risk classification, in whole days since the
	// last completed visit. Below the floor the client is simply
	// recent; past the ceiling they are considered lost.
	atRiskFloorDays   = 60
	atRiskCeilingDays = 120
)

// knownCategoryColors pins display colors for the salon's standard
// expense categories; anything else cycles the fallback palette in
// first-seen order so charts stay stable between recomputations.
var knownCategoryColors = map[string]string{
	"Pessoal":   "#8B5CF6",
	"Aluguel":   "#F59E0B",
	"Contas":    "#3B82F6",
	"Produtos":  "#10B981",
	"Marketing": "#EC4899",
	"Impostos":  "#EF4444",
}

var fallbackPalette = []string{
	"#6366F1", "#14B8A6", "#F97316", "#84CC16", "#06B6D4", "#A855F7",
}

// DailyCashFlow is one calendar day of the reporting window, present
// even when nothing happened that day.
type DailyCashFlow struct {
	Date           time.Time `json:"date"`
	Income         float64   `json:"income"`
	Expense        float64   `json:"expense"`
	RunningBalance float64   `json:"runningBalance"`
}

type CategoryExpense struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Color    string  `json:"color"`
}

type ClientSpending struct {
	CustomerID uuid.UUID `json:"customerId"`
	Visits     int       `json:"visits"`
	Total      float64   `json:"total"`
}

type AtRiskClient struct {
	CustomerID         uuid.UUID `json:"customerId"`
	LastVisit          time.Time `json:"lastVisit"`
	DaysSinceLastVisit int       `json:"daysSinceLastVisit"`
}

// PeriodMetrics is the KPI set of one reporting window.
type PeriodMetrics struct {
	Period Period `json:"period"`

	Revenue         float64 `json:"revenue"`
	Expenses        float64 `json:"expenses"`
	NetProfit       float64 `json:"netProfit"`
	BreakEvenTarget float64 `json:"breakEvenTarget"`
	AverageTicket   float64 `json:"averageTicket"`
	AttendanceRate  float64 `json:"attendanceRate"`

	CompletedCount int `json:"completedCount"`
	NoShowCount    int `json:"noShowCount"`

	NewClients       int `json:"newClients"`
	RecurringClients int `json:"recurringClients"`

	DailyCashFlow     []DailyCashFlow   `json:"dailyCashFlow"`
	ExpenseByCategory []CategoryExpense `json:"expenseByCategory"`
	TopSpenders       []ClientSpending  `json:"topSpenders"`
	AtRiskClients     []AtRiskClient    `json:"atRiskClients"`
}

// PeriodReport pairs the selected window with its automatically
// derived comparison window, computed by the same aggregation.
type PeriodReport struct {
	Current    PeriodMetrics `json:"current"`
	Comparison PeriodMetrics `json:"comparison"`
}

// ComputePeriodReport builds the comparative KPI report for a period.
// The evaluation instant is injected so the report stays a pure
// function of its arguments.
func ComputePeriodReport(
	appointments []models.Appointment,
	transactions []models.Transaction,
	settings models.CostSettings,
	employees []models.Employee,
	period Period,
	now time.Time,
) PeriodReport {
	current := NormalizePeriod(period)
	comparison := ComparisonWindow(current)

	// Client history is global, not windowed: first-ever visit decides
	// new vs recurring, last completed visit decides at-risk.
	firstVisit := make(map[uuid.UUID]time.Time)
	lastCompleted := make(map[uuid.UUID]time.Time)
	for _, a := range appointments {
		if first, ok := firstVisit[a.CustomerID]; !ok || a.Date.Before(first) {
			firstVisit[a.CustomerID] = a.Date
		}
		if a.Status == models.AppointmentCompleted {
			if last, ok := lastCompleted[a.CustomerID]; !ok || a.Date.After(last) {
				lastCompleted[a.CustomerID] = a.Date
			}
		}
	}

	breakEven := AggregateCosts(settings, employees).TotalMonthlyCost
	atRisk := atRiskClients(lastCompleted, now)

	return PeriodReport{
		Current:    windowMetrics(appointments, transactions, current, firstVisit, atRisk, breakEven),
		Comparison: windowMetrics(appointments, transactions, comparison, firstVisit, atRisk, breakEven),
	}
}

func windowMetrics(
	appointments []models.Appointment,
	transactions []models.Transaction,
	window Period,
	firstVisit map[uuid.UUID]time.Time,
	atRisk []AtRiskClient,
	breakEvenTarget float64,
) PeriodMetrics {
	m := PeriodMetrics{
		Period:          window,
		BreakEvenTarget: breakEvenTarget,
		AtRiskClients:   atRisk,
	}

	type dayTotals struct {
		income  float64
		expense float64
	}
	days := make(map[time.Time]*dayTotals)
	dayKey := func(t time.Time) time.Time { return utils.BeginningOfDay(t) }
	totalsFor := func(t time.Time) *dayTotals {
		key := dayKey(t)
		if days[key] == nil {
			days[key] = &dayTotals{}
		}
		return days[key]
	}

	windowCustomers := make(map[uuid.UUID]bool)
	spending := make(map[uuid.UUID]*ClientSpending)

	// Completed and paid appointments are the canonical source of
	// service income; their synthetic transaction mirrors are skipped
	// below to avoid double counting.
	for _, a := range appointments {
		if !window.Contains(a.Date) {
			continue
		}
		windowCustomers[a.CustomerID] = true

		switch a.Status {
		case models.AppointmentCompleted:
			m.CompletedCount++
		case models.AppointmentNoShow:
			m.NoShowCount++
		}

		if !a.Billable() {
			continue
		}
		m.Revenue += a.Price
		totalsFor(a.Date).income += a.Price

		if spending[a.CustomerID] == nil {
			spending[a.CustomerID] = &ClientSpending{CustomerID: a.CustomerID}
		}
		spending[a.CustomerID].Visits++
		spending[a.CustomerID].Total += a.Price
	}

	categories := make(map[string]float64)
	var unknownOrder []string

	for _, t := range transactions {
		if !window.Contains(t.Date) {
			continue
		}
		switch t.Type {
		case models.TransactionIncome:
			if t.Synthetic() {
				continue
			}
			m.Revenue += t.Amount
			totalsFor(t.Date).income += t.Amount
		case models.TransactionExpense:
			m.Expenses += t.Amount
			totalsFor(t.Date).expense += t.Amount
			if _, known := knownCategoryColors[t.Category]; !known {
				if _, seen := categories[t.Category]; !seen {
					unknownOrder = append(unknownOrder, t.Category)
				}
			}
			categories[t.Category] += t.Amount
		}
	}

	m.NetProfit = m.Revenue - m.Expenses
	if m.CompletedCount > 0 {
		m.AverageTicket = m.Revenue / float64(m.CompletedCount)
	}
	if attended := m.CompletedCount + m.NoShowCount; attended > 0 {
		m.AttendanceRate = float64(m.CompletedCount) / float64(attended)
	}

	for customerID := range windowCustomers {
		if window.Contains(firstVisit[customerID]) {
			m.NewClients++
		} else {
			m.RecurringClients++
		}
	}

	m.DailyCashFlow = make([]DailyCashFlow, 0, window.Days())
	var balance float64
	for d := dayKey(window.Start); d.Before(window.End); d = d.AddDate(0, 0, 1) {
		entry := DailyCashFlow{Date: d}
		if totals := days[d]; totals != nil {
			entry.Income = totals.income
			entry.Expense = totals.expense
		}
		balance += entry.Income - entry.Expense
		entry.RunningBalance = balance
		m.DailyCashFlow = append(m.DailyCashFlow, entry)
	}

	m.ExpenseByCategory = categoryBreakdown(categories, unknownOrder)
	m.TopSpenders = topSpenders(spending)

	return m
}

func categoryBreakdown(categories map[string]float64, unknownOrder []string) []CategoryExpense {
	paletteIndex := make(map[string]int, len(unknownOrder))
	for i, category := range unknownOrder {
		paletteIndex[category] = i
	}

	out := make([]CategoryExpense, 0, len(categories))
	for category, amount := range categories {
		color, ok := knownCategoryColors[category]
		if !ok {
			color = fallbackPalette[paletteIndex[category]%len(fallbackPalette)]
		}
		out = append(out, CategoryExpense{Category: category, Amount: amount, Color: color})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Category < out[j].Category
	})
	return out
}

func topSpenders(spending map[uuid.UUID]*ClientSpending) []ClientSpending {
	out := make([]ClientSpending, 0, len(spending))
	for _, s := range spending {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].CustomerID.String() < out[j].CustomerID.String()
	})
	if len(out) > topSpenderLimit {
		out = out[:topSpenderLimit]
	}
	return out
}

// atRiskClients selects customers lapsed strictly between 60 and 120
// whole days since their last completed visit, oldest lapse first.
func atRiskClients(lastCompleted map[uuid.UUID]time.Time, now time.Time) []AtRiskClient {
	out := make([]AtRiskClient, 0)
	for customerID, lastVisit := range lastCompleted {
		days := utils.DaysBetween(lastVisit, now)
		if days <= atRiskFloorDays || days >= atRiskCeilingDays {
			continue
		}
		out = append(out, AtRiskClient{
			CustomerID:         customerID,
			LastVisit:          lastVisit,
			DaysSinceLastVisit: days,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].LastVisit.Equal(out[j].LastVisit) {
			return out[i].LastVisit.Before(out[j].LastVisit)
		}
		return out[i].CustomerID.String() < out[j].CustomerID.String()
	})
	if len(out) > atRiskLimit {
		out = out[:atRiskLimit]
	}
	return out
}
