package analytics

import (
	"fmt"

	"github.com/google/uuid"

	"salonledger-backend/models"
)

// planSafetyFactor is the fixed 15% cushion over operational cost used
// as the suggested minimum subscription price.
const planSafetyFactor = 1.15

// ComboProfitability is the full commercial picture of a service
// bundle: what it sells for, what it costs to deliver, and what is
// left over.
type ComboProfitability struct {
	SumOfIndividualPrices float64  `json:"sumOfIndividualPrices"`
	TotalOperationalCost  float64  `json:"totalOperationalCost"`
	TotalDurationMinutes  float64  `json:"totalDurationMinutes"`
	FinalPrice            float64  `json:"finalPrice"`
	DiscountPercent       float64  `json:"discountPercent"`
	NetProfit             float64  `json:"netProfit"`
	ProfitMarginPercent   float64  `json:"profitMarginPercent"`
	ValuePerMinute        float64  `json:"valuePerMinute"`
	Unprofitable          bool     `json:"unprofitable"`
	Warnings              []string `json:"warnings,omitempty"`
}

// PlanProfitability mirrors ComboProfitability for subscription plans.
type PlanProfitability struct {
	TotalOperationalCost  float64  `json:"totalOperationalCost"`
	SuggestedMinimumPrice float64  `json:"suggestedMinimumPrice"`
	Profit                float64  `json:"profit"`
	MarginPercent         float64  `json:"marginPercent"`
	BelowSuggestedMinimum bool     `json:"belowSuggestedMinimum"`
	Warnings              []string `json:"warnings,omitempty"`
}

// ComboFromDiscount derives the final price from the discount. This is
// the only direction that applies commercial rounding.
func ComboFromDiscount(sumOfIndividualPrices, discountPercent float64, useRounding bool) float64 {
	raw := sumOfIndividualPrices * (1 - pct(discountPercent))
	if useRounding {
		return RoundCommercial(raw)
	}
	return raw
}

// ComboFromPrice derives the discount from a manually entered price.
// The price is kept verbatim; rounding is never re-applied here.
func ComboFromPrice(sumOfIndividualPrices, newPrice float64) float64 {
	if sumOfIndividualPrices <= 0 {
		return 0
	}
	return (sumOfIndividualPrices - newPrice) / sumOfIndividualPrices * 100
}

// AnalyzeCombo prices a combo against its member services. Services
// without a recipe are ineligible: the caller validates membership,
// and any dangling reference found here degrades to a warning.
func AnalyzeCombo(
	combo models.Combo,
	services map[uuid.UUID]models.Service,
	recipes map[uuid.UUID]models.ServiceRecipe,
	materials map[uuid.UUID]models.Material,
	costPerMinute float64,
) ComboProfitability {
	out := ComboProfitability{
		FinalPrice:      combo.FinalPrice,
		DiscountPercent: combo.DiscountPercent,
	}

	for _, serviceID := range combo.ServiceIDs {
		service, ok := services[serviceID]
		if !ok {
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("service %s not found; skipped", serviceID))
			continue
		}
		recipe, ok := recipes[serviceID]
		if !ok {
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("service %s has no recipe; cost counted as zero", serviceID))
			out.SumOfIndividualPrices += service.Price
			out.TotalDurationMinutes += float64(service.DurationMinutes)
			continue
		}

		breakdown := ServiceBreakdown(recipe, materials, costPerMinute)
		out.SumOfIndividualPrices += service.Price
		out.TotalOperationalCost += breakdown.TotalCost
		out.TotalDurationMinutes += float64(service.DurationMinutes)
		out.Warnings = append(out.Warnings, breakdown.Warnings...)
	}

	out.NetProfit = out.FinalPrice - out.TotalOperationalCost
	if out.FinalPrice > 0 {
		out.ProfitMarginPercent = out.NetProfit / out.FinalPrice * 100
	}
	if out.TotalDurationMinutes > 0 {
		out.ValuePerMinute = out.NetProfit / out.TotalDurationMinutes
	}
	out.Unprofitable = out.NetProfit < 0

	return out
}

// AnalyzePlan costs a subscription plan from its included service
// quantities and checks the price against the suggested minimum.
func AnalyzePlan(
	plan models.SubscriptionPlan,
	recipes map[uuid.UUID]models.ServiceRecipe,
	materials map[uuid.UUID]models.Material,
	costPerMinute float64,
) PlanProfitability {
	var out PlanProfitability

	for _, included := range plan.IncludedServices {
		recipe, ok := recipes[included.ServiceID]
		if !ok {
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("service %s has no recipe; cost counted as zero", included.ServiceID))
			continue
		}
		breakdown := ServiceBreakdown(recipe, materials, costPerMinute)
		out.TotalOperationalCost += breakdown.TotalCost * float64(included.Quantity)
		out.Warnings = append(out.Warnings, breakdown.Warnings...)
	}

	out.SuggestedMinimumPrice = out.TotalOperationalCost * planSafetyFactor
	out.Profit = plan.Price - out.TotalOperationalCost
	if plan.Price > 0 {
		out.MarginPercent = out.Profit / plan.Price * 100
	}
	out.BelowSuggestedMinimum = plan.Price < out.SuggestedMinimumPrice

	return out
}
