package analytics

import (
	"fmt"

	"github.com/google/uuid"

	"salonledger-backend/models"
)

// ServiceCostBreakdown itemizes what one execution of a service
// recipe costs. Warnings report dangling material references, which
// contribute zero cost instead of failing the computation.
type ServiceCostBreakdown struct {
	MaterialsCost       float64  `json:"materialsCost"`
	CostWithAdditionals float64  `json:"costWithAdditionals"`
	LaborCost           float64  `json:"laborCost"`
	TotalCost           float64  `json:"totalCost"`
	Warnings            []string `json:"warnings,omitempty"`
}

// ServiceBreakdown computes the cost breakdown of a recipe against the
// material catalog and the salon's cost-per-minute.
func ServiceBreakdown(recipe models.ServiceRecipe, materials map[uuid.UUID]models.Material, costPerMinute float64) ServiceCostBreakdown {
	var out ServiceCostBreakdown

	var rawMaterials float64
	for _, used := range recipe.MaterialsUsed {
		material, ok := materials[used.MaterialID]
		if !ok {
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("material %s not found; counted as zero cost", used.MaterialID))
			continue
		}
		rawMaterials += used.Quantity * material.CostPerUnit()
	}

	yields := recipe.Yields
	if yields <= 0 {
		yields = 1
	}

	out.MaterialsCost = rawMaterials / yields
	out.CostWithAdditionals = out.MaterialsCost * pct(recipe.AdditionalCostsPercent)
	out.LaborCost = (recipe.ExecutionTimeMinutes * costPerMinute) / yields

	subtotal := out.MaterialsCost + out.CostWithAdditionals + out.LaborCost
	out.TotalCost = subtotal * (1 + pct(recipe.SafetyMarginPercent))

	return out
}

// SalePrice derives a price from a total cost using margin-on-price:
// a 50% margin doubles the cost. The margin is clamped to 0.99 so a
// misconfigured 100% margin cannot divide by zero.
func SalePrice(totalCost, profitMarginPercent float64) float64 {
	margin := pct(profitMarginPercent)
	if margin < 0 {
		margin = 0
	}
	if margin > 0.99 {
		margin = 0.99
	}
	return totalCost / (1 - margin)
}

// DerivedPrice is the full pricing pipeline for an auto-priced
// service: breakdown, margin-on-price, then commercial rounding when
// the service asks for it.
func DerivedPrice(recipe models.ServiceRecipe, materials map[uuid.UUID]models.Material, costPerMinute float64, useRounding bool) float64 {
	breakdown := ServiceBreakdown(recipe, materials, costPerMinute)
	price := SalePrice(breakdown.TotalCost, recipe.ProfitMarginPercent)
	if useRounding {
		price = RoundCommercial(price)
	}
	return price
}
