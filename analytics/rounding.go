package analytics

import "math"

// minCommercialPrice is the floor returned for non-positive inputs.
const minCommercialPrice = 5.90

// RoundCommercial converts a raw price into the salon's psychological
// price ending: every result ends in ...5.90 or ...9.90. The raw price
// is rounded up to the next integer, then snapped to its decade's
// anchor: last digit above 5 goes to the 9 anchor, otherwise the 5
// anchor, falling back to 9 when the base already passed the 5 anchor.
// Total over all inputs and idempotent over its own outputs.
func RoundCommercial(price float64) float64 {
	if price <= 0 {
		return minCommercialPrice
	}
	if isCommercial(price) {
		return price
	}

	base := math.Ceil(price)
	decade := math.Floor(base/10) * 10
	lastDigit := math.Mod(base, 10)

	var target float64
	if lastDigit > 5 {
		target = decade + 9
	} else {
		target = decade + 5
		if base > target {
			target = decade + 9
		}
	}

	return target + 0.90
}

// isCommercial reports whether price already carries the commercial
// ending, which keeps RoundCommercial idempotent: values it produced
// pass through unchanged instead of climbing to the next anchor.
func isCommercial(price float64) bool {
	if price < minCommercialPrice {
		return false
	}
	base := math.Floor(price)
	cents := price - base
	if math.Abs(cents-0.90) > 1e-9 {
		return false
	}
	last := math.Mod(base, 10)
	return last == 5 || last == 9
}
