// utils/validation.go
package utils

// ValidPercent checks that a percentage sits in the 0-100 range the
// API accepts. Conversion to fractions happens inside the analytics
// engine, never at call sites.
func ValidPercent(p float64) bool {
	return p >= 0 && p <= 100
}

// ValidMoney checks that a monetary input is non-negative.
func ValidMoney(v float64) bool {
	return v >= 0
}
