// Package round rounds floating point values half away from zero at a fixed
// number of decimal places.
package round

import "github.com/shopspring/decimal"

// To rounds v to places decimal places.
func To(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

// Ptr rounds v and returns a pointer to the result.
func Ptr(v float64, places int32) *float64 {
	f := To(v, places)
	return &f
}
