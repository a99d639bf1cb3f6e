package tvm

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// DaysPerYear is the fixed day-count used to annualize day offsets.
const DaysPerYear = 365

// CashFlow is an amount invested a given number of days before the valuation date.
//
// A positive Amount is a contribution, a negative one is a withdrawal.
type CashFlow struct {
	Days   int     // days elapsed between the flow and the valuation date
	Amount float64 // signed amount
}

// Years returns the elapsed time of the flow in years.
func (c CashFlow) Years() float64 { return float64(c.Days) / DaysPerYear }

// Series is a collection of cash flows.
//
// Offsets need not be unique, each flow is accounted for independently.
type Series []CashFlow

// Total returns the sum of all amounts, that is the total invested.
func (s Series) Total() float64 {
	var total float64
	for _, c := range s.Sorted() {
		total += c.Amount
	}
	return total
}

// Sorted returns a copy of s ordered by ascending offset.
// Flows with the same offset keep their relative order.
func (s Series) Sorted() Series {
	sorted := slices.Clone(s)
	slices.SortStableFunc(sorted, func(a, b CashFlow) int { return cmp.Compare(a.Days, b.Days) })
	return sorted
}

// Validate checks that s can be discounted.
func (s Series) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("empty cash-flow series: %w", ErrInvalidInput)
	}
	for i, c := range s {
		if c.Days < 0 {
			return fmt.Errorf("cash flow #%d has negative offset %d: %w", i, c.Days, ErrInvalidInput)
		}
		if !finite(c.Amount) {
			return fmt.Errorf("cash flow #%d has non finite amount %v: %w", i, c.Amount, ErrInvalidInput)
		}
	}
	return nil
}

// finite reports whether all values are neither NaN nor infinite.
func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
