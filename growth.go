package tvm

import (
	"fmt"
	"math"
)

// MonthsPerYear is the only compounding periodicity derived from annual rates.
const MonthsPerYear = 12

// CompoundedGrowth returns the value after periods of growth at rate, of an
// initial balance receiving a constant deposit at the end of each period.
//
//	initial·g^n + deposit·(g^n - 1)/(g - 1), with g = 1 + rate
//
// A zero rate degrades to initial + periods·deposit. Powers are evaluated
// through Log1p and Expm1 so that the result is continuous as rate goes to 0.
// A result beyond the float64 range is an ErrOverflow.
func CompoundedGrowth(periods int, rate, deposit, initial float64) (float64, error) {
	if err := checkGrowth(periods, rate, deposit, initial); err != nil {
		return 0, err
	}
	n := float64(periods)
	var v float64
	if rate == 0 {
		v = initial + n*deposit
	} else {
		lg := n * math.Log1p(rate) // log(g^n)
		v = initial*math.Exp(lg) + deposit*math.Expm1(lg)/rate
	}
	if !finite(v) {
		return 0, fmt.Errorf("growth over %d periods at %v: %w", periods, rate, ErrOverflow)
	}
	return v, nil
}

// MonthlyRate converts an annual rate into the equivalent monthly compounding rate.
//
//	(1 + annualRate)^(1/12) - 1
func MonthlyRate(annualRate float64) (float64, error) {
	if !finite(annualRate) || annualRate <= -1 {
		return 0, fmt.Errorf("annual rate %v must be greater than -1: %w", annualRate, ErrInvalidInput)
	}
	return math.Expm1(math.Log1p(annualRate) / MonthsPerYear), nil
}

// MonthlyGrowth is CompoundedGrowth over months, with monthly compounding at
// the rate equivalent to annualRate.
func MonthlyGrowth(months int, annualRate, deposit, initial float64) (float64, error) {
	rate, err := MonthlyRate(annualRate)
	if err != nil {
		return 0, err
	}
	return CompoundedGrowth(months, rate, deposit, initial)
}

// PensionDrawdown returns the balance left in a pension pot invested at the
// annual rate, after drawing an income for the given number of months.
func PensionDrawdown(months int, rate, monthlyDrawdown, pot float64) (float64, error) {
	return MonthlyGrowth(months, rate, -monthlyDrawdown, pot)
}

// MortgageRemaining returns the balance of a debt after the given number of
// monthly repayments. The debt is negative until it is repaid.
func MortgageRemaining(months int, rate, monthlyRepayment, notional float64) (float64, error) {
	return MonthlyGrowth(months, rate, monthlyRepayment, -notional)
}

func checkGrowth(periods int, rate, deposit, initial float64) error {
	if periods < 0 {
		return fmt.Errorf("negative period count %d: %w", periods, ErrInvalidInput)
	}
	if !finite(rate, deposit, initial) {
		return fmt.Errorf("non finite parameters (rate=%v, deposit=%v, initial=%v): %w", rate, deposit, initial, ErrInvalidInput)
	}
	if rate <= -1 {
		return fmt.Errorf("rate %v must be greater than -1: %w", rate, ErrInvalidInput)
	}
	return nil
}
