package tvm

import (
	"fmt"
	"math"
)

// MaxSearchMonths caps the runout search to a thousand years of monthly steps.
const MaxSearchMonths = 1000 * MonthsPerYear

// Runout is the number of months after which a balance crosses zero.
type Runout struct {
	Months int
	Never  bool // the balance never crosses zero
}

// Years returns the number of whole years in the runout period.
func (r Runout) Years() int { return r.Months / MonthsPerYear }

// RemainderMonths returns the months left over after Years.
func (r Runout) RemainderMonths() int { return r.Months % MonthsPerYear }

// String returns the runout as "N years and M months" or "never".
func (r Runout) String() string {
	if r.Never {
		return "never"
	}
	return fmt.Sprintf("%d years and %d months", r.Years(), r.RemainderMonths())
}

// MonthsRemaining returns the number of months a pension pot invested at the
// annual rate can pay the monthly drawdown before it is depleted.
//
// A pot that grows at least as much as it pays out never runs out. Otherwise
// the months are counted directly without interest, or searched one by one up
// to MaxSearchMonths.
func MonthsRemaining(rate, drawdown, pot float64) (Runout, error) {
	rm, err := MonthlyRate(rate)
	if err != nil {
		return Runout{}, err
	}
	if !finite(drawdown, pot) {
		return Runout{}, fmt.Errorf("non finite parameters (drawdown=%v, pot=%v): %w", drawdown, pot, ErrInvalidInput)
	}
	if pot > 0 && sustainable(rm, drawdown, pot) {
		return Runout{Never: true}, nil
	}
	if pot > 0 && rm == 0 {
		return linearRunout(drawdown, pot)
	}
	return searchRunout(func(months int) (float64, error) {
		return PensionDrawdown(months, rate, drawdown, pot)
	})
}

// MonthsToRepay returns the number of monthly repayments needed to pay back
// the notional of a debt at the annual rate.
//
// A repayment that does not cover the monthly interest never repays the debt.
func MonthsToRepay(rate, repayment, notional float64) (Runout, error) {
	rm, err := MonthlyRate(rate)
	if err != nil {
		return Runout{}, err
	}
	if !finite(repayment, notional) {
		return Runout{}, fmt.Errorf("non finite parameters (repayment=%v, notional=%v): %w", repayment, notional, ErrInvalidInput)
	}
	// The outstanding debt behaves like a pot paying out the repayments.
	if notional > 0 && sustainable(rm, repayment, notional) {
		return Runout{Never: true}, nil
	}
	if notional > 0 && rm == 0 {
		return linearRunout(repayment, notional)
	}
	return searchRunout(func(months int) (float64, error) {
		remaining, err := MortgageRemaining(months, rate, repayment, notional)
		return -remaining, err
	})
}

// sustainable reports whether a positive balance compounding at the monthly
// rate rm and paying out d each month stays positive forever.
//
// The balance follows b(k) = b* + (balance - b*)·(1+rm)^k with b* = d/rm. For
// a positive rate it never falls when the first month does not, that is when
// the interest covers d. For a null or negative rate it converges to (or moves
// linearly from) a non negative value only when d is not positive.
func sustainable(rm, d, balance float64) bool {
	if rm > 0 {
		return balance*rm >= d
	}
	return d <= 0
}

// linearRunout returns the month at which a positive balance paying out d > 0
// each month, without interest, is exhausted.
func linearRunout(d, balance float64) (Runout, error) {
	months := math.Ceil(balance / d)
	if months > math.MaxInt32 {
		return Runout{}, fmt.Errorf("balance still positive after %d months: %w", math.MaxInt32, ErrSearchExhausted)
	}
	return Runout{Months: int(months)}, nil
}

// searchRunout returns the first month at which balance is not positive.
func searchRunout(balance func(months int) (float64, error)) (Runout, error) {
	for months := 0; months <= MaxSearchMonths; months++ {
		b, err := balance(months)
		if err != nil {
			return Runout{}, err
		}
		if b <= 0 {
			return Runout{Months: months}, nil
		}
	}
	return Runout{}, fmt.Errorf("balance still positive after %d months: %w", MaxSearchMonths, ErrSearchExhausted)
}

// MarshalJSON encodes r as {"never":true} or as its months and years.
func (r Runout) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	if r.Never {
		w.Append("never", true)
		return w.MarshalJSON()
	}
	w.Append("months", r.Months)
	w.Append("years", r.Years())
	return w.MarshalJSON()
}
