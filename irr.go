package tvm

import (
	"fmt"
	"math"
)

const (
	irrTolerance = 1e-10 // residual tolerance, relative to the series gross amount
	irrMaxIter   = 100   // Newton iterations per seed
	irrBisection = 200   // bisection halvings on a bracket
)

// irrSeeds are tried, after the overall return seed, when Newton diverges.
var irrSeeds = []float64{1, 1.1, 0.9, 2, 0.5}

// Analysis holds the performance of a series of cash flows valued today.
type Analysis struct {
	CurrentValue  float64 // value of the investment today
	TotalInvested float64 // sum of all cash flows
	CashPnL       float64 // CurrentValue - TotalInvested
	OverallReturn float64 // CashPnL / TotalInvested, as a fraction
	IRR           float64 // annualized internal rate of return, as a fraction
	Seed          float64 // first guess of the root finder
	Iterations    int     // total root finder iterations
}

// Analyze computes the cash performance and the internal rate of return of
// the series s given its value today.
//
// When the IRR cannot be computed the returned Analysis still holds the cash
// figures, and the error wraps ErrInvalidInput, ErrDegenerateInput or
// ErrNonConvergence.
func Analyze(s Series, currentValue float64) (Analysis, error) {
	a := Analysis{CurrentValue: currentValue}
	if err := s.Validate(); err != nil {
		return a, err
	}
	if !finite(currentValue) {
		return a, fmt.Errorf("current value %v: %w", currentValue, ErrInvalidInput)
	}
	a.TotalInvested = s.Total()
	a.CashPnL = currentValue - a.TotalInvested
	if a.TotalInvested == 0 {
		return a, fmt.Errorf("cash flows sum to zero, the overall return is undefined: %w", ErrDegenerateInput)
	}
	a.OverallReturn = a.CashPnL / a.TotalInvested
	if elapsed(s) == 0 {
		return a, fmt.Errorf("all cash flows happen on the valuation date: %w", ErrDegenerateInput)
	}

	a.Seed = math.Exp(a.OverallReturn)
	if !finite(a.Seed) || a.Seed <= 0 {
		// exp overflows for absurd returns, or underflows to 0 for near total losses.
		a.Seed = 1
	}

	x, n, err := solveIRR(s.Sorted(), currentValue, a.Seed)
	a.Iterations = n
	if err != nil {
		return a, err
	}
	a.IRR = x - 1
	return a, nil
}

// IRR returns the annualized internal rate of return of s given its value today.
func IRR(s Series, currentValue float64) (float64, error) {
	a, err := Analyze(s, currentValue)
	if err != nil {
		return 0, err
	}
	return a.IRR, nil
}

// NPV returns the discrepancy between the cash flows grown at the annual
// factor x (one plus the rate) and the current value.
//
//	f(x) = -currentValue + Σ amount·x^(days/365)
//
// The IRR is the rate for which NPV is zero.
func NPV(s Series, currentValue, x float64) float64 {
	f, _ := discrepancy(s, currentValue, x)
	return f
}

// discrepancy returns f(x) and its derivative f'(x).
func discrepancy(s Series, currentValue, x float64) (f, df float64) {
	f = -currentValue
	for _, c := range s {
		t := c.Years()
		f += c.Amount * math.Pow(x, t)
		if t != 0 {
			df += c.Amount * t * math.Pow(x, t-1)
		}
	}
	return f, df
}

// elapsed returns the largest offset of s.
func elapsed(s Series) int {
	var m int
	for _, c := range s {
		m = max(m, c.Days)
	}
	return m
}

// solveIRR finds x > 0 such that discrepancy(x) == 0.
//
// Newton is tried first from seed, then from irrSeeds. When every seed fails
// a bracket is searched on a geometric grid and refined by bisection. The
// returned root always satisfies the residual tolerance.
func solveIRR(s Series, currentValue, seed float64) (float64, int, error) {
	scale := math.Abs(currentValue)
	for _, c := range s {
		scale += math.Abs(c.Amount)
	}
	tol := irrTolerance * scale

	var iterations int
	for _, x0 := range append([]float64{seed}, irrSeeds...) {
		x, n, ok := newton(s, currentValue, x0, tol)
		iterations += n
		if ok {
			return x, iterations, nil
		}
	}

	x, n, ok := bisect(s, currentValue, tol)
	iterations += n
	if ok {
		return x, iterations, nil
	}
	return 0, iterations, fmt.Errorf("no rate found from seed %.6g after %d iterations: %w", seed, iterations, ErrNonConvergence)
}

// newton runs Newton-Raphson from x. Steps leaving the domain x > 0 are
// halved towards 0 instead.
func newton(s Series, currentValue, x, tol float64) (float64, int, bool) {
	for iter := 0; iter < irrMaxIter; iter++ {
		f, df := discrepancy(s, currentValue, x)
		if !finite(f, df) {
			return x, iter + 1, false
		}
		if math.Abs(f) < tol {
			return x, iter + 1, true
		}
		if df == 0 {
			return x, iter + 1, false
		}
		next := x - f/df
		if next <= 0 {
			next = x / 2
		}
		if !finite(next) || next == x {
			return x, iter + 1, false
		}
		x = next
	}
	return x, irrMaxIter, false
}

// bisect looks for a sign change of the discrepancy on a geometric grid of
// growth factors, starting from the bracket nearest to 1, and narrows it down.
func bisect(s Series, currentValue, tol float64) (float64, int, bool) {
	const (
		lowest  = 1e-6
		highest = 1e6
		step    = 1.25
	)
	var grid []float64
	for x := lowest; x <= highest; x *= step {
		grid = append(grid, x)
	}
	values := make([]float64, len(grid))
	for i, x := range grid {
		values[i] = NPV(s, currentValue, x)
	}

	best := -1
	for i := 1; i < len(grid); i++ {
		if values[i-1]*values[i] > 0 || !finite(values[i-1], values[i]) {
			continue
		}
		if best < 0 || math.Abs(math.Log(grid[i])) < math.Abs(math.Log(grid[best])) {
			best = i
		}
	}
	if best < 0 {
		return 0, 0, false
	}

	lo, hi := grid[best-1], grid[best]
	flo := values[best-1]
	if math.Abs(flo) < tol {
		return lo, 0, true
	}
	for iter := 0; iter < irrBisection; iter++ {
		mid := (lo + hi) / 2
		fmid := NPV(s, currentValue, mid)
		if math.Abs(fmid) < tol {
			return mid, iter + 1, true
		}
		if mid == lo || mid == hi {
			// no representable value left in between.
			return mid, iter + 1, false
		}
		if (flo < 0) == (fmid < 0) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}
	return lo, irrBisection, false
}
