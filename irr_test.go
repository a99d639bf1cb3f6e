package tvm

import (
	"errors"
	"math"
	"testing"
)

func TestIRR(t *testing.T) {
	testCases := []struct {
		name         string
		series       Series
		currentValue float64
		want         float64
	}{
		{
			name:         "one year at 10%",
			series:       Series{{Days: 365, Amount: 100}},
			currentValue: 110,
			want:         0.10,
		},
		{
			name:         "one year at 10% with the value as a withdrawal",
			series:       Series{{Days: 365, Amount: 100}, {Days: 0, Amount: -110}},
			currentValue: 0,
			want:         0.10,
		},
		{
			name:         "two years at 5%",
			series:       Series{{Days: 730, Amount: 1000}},
			currentValue: 1102.5,
			want:         0.05,
		},
		{
			name:         "loss",
			series:       Series{{Days: 365, Amount: 100}},
			currentValue: 80,
			want:         -0.20,
		},
		{
			name:         "regular savings at 3%",
			series:       Series{{Days: 730, Amount: 1000}, {Days: 365, Amount: 1000}},
			currentValue: 1000*1.03*1.03 + 1000*1.03,
			want:         0.03,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := IRR(tc.series, tc.currentValue)
			if err != nil {
				t.Fatalf("IRR() unexpected error: %v", err)
			}
			if math.Abs(got-tc.want) > 1e-6 {
				t.Errorf("IRR() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAnalyzeExample(t *testing.T) {
	s := Series{
		{Days: 7, Amount: 4000},
		{Days: 365, Amount: 3000},
		{Days: 730, Amount: 2000},
	}
	a, err := Analyze(s, 10800)
	if err != nil {
		t.Fatalf("Analyze() unexpected error: %v", err)
	}
	if a.TotalInvested != 9000 {
		t.Errorf("TotalInvested = %v, want 9000", a.TotalInvested)
	}
	if a.CashPnL != 1800 {
		t.Errorf("CashPnL = %v, want 1800", a.CashPnL)
	}
	if math.Abs(a.OverallReturn-0.2) > 1e-12 {
		t.Errorf("OverallReturn = %v, want 0.2", a.OverallReturn)
	}
	if math.Abs(a.Seed-math.Exp(0.2)) > 1e-12 {
		t.Errorf("Seed = %v, want exp(0.2)", a.Seed)
	}
	if a.IRR < 0.235 || a.IRR > 0.242 {
		t.Errorf("IRR = %v, want about 23.9%%", a.IRR)
	}
	if f := NPV(s, 10800, 1+a.IRR); math.Abs(f) > 1e-5 {
		t.Errorf("NPV(1+IRR) = %v, want 0", f)
	}
	if a.Iterations == 0 {
		t.Errorf("Iterations = 0, want at least one")
	}
}

func TestAnalyzeOrderIndependent(t *testing.T) {
	s := Series{{Days: 30, Amount: 500}, {Days: 400, Amount: 1500}, {Days: 200, Amount: -300}}
	reversed := Series{s[2], s[1], s[0]}
	a, err := IRR(s, 1900)
	if err != nil {
		t.Fatalf("IRR() unexpected error: %v", err)
	}
	b, err := IRR(reversed, 1900)
	if err != nil {
		t.Fatalf("IRR() unexpected error: %v", err)
	}
	if a != b {
		t.Errorf("IRR depends on the order of the flows: %v != %v", a, b)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	testCases := []struct {
		name         string
		series       Series
		currentValue float64
		want         error
	}{
		{"empty", nil, 100, ErrInvalidInput},
		{"negative offset", Series{{Days: -1, Amount: 100}}, 100, ErrInvalidInput},
		{"nan amount", Series{{Days: 10, Amount: math.NaN()}}, 100, ErrInvalidInput},
		{"infinite value", Series{{Days: 10, Amount: 100}}, math.Inf(1), ErrInvalidInput},
		{"sums to zero", Series{{Days: 10, Amount: 100}, {Days: 5, Amount: -100}}, 10, ErrDegenerateInput},
		{"no elapsed time", Series{{Days: 0, Amount: 100}}, 110, ErrDegenerateInput},
		// 100 invested grows into -50: no positive growth factor can do that.
		{"no root", Series{{Days: 365, Amount: 100}}, -50, ErrNonConvergence},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Analyze(tc.series, tc.currentValue)
			if !errors.Is(err, tc.want) {
				t.Errorf("Analyze() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestAnalyzeKeepsCashFigures(t *testing.T) {
	a, err := Analyze(Series{{Days: 365, Amount: 100}}, -50)
	if err == nil {
		t.Fatal("Analyze() expected an error")
	}
	if a.TotalInvested != 100 || a.CashPnL != -150 {
		t.Errorf("Analyze() = %+v, want cash figures even on error", a)
	}
}

func TestAnalyzeNearTotalLoss(t *testing.T) {
	// the overall return seed is far from the root, the solver must still find it.
	s := Series{{Days: 3650, Amount: 10000}}
	got, err := IRR(s, 1)
	if err != nil {
		t.Fatalf("IRR() unexpected error: %v", err)
	}
	want := math.Pow(1e-4, 0.1) - 1
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("IRR() = %v, want %v", got, want)
	}
}

func TestSolveIRRFromPoorSeed(t *testing.T) {
	// From a seed close to zero, the first Newton step on this steep polynomial
	// overflows, the next seeds must still reach a root within the residual.
	s := Series{{Days: 3650, Amount: 1}, {Days: 0, Amount: -1}}
	x, _, err := solveIRR(s, 1000, 1e-6)
	if err != nil {
		t.Fatalf("solveIRR() unexpected error: %v", err)
	}
	if f := NPV(s, 1000, x); math.Abs(f) > 1e-6 {
		t.Errorf("NPV(%v) = %v, want 0", x, f)
	}
}

func TestBisect(t *testing.T) {
	s := Series{{Days: 365, Amount: 100}}
	x, _, ok := bisect(s, 125, 1e-10)
	if !ok {
		t.Fatal("bisect() did not find the root")
	}
	if math.Abs(x-1.25) > 1e-9 {
		t.Errorf("bisect() = %v, want 1.25", x)
	}

	if _, _, ok := bisect(s, -1, 1e-10); ok {
		t.Error("bisect() found a root where there is none")
	}
}
