package renderer

import (
	"github.com/etnz/tvm"
	"github.com/etnz/tvm/date"
)

// Analysis is the view of an IRR analysis.
// Amounts are converted to Money so that they carry their own renderers (SignedString etc.)
type Analysis struct {
	// Date of the valuation.
	Date date.Date `json:"date"`
	// Flows is the number of cash flows analyzed.
	Flows int `json:"flows"`
	// CurrentValue is the value of the investment on Date.
	CurrentValue tvm.Money `json:"currentValue"`
	// TotalInvested is the sum of all cash flows.
	TotalInvested tvm.Money `json:"totalInvested"`
	// CashPnL is the gain (or loss) over the total invested.
	CashPnL tvm.Money `json:"cashPnL"`
	// OverallReturn is CashPnL relative to TotalInvested.
	OverallReturn tvm.Percent `json:"overallReturn"`
	// IRR is the annualized internal rate of return.
	IRR tvm.Percent `json:"irr"`
	// Iterations used by the solver.
	Iterations int `json:"iterations"`
}

// NewAnalysis creates the view of a, for a series of n flows valued on date on, in currency cur.
func NewAnalysis(a tvm.Analysis, n int, on date.Date, cur string) *Analysis {
	return &Analysis{
		Date:          on,
		Flows:         n,
		CurrentValue:  tvm.M(a.CurrentValue, cur),
		TotalInvested: tvm.M(a.TotalInvested, cur),
		CashPnL:       tvm.M(a.CashPnL, cur),
		OverallReturn: tvm.Rate(a.OverallReturn),
		IRR:           tvm.Rate(a.IRR),
		Iterations:    a.Iterations,
	}
}
