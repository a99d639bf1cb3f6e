package renderer

import "github.com/etnz/tvm"

// Growth is the view of a regular investment compounded monthly.
type Growth struct {
	Months      int         `json:"months"`
	AnnualRate  tvm.Percent `json:"annualRate"`
	MonthlyRate tvm.Percent `json:"monthlyRate"`
	Deposit     tvm.Money   `json:"deposit"`
	Initial     tvm.Money   `json:"initial"`
	// Contributed is the initial balance plus all the deposits.
	Contributed tvm.Money `json:"contributed"`
	// Interest is the part of the final balance earned by compounding.
	Interest tvm.Money `json:"interest"`
	// Final is the balance after Months.
	Final tvm.Money `json:"final"`
}

// NewGrowth computes the growth of initial receiving a deposit at the end of
// each month, for months at the annual rate.
func NewGrowth(months int, rate, deposit, initial float64, cur string) (*Growth, error) {
	final, err := tvm.MonthlyGrowth(months, rate, deposit, initial)
	if err != nil {
		return nil, err
	}
	monthly, err := tvm.MonthlyRate(rate)
	if err != nil {
		return nil, err
	}
	contributed := tvm.M(initial, cur).Add(tvm.M(float64(months)*deposit, cur))
	return &Growth{
		Months:      months,
		AnnualRate:  tvm.Rate(rate),
		MonthlyRate: tvm.Rate(monthly),
		Deposit:     tvm.M(deposit, cur),
		Initial:     tvm.M(initial, cur),
		Contributed: contributed,
		Interest:    tvm.M(final, cur).Sub(contributed),
		Final:       tvm.M(final, cur),
	}, nil
}
