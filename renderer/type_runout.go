package renderer

import "github.com/etnz/tvm"

const (
	// maxScheduleYears bounds the yearly schedule of a runout.
	maxScheduleYears = 50
	// neverScheduleYears is the schedule length of a balance that never runs out.
	neverScheduleYears = 10
)

// Kind of balance being run out.
const (
	Pension  = "pension"
	Mortgage = "mortgage"
)

// Runout is the view of a pension pot being drawn down or a mortgage being repaid.
type Runout struct {
	Kind       string      `json:"kind"`
	AnnualRate tvm.Percent `json:"annualRate"`
	// Payment is the monthly drawdown or repayment.
	Payment tvm.Money `json:"payment"`
	// Initial is the pension pot or the mortgage notional.
	Initial tvm.Money  `json:"initial"`
	Runout  tvm.Runout `json:"runout"`
	// Schedule lists the balance at the end of each year.
	Schedule []Balance `json:"schedule"`
}

// Balance is the balance of a pot, or the outstanding debt of a mortgage, after some months.
type Balance struct {
	Months  int       `json:"months"`
	Balance tvm.Money `json:"balance"`
}

// NewPension computes how long a pot invested at the annual rate can pay the monthly drawdown.
func NewPension(rate, drawdown, pot float64, cur string) (*Runout, error) {
	runout, err := tvm.MonthsRemaining(rate, drawdown, pot)
	if err != nil {
		return nil, err
	}
	schedule, err := newSchedule(runout, func(months int) (float64, error) {
		return tvm.PensionDrawdown(months, rate, drawdown, pot)
	}, cur)
	if err != nil {
		return nil, err
	}
	return &Runout{
		Kind:       Pension,
		AnnualRate: tvm.Rate(rate),
		Payment:    tvm.M(drawdown, cur),
		Initial:    tvm.M(pot, cur),
		Runout:     runout,
		Schedule:   schedule,
	}, nil
}

// NewMortgage computes how long it takes to repay notional at the annual rate.
func NewMortgage(rate, repayment, notional float64, cur string) (*Runout, error) {
	runout, err := tvm.MonthsToRepay(rate, repayment, notional)
	if err != nil {
		return nil, err
	}
	schedule, err := newSchedule(runout, func(months int) (float64, error) {
		remaining, err := tvm.MortgageRemaining(months, rate, repayment, notional)
		return -remaining, err // outstanding debt
	}, cur)
	if err != nil {
		return nil, err
	}
	return &Runout{
		Kind:       Mortgage,
		AnnualRate: tvm.Rate(rate),
		Payment:    tvm.M(repayment, cur),
		Initial:    tvm.M(notional, cur),
		Runout:     runout,
		Schedule:   schedule,
	}, nil
}

// newSchedule returns the balance at the end of every year until the runout, and at the runout itself.
func newSchedule(r tvm.Runout, balance func(months int) (float64, error), cur string) ([]Balance, error) {
	years := neverScheduleYears
	if !r.Never {
		years = min(r.Years()+1, maxScheduleYears)
	}
	var schedule []Balance
	for y := 1; y <= years; y++ {
		months := y * tvm.MonthsPerYear
		if !r.Never && months > r.Months {
			months = r.Months
		}
		if len(schedule) > 0 && schedule[len(schedule)-1].Months == months {
			break
		}
		b, err := balance(months)
		if err != nil {
			return nil, err
		}
		schedule = append(schedule, Balance{Months: months, Balance: tvm.M(b, cur)})
	}
	return schedule, nil
}
