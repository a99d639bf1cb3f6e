package cmd

import (
	"context"
	"flag"
	"math"

	"github.com/etnz/tvm/renderer"
	"github.com/google/subcommands"
)

// compoundCmd holds the flags for the 'compound' subcommand.
type compoundCmd struct {
	outputFlags
	initial float64
}

func (*compoundCmd) Name() string { return "compound" }
func (*compoundCmd) Synopsis() string {
	return "compute the compounded return of a regular investment"
}
func (*compoundCmd) Usage() string {
	return `ia compound [-initial <balance>] <months> <deposit> <rate>

  Computes the balance of an investment receiving <deposit> at the end of each
  month for <months> months, at the annual <rate> of return (0.05 for 5%).

  For an investment or a savings account, use a positive initial balance and a
  positive deposit. For a pension fund, use a negative deposit: the monthly
  income. For a debt, use a negative initial balance and a positive deposit:
  the monthly repayment.
`
}

func (c *compoundCmd) SetFlags(f *flag.FlagSet) {
	c.outputFlags.SetFlags(f)
	f.Float64Var(&c.initial, "initial", 0, "The starting balance")
}

func (c *compoundCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.execute(c, f.Args())
}

func (c *compoundCmd) report(args []string) (any, string, error) {
	values, err := parseFloats(args, "months", "deposit", "rate")
	if err != nil {
		return nil, "", err
	}
	months, deposit, rate := values[0], values[1], values[2]
	if months != math.Trunc(months) || months < 0 {
		return nil, "", usageErrorf("months must be a non negative integer, got %v", months)
	}

	g, err := renderer.NewGrowth(int(months), rate, deposit, c.initial, *currency)
	if err != nil {
		return nil, "", err
	}
	return g, renderer.GrowthMarkdown(g), nil
}
