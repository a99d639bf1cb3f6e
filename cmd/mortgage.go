package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tvm/renderer"
	"github.com/google/subcommands"
)

// mortgageCmd holds the flags for the 'mortgage' subcommand.
type mortgageCmd struct {
	outputFlags
}

func (*mortgageCmd) Name() string     { return "mortgage" }
func (*mortgageCmd) Synopsis() string { return "compute the number of months it takes to repay a debt" }
func (*mortgageCmd) Usage() string {
	return `ia mortgage <repayment> <rate> <notional>

  Computes how long it takes to repay a mortgage of <notional> at the annual
  interest <rate> (0.05 for 5%) with a monthly <repayment>.
`
}

func (c *mortgageCmd) SetFlags(f *flag.FlagSet) { c.outputFlags.SetFlags(f) }

func (c *mortgageCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.execute(c, f.Args())
}

func (c *mortgageCmd) report(args []string) (any, string, error) {
	values, err := parseFloats(args, "repayment", "rate", "notional")
	if err != nil {
		return nil, "", err
	}
	r, err := renderer.NewMortgage(values[1], values[0], values[2], *currency)
	if err != nil {
		return nil, "", err
	}
	logf("mortgage repaid after: %v", r.Runout)
	return r, renderer.RunoutMarkdown(r), nil
}
