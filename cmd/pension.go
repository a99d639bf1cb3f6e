package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tvm/renderer"
	"github.com/google/subcommands"
)

// pensionCmd holds the flags for the 'pension' subcommand.
type pensionCmd struct {
	outputFlags
}

func (*pensionCmd) Name() string { return "pension" }
func (*pensionCmd) Synopsis() string {
	return "compute the number of months an income can be drawn from an investment"
}
func (*pensionCmd) Usage() string {
	return `ia pension <drawdown> <rate> <pot>

  Computes how long a pension <pot> invested at the annual <rate> of return
  (0.05 for 5%) can pay a monthly income of <drawdown>.
`
}

func (c *pensionCmd) SetFlags(f *flag.FlagSet) { c.outputFlags.SetFlags(f) }

func (c *pensionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.execute(c, f.Args())
}

func (c *pensionCmd) report(args []string) (any, string, error) {
	values, err := parseFloats(args, "drawdown", "rate", "pot")
	if err != nil {
		return nil, "", err
	}
	r, err := renderer.NewPension(values[1], values[0], values[2], *currency)
	if err != nil {
		return nil, "", err
	}
	logf("pension runout: %v", r.Runout)
	return r, renderer.RunoutMarkdown(r), nil
}
