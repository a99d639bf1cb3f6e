package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tvm"
	"github.com/etnz/tvm/date"
	"github.com/google/subcommands"
)

// exampleSeries is the demo portfolio: 4000 invested a week ago, 3000 a year
// ago and 2000 two years ago.
var exampleSeries = tvm.Series{
	{Days: 7, Amount: 4000},
	{Days: 365, Amount: 3000},
	{Days: 730, Amount: 2000},
}

// exampleValue is the value today of the demo portfolio.
const exampleValue = 10800

type exampleCmd struct {
	outputFlags
}

func (*exampleCmd) Name() string     { return "example" }
func (*exampleCmd) Synopsis() string { return "analyze a demo portfolio" }
func (*exampleCmd) Usage() string {
	return `ia example

  Runs the irr analysis on a demo portfolio now worth 10800, made of 4000
  invested 7 days ago, 3000 invested 365 days ago and 2000 invested 730 days ago.
`
}

func (c *exampleCmd) SetFlags(f *flag.FlagSet) { c.outputFlags.SetFlags(f) }

func (c *exampleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.execute(c, f.Args())
}

func (c *exampleCmd) report(args []string) (any, string, error) {
	if len(args) != 0 {
		return nil, "", usageErrorf("example takes no arguments")
	}
	return analyze(exampleSeries, exampleValue, date.Today())
}
