package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/etnz/tvm"
	"github.com/etnz/tvm/date"
	"github.com/etnz/tvm/renderer"
	"github.com/google/subcommands"
)

// irrCmd holds the flags for the 'irr' subcommand.
type irrCmd struct {
	outputFlags
	file string
	path string
	on   string
}

func (*irrCmd) Name() string     { return "irr" }
func (*irrCmd) Synopsis() string { return "find the internal rate of return of a list of cash flows" }
func (*irrCmd) Usage() string {
	return `ia irr [-f <file>] [-path <jsonpath>] [-d <date>] <current_value>

  Analyzes the cash flows invested in a portfolio now worth <current_value>,
  and prints the total invested, the cash PnL, the overall return and the
  annualized internal rate of return.

  The cash flows are read from a CSV file with 'Date' and 'Amount' columns,
  or from a JSON file whose flows are selected by -path. Positive amounts are
  contributions, negative amounts are withdrawals.
`
}

func (c *irrCmd) SetFlags(f *flag.FlagSet) {
	c.outputFlags.SetFlags(f)
	f.StringVar(&c.file, "f", "", "Cash-flow file (.csv or .json). Defaults to -csv-file.")
	f.StringVar(&c.path, "path", tvm.DefaultJSONPath, "JSONPath selecting the cash flows in a .json file")
	f.StringVar(&c.on, "d", date.Today().String(), "Valuation date, the day the current value was reached.")
}

func (c *irrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.execute(c, f.Args())
}

func (c *irrCmd) report(args []string) (any, string, error) {
	values, err := parseFloats(args, "current_value")
	if err != nil {
		return nil, "", err
	}
	on, err := date.Parse(c.on)
	if err != nil {
		return nil, "", usageErrorf("valuation date: %v", err)
	}

	file := c.file
	if file == "" {
		file = *csvFile
		log.Printf("No cash-flow file given. Using %s. Specify a file to use with -f filename.csv", file)
	}
	series, err := tvm.LoadCashFlows(file, c.path, on)
	if err != nil {
		return nil, "", err
	}
	logf("loaded %d cash flows from %q valued on %s", len(series), file, on)

	return analyze(series, values[0], on)
}

// analyze runs the IRR analysis of series and returns its report.
func analyze(series tvm.Series, currentValue float64, on date.Date) (any, string, error) {
	a, err := tvm.Analyze(series, currentValue)
	logf("solver seeded at %.6g, %d iterations", a.Seed, a.Iterations)
	if err != nil {
		return nil, "", fmt.Errorf("cannot compute the internal rate of return: %w", err)
	}
	view := renderer.NewAnalysis(a, len(series), on, *currency)
	return view, renderer.IRRMarkdown(view), nil
}
