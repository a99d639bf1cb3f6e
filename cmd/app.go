// Package cmd implements the CLI application to analyze investments.
package cmd

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

const (
	EnvCurrency = "IA_CURRENCY"
	EnvCSVFile  = "IA_CSV_FILE"
	EnvVerbose  = "IA_VERBOSE"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var currency = flag.String("currency", envOr(EnvCurrency, "GBP"), "Currency used to display amounts")
var csvFile = flag.String("csv-file", envOr(EnvCSVFile, "sample.csv"), "Default cash-flow file used by irr")

// Verbose enables diagnostic logs.
var Verbose = flag.Bool("v", envOr(EnvVerbose, "false") == "true", "Verbose mode, log diagnostics to stderr")

// stdout is where reports are printed.
var stdout io.Writer = os.Stdout

// Commands lists all the subcommands, in display order.
var Commands = []subcommands.Command{
	&irrCmd{},
	&exampleCmd{},
	&compoundCmd{},
	&pensionCmd{},
	&mortgageCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	for _, cmd := range Commands {
		group := "projections"
		switch cmd.Name() {
		case "irr", "example":
			group = "returns"
		case "topic":
			group = "help"
		}
		c.Register(cmd, group)
	}
}

// errUsage marks errors caused by invalid command line arguments.
var errUsage = errors.New("usage")

// usageErrorf returns an error wrapping errUsage.
func usageErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errUsage, fmt.Sprintf(format, args...))
}

// reporter is implemented by commands that compute a report.
type reporter interface {
	// report returns the view of the report, and its markdown rendering.
	report(args []string) (view any, md string, err error)
}

// outputFlags selects how a report is printed.
type outputFlags struct {
	format string
}

func (o *outputFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&o.format, "format", "markdown", "Output format (markdown, json)")
}

// execute runs the reporter r on the args and prints the report.
func (o *outputFlags) execute(r reporter, args []string) subcommands.ExitStatus {
	if o.format != "markdown" && o.format != "json" {
		fmt.Fprintf(os.Stderr, "Error: unknown output format %q\n", o.format)
		return subcommands.ExitUsageError
	}
	view, md, err := r.report(args)
	if errors.Is(err, errUsage) {
		fmt.Fprintf(os.Stderr, "Error parsing arguments: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if o.format == "json" {
		if err := printJSON(view); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding report: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

// printMarkdown renders md for the terminal. The raw markdown is printed if it cannot be rendered.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		logf("cannot create markdown renderer: %v", err)
		fmt.Fprintln(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		logf("cannot render markdown: %v", err)
		fmt.Fprintln(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}

func printJSON(view any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(view)
}

// logf logs only in verbose mode.
func logf(format string, args ...any) {
	if *Verbose {
		log.Printf(format, args...)
	}
}

func envOr(key, value string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return value
}

// parseFloats parses one float per name from args.
func parseFloats(args []string, names ...string) ([]float64, error) {
	if len(args) != len(names) {
		return nil, usageErrorf("want %d arguments %v, got %d", len(names), names, len(args))
	}
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, usageErrorf("invalid %s %q", names[i], arg)
		}
		values[i] = v
	}
	return values, nil
}
