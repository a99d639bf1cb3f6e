// Command ia analyzes investments: internal rate of return, compound growth,
// pension drawdown and mortgage repayment.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/tvm/cmd"
	"github.com/google/subcommands"
)

func main() {
	cmd.Complete("ia")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
