package cmd

import (
	"flag"

	"github.com/etnz/tvm/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete answers shell completion requests for the program name, and exits
// when it did. Otherwise it returns and the program runs normally.
//
// It must be called before the flags are parsed.
func Complete(name string) {
	completion(flag.CommandLine).Complete(name)
}

// completion returns the completion tree of the global flags and the subcommands.
func completion(global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(global),
	}
	for _, c := range Commands {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		root.Sub[c.Name()] = &complete.Command{Flags: flagPredictors(f)}
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(topics)
	}
	for _, name := range []string{"help", "flags", "commands"} {
		root.Sub[name] = &complete.Command{}
	}
	return root
}

// flagPredictors predicts flag values: files for file flags, formats for -format, nothing otherwise.
func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	predictors := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		switch fl.Name {
		case "f", "csv-file":
			predictors[fl.Name] = predict.Files("*")
		case "format":
			predictors[fl.Name] = predict.Set{"markdown", "json"}
		default:
			predictors[fl.Name] = predict.Nothing
		}
	})
	return predictors
}
