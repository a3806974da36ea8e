package cmd

import (
	"flag"
	"io"

	"github.com/etnz/riskfolio/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// filePredictors completes flags naming files.
var filePredictors = map[string]complete.Predictor{
	"config": predict.Files("*.yaml"),
	"f":      predict.Files("*.jsonl"),
	"values": predict.Files("*.jsonl"),
	"market": predict.Files("*.jsonl"),
	"o":      predict.Files("*.jsonl"),
	"png":    predict.Files("*.png"),
	"svg":    predict.Files("*.svg"),
}

// Completion returns the shell completion of the rf command line.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(flag.CommandLine),
	}
	commands := append(analysisCommands(), subcommands.Command(&generateCmd{}), &topicCmd{})
	for _, c := range commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		c.SetFlags(fs)
		root.Sub[c.Name()] = &complete.Command{Flags: flagPredictors(fs)}
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(append(topics, "readme"))
	}
	return root
}

// flagPredictors returns a predictor for every flag of fs.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		switch {
		case filePredictors[f.Name] != nil:
			flags[f.Name] = filePredictors[f.Name]
		case isBool(f):
			flags[f.Name] = predict.Nothing
		default:
			flags[f.Name] = predict.Something
		}
	})
	return flags
}

func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
