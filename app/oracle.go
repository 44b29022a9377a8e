package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/pkg/errors"

	"github.com/habeanf/nap/alg/transition"
	"github.com/habeanf/nap/nlp/format/jsonl"
)

func OracleConfigOut() {
	Log.Log("msg", "configuration", "model", modelFile, "gold", inputGold, "output", outputName())
	if !VerifyExists(modelFile) {
		os.Exit(1)
	}
	if !VerifyExists(inputGold) {
		os.Exit(1)
	}
}

// RunOracle derives the canonical action script for every gold sentence.
// Underivable gold is reported and skipped; the sentence count is the
// verdict, not the exit code.
func RunOracle(cmd *commander.Command, args []string) error {
	VerifyFlags(cmd, []string{"m", "g"})
	if allOut {
		OracleConfigOut()
	}
	modelConf, err := LoadModelConfig(modelFile)
	if err != nil {
		return err
	}
	parser, err := modelConf.NewParser()
	if err != nil {
		return err
	}

	gold, err := jsonl.ReadFile(inputGold, limit)
	if err != nil {
		return err
	}
	if allOut {
		Log.Log("msg", "read gold sentences", "count", humanize.Comma(int64(len(gold))))
	}

	writer, err := openOutput()
	if err != nil {
		return err
	}
	var malformed int
	for i, sent := range gold {
		_, result, err := parser.ParseOracle(sent.Sentence(), sent.ArcSet())
		if err != nil {
			var dead *transition.MalformedGoldDerivationError
			if !errors.As(err, &dead) {
				return errors.Wrapf(err, "deriving sentence %d", i)
			}
			malformed++
			Log.Log("msg", "underivable gold", "sentence", i, "step", dead.Step, "legal", dead.Legal.String())
			continue
		}
		names := make([]string, len(result.Actions))
		for j, action := range result.Actions {
			names[j] = action.String()
		}
		fmt.Fprintln(writer, strings.Join(names, " "))
	}
	if output != "" {
		writer.Close()
	}
	if allOut {
		Log.Log("msg", "done", "derived", len(gold)-malformed, "underivable", malformed)
	}
	return nil
}

func OracleCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       RunOracle,
		UsageLine: "oracle <file options> [arguments]",
		Short:     "derives canonical action scripts from gold arcs",
		Long: `
derives canonical action scripts from gold arcs

	$ ./nap oracle -m <model> -g <gold> [-o <output>] [options]

gold is one JSON object per sentence with tokens and [head, modifier]
arcs; output is one space-separated action script per derivable sentence.
`,
		Flag: *flag.NewFlagSet("oracle", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&modelFile, "m", "", "Model configuration file")
	cmd.Flag.StringVar(&inputGold, "g", "", "Gold sentence file")
	cmd.Flag.StringVar(&output, "o", "", "Output file; default stdout")
	cmd.Flag.IntVar(&limit, "limit", 0, "Max sentences to read; 0 = all")
	return cmd
}
