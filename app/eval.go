package app

import (
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/pkg/errors"

	"github.com/habeanf/nap/eval"
	"github.com/habeanf/nap/nlp/format/jsonl"
)

func EvalConfigOut() {
	Log.Log("msg", "configuration", "parsed", input, "gold", inputGold)
	if !VerifyExists(input) {
		os.Exit(1)
	}
	if !VerifyExists(inputGold) {
		os.Exit(1)
	}
}

// RunEval scores a parsed file against a gold file, aligned by position.
func RunEval(cmd *commander.Command, args []string) error {
	VerifyFlags(cmd, []string{"p", "g"})
	if allOut {
		EvalConfigOut()
	}
	parsed, err := jsonl.ReadFile(input, limit)
	if err != nil {
		return err
	}
	gold, err := jsonl.ReadFile(inputGold, limit)
	if err != nil {
		return err
	}
	if len(parsed) != len(gold) {
		return errors.Errorf("evaluation set sizes differ: %d parsed, %d gold", len(parsed), len(gold))
	}
	total := new(eval.Total)
	for i := range parsed {
		total.Add(eval.Arcs(parsed[i].ArcSet(), gold[i].ArcSet()))
	}
	Log.Log("msg", "result", "uas", total.AttachmentScore(), "exact", total.Exact,
		"population", total.Population, "em", total.ExactMatch())
	return nil
}

func EvalCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       RunEval,
		UsageLine: "eval <file options> [arguments]",
		Short:     "scores parsed arcs against gold",
		Long: `
scores parsed arcs against gold

	$ ./nap eval -p <parsed> -g <gold> [options]

both files are one JSON object per sentence with tokens and arcs, aligned
by position.
`,
		Flag: *flag.NewFlagSet("eval", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&input, "p", "", "Parsed sentence file")
	cmd.Flag.StringVar(&inputGold, "g", "", "Gold sentence file")
	cmd.Flag.IntVar(&limit, "limit", 0, "Max sentences to read; 0 = all")
	return cmd
}
