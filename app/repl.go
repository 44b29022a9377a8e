package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/peterh/liner"

	dep "github.com/habeanf/nap/nlp/parser/dependency/transition"
	nlp "github.com/habeanf/nap/nlp/types"
)

const REPL_HISTORY = ".nap_history"

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), REPL_HISTORY)
	}
	return filepath.Join(home, REPL_HISTORY)
}

// RunRepl parses sentences typed at a prompt, printing the action script
// and the arcs with their token forms.
func RunRepl(cmd *commander.Command, args []string) error {
	VerifyFlags(cmd, []string{"m"})
	modelConf, err := LoadModelConfig(modelFile)
	if err != nil {
		return err
	}
	parser, err := modelConf.NewParser()
	if err != nil {
		return err
	}

	rl := liner.NewLiner()
	defer rl.Close()
	rl.SetCtrlCAborts(true)

	if f, err := os.Open(historyPath()); err == nil {
		rl.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyPath()); err == nil {
			rl.WriteHistory(f)
			f.Close()
		}
	}()

	for {
		text, err := rl.Prompt("nap> ")
		if err != nil {
			// liner.ErrPromptAborted or io.EOF
			break
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if text == "exit" || text == "quit" {
			break
		}
		rl.AppendHistory(text)

		sent := nlp.FromString(text)
		conf, result, err := parser.Parse(sent)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Println("actions:", result.Actions)
		final := conf.(*dep.VectorConfiguration)
		for i := 0; i < final.Arcs().Size(); i++ {
			arc := final.Arcs().Index(i)
			fmt.Printf("%d -> %d\t%s -> %s\n",
				arc.GetHead(), arc.GetModifier(), sent[arc.GetHead()], sent[arc.GetModifier()])
		}
	}
	return nil
}

func ReplCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       RunRepl,
		UsageLine: "repl <file options>",
		Short:     "parses sentences interactively",
		Long: `
parses sentences interactively

	$ ./nap repl -m <model>

type a sentence per prompt; exit or quit (or ctrl-D) to leave.
`,
		Flag: *flag.NewFlagSet("repl", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&modelFile, "m", "", "Model configuration file")
	return cmd
}
