package app

import (
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/pkg/errors"

	"github.com/habeanf/nap/nlp/format/jsonl"
	"github.com/habeanf/nap/nlp/format/raw"
	dep "github.com/habeanf/nap/nlp/parser/dependency/transition"
)

func ParseConfigOut() {
	Log.Log("msg", "configuration", "model", modelFile, "input", inputName(), "output", outputName())
	if !VerifyExists(modelFile) {
		os.Exit(1)
	}
	if input != "" && !VerifyExists(input) {
		os.Exit(1)
	}
}

func inputName() string {
	if input == "" {
		return "stdin"
	}
	return input
}

func outputName() string {
	if output == "" {
		return "stdout"
	}
	return output
}

func openInput() (io.ReadCloser, error) {
	if input == "" {
		return os.Stdin, nil
	}
	file, err := os.Open(input)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", input)
	}
	return file, nil
}

func openOutput() (io.WriteCloser, error) {
	if output == "" {
		return os.Stdout, nil
	}
	file, err := os.Create(output)
	if err != nil {
		return nil, errors.Wrapf(err, "creating %s", output)
	}
	return file, nil
}

func RunParse(cmd *commander.Command, args []string) error {
	VerifyFlags(cmd, []string{"m"})
	if allOut {
		ParseConfigOut()
	}
	modelConf, err := LoadModelConfig(modelFile)
	if err != nil {
		return err
	}
	parser, err := modelConf.NewParser()
	if err != nil {
		return err
	}
	parser.ShowConsiderations = trace

	reader, err := openInput()
	if err != nil {
		return err
	}
	sentences, err := raw.Read(reader, limit)
	if input != "" {
		reader.Close()
	}
	if err != nil {
		return err
	}
	if allOut {
		Log.Log("msg", "read sentences", "count", humanize.Comma(int64(len(sentences))))
	}

	start := time.Now()
	parsed := make([]jsonl.Sentence, 0, len(sentences))
	var failed int
	for i, sent := range sentences {
		conf, _, err := parser.Parse(sent)
		if err != nil {
			failed++
			Log.Log("msg", "parse failed", "sentence", i, "err", err)
			continue
		}
		final := conf.(*dep.VectorConfiguration)
		parsed = append(parsed, jsonl.FromParse(sent.Tokens(), final.Arcs()))
	}

	writer, err := openOutput()
	if err != nil {
		return err
	}
	if err := jsonl.Write(writer, parsed); err != nil {
		writer.Close()
		return err
	}
	if output != "" {
		writer.Close()
	}
	if allOut {
		Log.Log("msg", "done", "parsed", humanize.Comma(int64(len(parsed))),
			"failed", failed, "duration", time.Since(start))
	}
	return nil
}

func ParseCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       RunParse,
		UsageLine: "parse <file options> [arguments]",
		Short:     "parses plain text into dependency arcs",
		Long: `
parses plain text into dependency arcs

	$ ./nap parse -m <model> [-i <input>] [-o <output>] [options]

input is one sentence per line, whitespace tokenized; output is one JSON
object per sentence with tokens and [head, modifier] arcs.
`,
		Flag: *flag.NewFlagSet("parse", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&modelFile, "m", "", "Model configuration file")
	cmd.Flag.StringVar(&input, "i", "", "Input file; default stdin")
	cmd.Flag.StringVar(&output, "o", "", "Output file; default stdout")
	cmd.Flag.IntVar(&limit, "limit", 0, "Max sentences to read; 0 = all")
	cmd.Flag.BoolVar(&trace, "trace", false, "Log scores considered at every step")
	return cmd
}
