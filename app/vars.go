package app

import (
	"os"

	"github.com/go-kit/log"
	"github.com/gonuts/commander"
)

var (
	allOut bool = true

	// file options shared across commands
	input     string
	inputGold string
	output    string
	modelFile string
	limit     int
	trace     bool

	// serving options
	addr string

	// Log is the shared structured logger. Commands write progress and
	// configuration echo here; results go to stdout or the output file.
	Log log.Logger = log.With(
		log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr)),
		"ts", log.DefaultTimestampUTC,
	)
)

func VerifyExists(filename string) bool {
	_, err := os.Stat(filename)
	if err != nil {
		Log.Log("msg", "Error accessing file", "file", filename, "err", err)
		return false
	}
	return true
}

func VerifyFlags(cmd *commander.Command, required []string) {
	for _, name := range required {
		f := cmd.Flag.Lookup(name)
		if f.Value.String() == "" {
			Log.Log("msg", "Required flag not set", "flag", f.Name)
			cmd.Usage()
			os.Exit(1)
		}
	}
}
