package app

import (
	"fmt"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

const VERSION = "nap v0.1.0"

func RunVersion(cmd *commander.Command, args []string) error {
	fmt.Println(VERSION)
	return nil
}

func VersionCmd() *commander.Command {
	return &commander.Command{
		Run:       RunVersion,
		UsageLine: "version",
		Short:     "prints the version",
		Long: `
prints the version

	$ ./nap version

`,
		Flag: *flag.NewFlagSet("version", flag.ExitOnError),
	}
}
