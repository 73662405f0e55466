package commands

import (
	"flag"
	"fmt"
)

const APP = "sheetload"
const VERSION = "v0.1.0"

// Options are the application level options shared by all commands.
type Options struct {
	Debug bool
}

// Command is the interface implemented by all sheetload subcommands.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Help()
	FlagSet() *flag.FlagSet
	Execute(args ...any) error
}

func helpOptions(flagset *flag.FlagSet) {
	fmt.Println("  Options:")
	fmt.Println()

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-12s %s\n", f.Name, f.Usage)
	})
}
