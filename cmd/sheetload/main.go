package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"sheetload/commands"
	"sheetload/internal/log"
)

var cli = []commands.Command{
	&commands.VersionCmd,
	&commands.RunCmd,
	&commands.GetCmd,
	&commands.ImportCmd,
}

var options = commands.Options{
	Debug: false,
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file found")
	}

	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	log.SetLevel(os.Getenv("LOG_LEVEL"))
	if options.Debug {
		log.SetLevel("debug")
	}

	cmd, args, err := parse(flag.Args())
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		usage()
		os.Exit(1)
	}

	if err := cmd.FlagSet().Parse(args); err != nil {
		cmd.Help()
		os.Exit(1)
	}

	if err := cmd.Execute(&options); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

// parse resolves the subcommand from the command line. Invoked without
// arguments, sheetload behaves as a batch job and runs the extract and load
// pipeline.
func parse(args []string) (commands.Command, []string, error) {
	if len(args) == 0 {
		return &commands.RunCmd, nil, nil
	}

	if args[0] == "help" {
		if len(args) > 1 {
			for _, cmd := range cli {
				if cmd.Name() == args[1] {
					cmd.Help()
					os.Exit(0)
				}
			}
		}

		usage()
		os.Exit(0)
	}

	for _, cmd := range cli {
		if cmd.Name() == args[0] {
			return cmd, args[1:], nil
		}
	}

	return nil, nil, fmt.Errorf("unknown command %q", args[0])
}

func usage() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] <command> [options]\n", commands.APP)
	fmt.Println()
	fmt.Println("  Commands:")
	fmt.Println()

	for _, cmd := range cli {
		fmt.Printf("    %-10s %s\n", cmd.Name(), cmd.Description())
	}

	fmt.Println()
	fmt.Printf("  Invoked without a command, %s runs the extract and load pipeline.\n", commands.APP)
	fmt.Println()
}
