package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"sheetload/internal/config"
	"sheetload/internal/db"
	"sheetload/internal/sheet"
)

var ImportCmd = Import{}

// Import loads a worksheet from a local .xlsx workbook into the configured
// PostgreSQL table, using the same loader as 'run'.
type Import struct {
	file      string
	worksheet string
	debug     bool
}

func (cmd *Import) Name() string {
	return "import"
}

func (cmd *Import) Description() string {
	return "Loads a worksheet from a local .xlsx workbook into a PostgreSQL table"
}

func (cmd *Import) Usage() string {
	return "--file <file> [--worksheet <name>]"
}

func (cmd *Import) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] import [options] --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Loads a worksheet from a local workbook into the PostgreSQL table")
	fmt.Println("  identified by PG_TABLE. The database parameters are read from the")
	fmt.Println("  environment; the worksheet defaults to the first sheet in the workbook.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s import --file \"example.xlsx\" --worksheet \"Sheet1\"\n", APP)
	fmt.Println()
}

func (cmd *Import) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("import", flag.ExitOnError)

	flagset.StringVar(&cmd.file, "file", cmd.file, "Workbook (.xlsx) file to load")
	flagset.StringVar(&cmd.worksheet, "worksheet", cmd.worksheet, "Worksheet name. Defaults to the first sheet in the workbook")

	return flagset
}

func (cmd *Import) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	if strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	database, err := config.LoadDatabase()
	if err != nil {
		return err
	}

	policy, err := db.ParsePolicy(config.LoadIfExists())
	if err != nil {
		return err
	}

	batchSize, err := config.LoadBatchSize()
	if err != nil {
		return err
	}

	t, err := sheet.FromWorkbook(cmd.file, cmd.worksheet)
	if err != nil {
		return err
	}

	return db.Load(context.Background(), t, database.URL(), database.Table, policy, batchSize)
}
