package commands

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sheetload/internal/config"
	"sheetload/internal/log"
	"sheetload/internal/sheet"
	"sheetload/internal/table"
)

var GetCmd = Get{
	file: time.Now().Format("2006-01-02T150405.tsv"),
}

// Get downloads the configured worksheet to a local TSV file, without
// touching the database.
type Get struct {
	file  string
	debug bool
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Retrieves a Google Sheets worksheet and stores it to a local TSV file"
}

func (cmd *Get) Usage() string {
	return "--file <file>"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] get [options]\n", APP)
	fmt.Println()
	fmt.Println("  Downloads the worksheet identified by SHEET_ID/WORKSHEET to a TSV file.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s get --file \"example.tsv\"\n", APP)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("get", flag.ExitOnError)

	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file name. Defaults to '<yyyy-mm-ddTHHmmss>.tsv'")

	return flagset
}

func (cmd *Get) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	cfg, err := config.LoadSheet()
	if err != nil {
		return err
	}

	ctx := context.Background()

	t, err := sheet.Extract(ctx, cfg.ID, cfg.Worksheet, []byte(cfg.Credentials))
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(os.TempDir(), "sheetload")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := toTSV(tmp, t); err != nil {
		return fmt.Errorf("error creating TSV file (%v)", err)
	}

	tmp.Close()

	dir := filepath.Dir(cmd.file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), cmd.file); err != nil {
		return err
	}

	log.Infof("retrieved worksheet %s to file %s", cfg.Worksheet, cmd.file)

	return nil
}

func toTSV(f *os.File, t *table.Table) error {
	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := w.Write(t.Columns); err != nil {
		return err
	}

	for _, record := range t.Records {
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}
