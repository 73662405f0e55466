package commands

import (
	"context"
	"flag"
	"fmt"
	"time"

	"sheetload/internal/config"
	"sheetload/internal/db"
	"sheetload/internal/log"
	"sheetload/internal/sheet"
)

var RunCmd = Run{}

// Run is the default command: extracts the configured worksheet and loads
// it into the configured PostgreSQL table.
type Run struct {
	debug bool
}

func (cmd *Run) Name() string {
	return "run"
}

func (cmd *Run) Description() string {
	return "Extracts a Google Sheets worksheet and loads it into a PostgreSQL table"
}

func (cmd *Run) Usage() string {
	return ""
}

func (cmd *Run) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] run\n", APP)
	fmt.Println()
	fmt.Println("  Extracts the worksheet identified by SHEET_ID/WORKSHEET and loads it")
	fmt.Println("  into the PostgreSQL table identified by PG_TABLE. All parameters are")
	fmt.Println("  read from the environment - see the package documentation for the")
	fmt.Println("  full list of variables.")
	fmt.Println()
	fmt.Println("  If RUN_INTERVAL is set to a duration (e.g. 15m) the extract and load")
	fmt.Println("  is repeated on that interval until the process is stopped.")
	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    SHEET_ID=1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms WORKSHEET=Class %s run\n", APP)
	fmt.Println()
}

func (cmd *Run) FlagSet() *flag.FlagSet {
	return flag.NewFlagSet("run", flag.ExitOnError)
}

func (cmd *Run) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	policy, err := db.ParsePolicy(cfg.IfExists)
	if err != nil {
		return err
	}

	ctx := context.Background()

	if cfg.Interval == 0 {
		return cmd.run(ctx, cfg, policy)
	}

	for {
		if err := cmd.run(ctx, cfg, policy); err != nil {
			return err
		}

		log.Infof("sleeping for %v", cfg.Interval)
		time.Sleep(cfg.Interval)
	}
}

func (cmd *Run) run(ctx context.Context, cfg *config.Config, policy db.Policy) error {
	t, err := sheet.Extract(ctx, cfg.Sheet.ID, cfg.Sheet.Worksheet, []byte(cfg.Sheet.Credentials))
	if err != nil {
		return err
	}

	return db.Load(ctx, t, cfg.Database.URL(), cfg.Database.Table, policy, cfg.BatchSize)
}
