package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/advisor/internal/catalog"
	"github.com/alexanderramin/advisor/internal/cli"
	"github.com/alexanderramin/advisor/internal/config"
	"github.com/alexanderramin/advisor/internal/db"
	"github.com/alexanderramin/advisor/internal/logging"
	"github.com/alexanderramin/advisor/internal/metrics"
	"github.com/alexanderramin/advisor/internal/repository"
	"github.com/alexanderramin/advisor/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel
	logCfg.Format = cfg.LogFormat
	logging.Init(logCfg)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	cat, err := catalog.LoadOrDefault(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	logging.Debug().
		Str("db", cfg.DBPath).
		Str("catalog", cat.Version()).
		Int("electives", cat.Len()).
		Msg("advisor configured")

	// Wire repositories
	historyRepo := repository.NewSQLiteHistoryRepo(database)
	importRepo := repository.NewSQLiteImportRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	observer := service.MultiObserver{
		service.NewLogUseCaseObserver(logging.With("service")),
		metrics.Observer{},
	}

	app := &cli.App{
		Catalog:    cat,
		History:    historyRepo,
		Imports:    service.NewImportService(uow, importRepo, observer),
		Observer:   observer,
		ListenAddr: cfg.ListenAddr,
	}

	// The name prompt only runs on a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
