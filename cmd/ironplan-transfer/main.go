// Command ironplan-transfer exports or imports the full data bundle
// against the record store directly, without a running server. Useful for
// backups and for moving data between the sqlite and postgres backends.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/ironplan/internal/config"
	"github.com/claude/ironplan/internal/storage"
	"github.com/claude/ironplan/internal/tracker"
	"github.com/claude/ironplan/internal/transfer"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	exportPath := flag.String("export", "", "write the full bundle to this file")
	importPath := flag.String("import", "", "read a bundle file and load it into the store")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if (*exportPath == "") == (*importPath == "") {
		fmt.Fprintf(os.Stderr, "Usage: ironplan-transfer -config config.yaml (-export backup.json | -import backup.json)\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	var store storage.Store

	switch cfg.Storage.Driver {
	case "postgres":
		dsn := cfg.Storage.Postgres.DSN()
		if err := storage.RunMigrations(dsn, "migrations"); err != nil {
			log.Error("migration failed", "error", err)
			os.Exit(1)
		}
		store, err = storage.OpenPostgres(ctx, dsn)
	default:
		store, err = storage.OpenSQLite(cfg.Storage.DataDir)
	}
	if err != nil {
		log.Error("failed to open record store", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	tr := tracker.New(store, log)
	tr.Load(ctx)

	if *exportPath != "" {
		runExport(ctx, tr, *exportPath, log)
		return
	}
	runImport(ctx, tr, *importPath, log)
}

func runExport(ctx context.Context, tr *tracker.Tracker, path string, log *slog.Logger) {
	snap := tr.Export()
	data, err := transfer.Encode(transfer.NewBundleDoc(snap))
	if err != nil {
		log.Error("encoding bundle failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Error("writing bundle failed", "path", path, "error", err)
		os.Exit(1)
	}
	log.Info("bundle exported",
		"path", path,
		"exercises", len(snap.Exercises),
		"sessions", len(snap.Sessions),
		"history", len(snap.History),
	)
}

func runImport(ctx context.Context, tr *tracker.Tracker, path string, log *slog.Logger) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("reading bundle failed", "path", path, "error", err)
		os.Exit(1)
	}

	snap, legacy, err := transfer.DecodeBundle(data)
	if err != nil {
		log.Error("bundle rejected", "path", path, "error", err)
		os.Exit(1)
	}

	if snap != nil {
		tr.Import(ctx, *snap)
		log.Info("bundle imported",
			"exercises", len(snap.Exercises),
			"sessions", len(snap.Sessions),
			"history", len(snap.History),
		)
		return
	}

	tr.PrependExercises(ctx, legacy)
	log.Info("legacy exercise list imported", "exercises", len(legacy))
}
