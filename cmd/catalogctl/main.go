// Catalograph - Graph-Backed Movie and TV Catalog Analytics
// Copyright 2026 Catalograph Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/catalograph/catalograph

// Command catalogctl prepares and loads the catalog dataset.
//
// Subcommands:
//
//	clean   normalize a raw catalog CSV export
//	schema  provision constraints and indexes
//	import  load a cleaned CSV into the graph
//
// Typical first-time setup:
//
//	catalogctl clean -in netflix_titles.csv -out netflix_titles_cleaned.csv
//	catalogctl schema
//	catalogctl import -in netflix_titles_cleaned.csv
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/catalograph/catalograph/internal/config"
	"github.com/catalograph/catalograph/internal/graph"
	"github.com/catalograph/catalograph/internal/importer"
	"github.com/catalograph/catalograph/internal/logging"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	logging.Init(logging.Config{Level: "info", Format: "console", Timestamp: true})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var err error
	switch os.Args[1] {
	case "clean":
		err = runClean(os.Args[2:])
	case "schema":
		err = runSchema(ctx, os.Args[2:])
	case "import":
		err = runImport(ctx, os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		logging.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage: catalogctl <command> [flags]

Commands:
  clean   -in <raw.csv> -out <cleaned.csv>   normalize a raw catalog export
  schema                                     provision constraints and indexes
  import  -in <cleaned.csv> [-max-errors N]  load a cleaned CSV into the graph

Graph connection settings come from the environment (NEO4J_URI,
NEO4J_USERNAME, NEO4J_PASSWORD) or a config file.
`)
}

func runClean(args []string) error {
	fs := flag.NewFlagSet("clean", flag.ExitOnError)
	inPath := fs.String("in", "netflix_titles.csv", "raw catalog CSV")
	outPath := fs.String("out", "netflix_titles_cleaned.csv", "cleaned CSV destination")
	_ = fs.Parse(args)

	in, err := os.Open(*inPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(*outPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	stats, err := importer.Clean(in, out)
	if err != nil {
		return err
	}

	logging.Info().
		Int("rows", stats.Rows).
		Int("skipped", stats.Skipped).
		Str("output", *outPath).
		Msg("Cleaning complete")
	return nil
}

func runSchema(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("schema", flag.ExitOnError)
	_ = fs.Parse(args)

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore(store)

	return store.EnsureSchema(ctx)
}

func runImport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	inPath := fs.String("in", "netflix_titles_cleaned.csv", "cleaned CSV to import")
	maxErrors := fs.Int("max-errors", -1, "abort after this many failed records (0 = never, -1 = use config)")
	_ = fs.Parse(args)

	in, err := os.Open(*inPath)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer in.Close()

	records, err := importer.ReadCleaned(in)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if *maxErrors < 0 {
		*maxErrors = cfg.Import.MaxErrors
	}

	store, err := connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore(store)

	imp, err := importer.New(store, importer.Config{
		ProgressInterval: cfg.Import.ProgressInterval,
		MaxErrors:        *maxErrors,
	}, logging.Logger())
	if err != nil {
		return err
	}

	stats, err := imp.Run(ctx, records)
	if err != nil {
		return err
	}
	if stats.Failed > 0 {
		return fmt.Errorf("%d records failed to import", stats.Failed)
	}
	return nil
}

func connect(ctx context.Context, cfg *config.Config) (*graph.Store, error) {
	return graph.New(ctx, graph.Config{
		URI:                cfg.Graph.URI,
		Username:           cfg.Graph.Username,
		Password:           cfg.Graph.Password,
		Database:           cfg.Graph.Database,
		ConnectTimeout:     cfg.Graph.ConnectTimeout,
		QueryTimeout:       cfg.Graph.QueryTimeout,
		BreakerMaxFailures: cfg.Graph.BreakerMaxFailures,
		BreakerOpenTimeout: cfg.Graph.BreakerOpenTimeout,
	}, logging.Logger())
}

func closeStore(store *graph.Store) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Close(ctx); err != nil {
		logging.Error().Err(err).Msg("Failed to close graph store")
	}
}
