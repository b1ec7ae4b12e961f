package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"

	"levelgen.dev/internal/config"
	"levelgen.dev/internal/models"
	"levelgen.dev/internal/persistence/indexdb"
	"levelgen.dev/internal/services"
)

var minimum, maximum int = 10000, 99999

func main() {
	var (
		seed       = flag.Uint64("seed", uint64(rand.IntN(maximum-minimum+1)+minimum), "generation seed")
		outputDir  = flag.String("out", "data", "directory for snapshots and JSON exports")
		tuningPath = flag.String("tuning", "", "optional YAML tuning file")
		dbPath     = flag.String("db", "", "level index database (default <out>/index.db)")
		from       = flag.String("from", "", "id of the level the player arrives from")
		next       = flag.String("next", "level-2", "id of the level the up stairs lead to")
		verbose    = flag.Bool("v", false, "log every pipeline stage")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(log, *seed, *outputDir, *tuningPath, *dbPath, *from, *next); err != nil {
		log.Error("generate failed", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, seed uint64, outputDir, tuningPath, dbPath, from, next string) error {
	ctx := context.Background()

	tuning, err := config.LoadTuning(tuningPath)
	if err != nil {
		return err
	}

	if dbPath == "" {
		dbPath = filepath.Join(outputDir, "index.db")
	}
	index, err := indexdb.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open index: %w", err)
	}
	defer index.Close()

	svc := services.NewLevelService(outputDir, tuning, index, log)

	fmt.Printf("Generating %dx%d level with seed %d...\n", tuning.Width, tuning.Height, seed)
	summary, err := svc.GenerateWithStages(ctx, models.GenerateRequest{Seed: seed, From: from, Next: next},
		func(stage models.StageMessage) {
			fmt.Printf("  [%d] %-10s land=%d %s\n", stage.Index, stage.Stage, stage.LandCells, stage.Detail)
		})
	if err != nil {
		return err
	}

	exp, err := svc.Get(ctx, summary.ID)
	if err != nil {
		return err
	}

	// Write the JSON export next to the snapshot
	data, err := json.MarshalIndent(exp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal export: %w", err)
	}
	path := filepath.Join(outputDir, summary.ID+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	fmt.Printf("  Created %s (%d continents, %d docks, %d links)\n", filepath.Base(path), summary.Continents, summary.Docks, summary.Links)
	if !summary.Connected {
		fmt.Printf("  Unreachable from %s: %v\n", exp.Connectivity.StartContinent, exp.Connectivity.Unreachable)
	}
	fmt.Println("Done!")
	return nil
}
