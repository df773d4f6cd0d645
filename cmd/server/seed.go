package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/madking-api/internal/seed"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load catalog fixtures into the store",
	Long:  `Seed reads a YAML file of races, classes, origins, items and spells and stores them through the catalog services. Entries with an id are replaced if they already exist.`,
	RunE:  runSeedCmd,
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "seed file (defaults to SEED_FILE)")
}

func runSeedCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := cfg.SeedFile
	if cmd.Flags().Changed("file") {
		path = seedFile
	}
	if path == "" {
		return fmt.Errorf("no seed file: pass --file or set SEED_FILE")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := newRedisClient(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	a, err := newApp(cfg, client, dice.DefaultRoller)
	if err != nil {
		return err
	}

	return runSeed(ctx, a, path)
}

func runSeed(ctx context.Context, a *app, path string) error {
	file, err := seed.ReadFile(path)
	if err != nil {
		return err
	}

	loader, err := a.seeder()
	if err != nil {
		return fmt.Errorf("failed to create seed loader: %w", err)
	}

	result, err := loader.Load(ctx, file)
	for kind, counts := range result {
		slog.InfoContext(ctx, "seeded catalog",
			"kind", kind,
			"created", counts.Created,
			"updated", counts.Updated)
	}
	if err != nil {
		return fmt.Errorf("failed to seed %s: %w", path, err)
	}
	return nil
}
