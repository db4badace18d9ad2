package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/Kariqs/hanythrift-api/initializers"
	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	steps := pflag.IntP("steps", "n", 1, "number of migrations to roll back with down")
	all := pflag.Bool("all", false, "roll back every migration with down")
	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: migrate [flags] up|down|version|sync")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(2)
	}

	if err := run(pflag.Arg(0), *steps, *all); err != nil {
		log.Fatal(err)
	}
}

func run(command string, steps int, all bool) error {
	cfg, err := initializers.LoadConfig()
	if err != nil {
		return err
	}
	logger, err := initializers.NewLogger("hanythrift-migrate", cfg.AppEnv, cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if command == "sync" {
		db, err := initializers.ConnectToDB(context.Background(), cfg, logger)
		if err != nil {
			return err
		}
		if err := initializers.SyncDatabase(db); err != nil {
			return fmt.Errorf("sync schema: %w", err)
		}
		logger.Info("schema synced from models")
		return nil
	}

	m, err := initializers.NewMigrator(cfg)
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	switch command {
	case "up":
		err = m.Up()
	case "down":
		if all {
			err = m.Down()
		} else {
			err = m.Steps(-steps)
		}
	case "version":
		v, dirty, verr := m.Version()
		if errors.Is(verr, migrate.ErrNilVersion) {
			logger.Info("no migrations applied")
			return nil
		}
		if verr != nil {
			return verr
		}
		logger.Info("schema version", zap.Uint("version", v), zap.Bool("dirty", dirty))
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no change", zap.String("command", command))
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", command, err)
	}
	logger.Info("migration complete", zap.String("command", command))
	return nil
}
