package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fadedpez/roguejack/internal/config"
	"github.com/fadedpez/roguejack/internal/logging"
	"github.com/fadedpez/roguejack/pkg/repositories/run"
)

// app carries what every command needs. Tests fill it in directly.
type app struct {
	cfg    *config.Config
	logger *logging.Logger
	repo   run.Repository
	// owned is set when the app opened repo itself and must close it
	owned bool
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "roguejack",
		Short:         "Roguelike blackjack battles with recorded, replayable runs",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.close()
		},
	}

	root.AddCommand(
		newPlayCmd(a),
		newReplayCmd(a),
		newRunsCmd(a),
		newMigrateCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	if a.cfg == nil {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.logger == nil {
		a.logger = logging.NewLoggerWithWriter(cmd.ErrOrStderr(), a.cfg.Level())
	}
	return nil
}

// repository opens the configured run store once per process
func (a *app) repository(ctx context.Context) (run.Repository, error) {
	if a.repo != nil {
		return a.repo, nil
	}

	switch a.cfg.Storage {
	case config.StorageMemory:
		a.logger.Warn("Using in-memory run storage (runs are lost on exit)")
		a.repo = run.NewMemoryRepository()

	case config.StorageSQLite:
		a.logger.Debug("Opening SQLite run storage at %s", a.cfg.DBPath)
		repo, err := run.NewSQLiteRepository(a.cfg.DBPath, a.logger)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", a.cfg.DBPath, err)
		}
		a.repo = repo

	case config.StorageElasticsearch:
		base, err := run.NewSQLiteRepository(a.cfg.DBPath, a.logger)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", a.cfg.DBPath, err)
		}
		repo, err := run.NewElasticsearchRepository(ctx, base, &run.ElasticsearchConfig{
			URL:         a.cfg.ESURL,
			Username:    a.cfg.ESUsername,
			Password:    a.cfg.ESPassword,
			IndexPrefix: a.cfg.ESIndexPrefix,
		}, a.logger)
		if err != nil {
			a.logger.Warn("Elasticsearch unavailable, storing runs in SQLite only: %v", err)
			a.repo = base
			break
		}
		a.repo = repo

	default:
		return nil, fmt.Errorf("unknown storage %q", a.cfg.Storage)
	}
	a.owned = true
	return a.repo, nil
}

func (a *app) close() {
	if a.repo == nil || !a.owned {
		return
	}
	if err := a.repo.Close(); err != nil {
		a.logger.Error("Closing run storage: %v", err)
	}
	a.repo = nil
	a.owned = false
}
