package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/nmt/internal/config"
	"github.com/abhisek/nmt/internal/logging"
	"github.com/abhisek/nmt/internal/pool"
	"github.com/abhisek/nmt/internal/store"
)

// env is what a command needs after flags are parsed: config, a logger
// and a lazily opened store.
type env struct {
	cfg      *config.Config
	log      *zap.Logger
	closeLog func()
	st       *store.Store
}

// setup loads the config named by --config and builds the logger. Commands
// that draw a TUI pass console=false so nothing is written to the terminal.
func setup(cmd *cobra.Command, console bool) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if dsn, _ := cmd.Flags().GetString("db"); dsn != "" {
		cfg.Database.DSN = dsn
	}

	log, closeLog, err := logging.New(cfg.Log, console)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	return &env{cfg: cfg, log: log, closeLog: closeLog}, nil
}

// store opens the configured database on first use.
func (e *env) store() (*store.Store, error) {
	if e.st != nil {
		return e.st, nil
	}
	dsn, err := e.cfg.DatabaseDSN()
	if err != nil {
		return nil, fmt.Errorf("resolve database: %w", err)
	}
	if e.cfg.Database.Driver == store.DriverSQLite || e.cfg.Database.Driver == "" {
		if err := store.EnsureDir(dsn); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}
	st, err := store.OpenDriver(e.cfg.Database.Driver, dsn)
	if err != nil {
		return nil, err
	}
	e.log.Debug("database opened", zap.String("driver", e.cfg.Database.Driver))
	e.st = st
	return st, nil
}

// localPool is the pool file, merged with approved bank questions when
// pool.include_bank is set. The file wins on duplicate ids.
func (e *env) localPool() (pool.Source, error) {
	file := pool.NewFileSource(e.cfg.Pool.File, e.log)
	if !e.cfg.Pool.IncludeBank {
		return file, nil
	}
	st, err := e.store()
	if err != nil {
		return nil, err
	}
	return pool.Merge(file, pool.NewBankSource(st.SubmissionRepo(), e.log)), nil
}

func (e *env) Close() {
	if e.st != nil {
		if err := e.st.Close(); err != nil {
			e.log.Warn("close database", zap.Error(err))
		}
	}
	e.closeLog()
}
