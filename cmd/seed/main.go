// Command seed loads reference data into the donation database and
// manages ledger backups from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/junksamiad/xmas-donation-app/config"
	"github.com/junksamiad/xmas-donation-app/internal/repository"
	"github.com/junksamiad/xmas-donation-app/pkg/database"
	applogger "github.com/junksamiad/xmas-donation-app/pkg/logger"
)

// app bundles the resources every subcommand needs.
type app struct {
	cfg    *config.Config
	db     *gorm.DB
	repo   *repository.Repository
	logger *zap.Logger
}

var configPath string

func main() {
	var a app

	root := &cobra.Command{
		Use:           "seed",
		Short:         "Seed reference data and manage donation-ledger backups",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.close()
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")

	root.AddCommand(
		newSeedAllCmd(&a),
		newSeedDepartmentsCmd(&a),
		newSeedChildrenCmd(&a),
		newSeedGiftIdeasCmd(&a),
		newSeedAdminCmd(&a),
		newBackupCmd(&a),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) init() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		return err
	}
	a.logger = logger

	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		return err
	}
	a.db = db

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		return err
	}

	a.repo = repository.NewRepository(db)
	return nil
}

func (a *app) close() {
	if a.db != nil {
		if sqlDB, _ := a.db.DB(); sqlDB != nil {
			sqlDB.Close()
		}
	}
	if a.logger != nil {
		a.logger.Sync()
	}
}
