package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/junksamiad/xmas-donation-app/internal/service"
	"github.com/junksamiad/xmas-donation-app/pkg/backup"
)

func newBackupCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Manage donation-ledger backups",
	}

	newSvc := func() (service.BackupService, error) {
		store, err := backup.NewStore(&a.cfg.Backup, a.logger)
		if err != nil {
			return nil, err
		}
		return service.NewBackupService(a.cfg, a.repo, store, a.logger), nil
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "create",
			Short: "Snapshot the ledger now",
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := newSvc()
				if err != nil {
					return err
				}
				summary, err := svc.Create(cmd.Context())
				if err != nil {
					return err
				}
				a.logger.Info("backup created",
					zap.String("filename", summary.Filename),
					zap.Int("donations", summary.TotalDonations),
					zap.Int("pruned", summary.PrunedBackups))
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List stored backups, newest first",
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := newSvc()
				if err != nil {
					return err
				}
				files, err := svc.List(cmd.Context())
				if err != nil {
					return err
				}
				if len(files) == 0 {
					fmt.Println("no backups found")
					return nil
				}
				for _, f := range files {
					fmt.Printf("%s  %8d bytes  %s\n", f.Filename, f.Size, f.UploadedAt)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "restore <filename>",
			Short: "Replace the ledger with a named backup",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				svc, err := newSvc()
				if err != nil {
					return err
				}
				result, err := svc.Restore(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				a.logger.Info("ledger restored",
					zap.String("filename", result.Filename),
					zap.Int64("deleted", result.Deleted),
					zap.Int("restored", result.Restored),
					zap.Int("skipped", result.Skipped))
				return nil
			},
		},
	)

	return cmd
}
