package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/junksamiad/xmas-donation-app/config"
	"github.com/junksamiad/xmas-donation-app/internal/dto"
	"github.com/junksamiad/xmas-donation-app/internal/model"
	"github.com/junksamiad/xmas-donation-app/internal/repository"
	"github.com/junksamiad/xmas-donation-app/pkg/backup"
)

var (
	ErrBackupNotFound = errors.New("the requested backup file could not be found")
	ErrBackupInvalid  = errors.New("the backup file is not a valid donations backup")
)

// BackupService snapshots the donation ledger to the backup store and
// restores it. Snapshots are plain JSON arrays of donation rows, so they
// stay readable without the application.
type BackupService interface {
	Create(ctx context.Context) (*dto.BackupSummaryResponse, error)
	List(ctx context.Context) ([]dto.BackupFileResponse, error)
	// Restore replaces the entire ledger with the named backup's rows.
	// Rows whose child or department no longer exists are skipped.
	Restore(ctx context.Context, filename string) (*dto.RestoreResultResponse, error)
}

type backupService struct {
	cfg    *config.Config
	repo   *repository.Repository
	store  *backup.Store
	logger *zap.Logger
}

// NewBackupService creates a BackupService.
func NewBackupService(cfg *config.Config, repo *repository.Repository, store *backup.Store, logger *zap.Logger) BackupService {
	return &backupService{cfg: cfg, repo: repo, store: store, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *backupService) Create(ctx context.Context) (*dto.BackupSummaryResponse, error) {
	donations, err := s.repo.Donation.ListAll(ctx)
	if err != nil {
		s.logger.Error("failed to list donations for backup", zap.Error(err))
		return nil, err
	}

	// strip relations so the snapshot holds only ledger rows
	rows := make([]model.Donation, len(donations))
	copy(rows, donations)
	for i := range rows {
		rows[i].Child = nil
		rows[i].Department = nil
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		s.logger.Error("failed to encode backup", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	filename := backup.NewFilename(now)
	if err := s.store.Put(filename, data); err != nil {
		s.logger.Error("failed to write backup", zap.String("filename", filename), zap.Error(err))
		return nil, err
	}

	pruned, err := s.store.Prune(now)
	if err != nil {
		// the backup itself succeeded; report it anyway
		s.logger.Warn("failed to prune old backups", zap.Error(err))
	}

	summary := &dto.BackupSummaryResponse{
		Filename:       filename,
		TotalDonations: len(rows),
		PrunedBackups:  pruned,
		RetentionDays:  s.cfg.Backup.RetentionDays,
	}
	for i := range rows {
		if rows[i].IsCash() {
			summary.CashDonations++
			if rows[i].Amount != nil {
				summary.TotalCashAmount += *rows[i].Amount
			}
		} else {
			summary.GiftDonations++
		}
	}

	s.logger.Info("backup created",
		zap.String("filename", filename),
		zap.Int("donations", len(rows)),
		zap.Int("pruned", pruned))

	return summary, nil
}

// ────────────────────── List ──────────────────────

func (s *backupService) List(ctx context.Context) ([]dto.BackupFileResponse, error) {
	infos, err := s.store.List()
	if err != nil {
		s.logger.Error("failed to list backups", zap.Error(err))
		return nil, err
	}

	result := make([]dto.BackupFileResponse, len(infos))
	for i, info := range infos {
		result[i] = dto.BackupFileResponse{
			Filename:   info.Filename,
			Size:       info.Size,
			UploadedAt: info.UploadedAt.Format(time.RFC3339),
		}
	}
	return result, nil
}

// ═══════════════════════════════════════════════════════════
// Restore — replace the ledger from a snapshot
// ═══════════════════════════════════════════════════════════
//
// Destructive by design: the current ledger is deleted and the snapshot's
// rows reinserted, inside one transaction. A row referencing a child or
// department that has since been removed is skipped rather than failing
// the whole restore. Each restored child is re-marked assigned so the
// selection pool stays consistent with the ledger.

func (s *backupService) Restore(ctx context.Context, filename string) (*dto.RestoreResultResponse, error) {
	if !s.store.Exists(filename) {
		return nil, ErrBackupNotFound
	}

	data, err := s.store.Get(filename)
	if err != nil {
		s.logger.Error("failed to read backup", zap.String("filename", filename), zap.Error(err))
		return nil, err
	}

	var rows []model.Donation
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, ErrBackupInvalid
	}

	tx, err := s.repo.BeginTx()
	if err != nil {
		s.logger.Error("failed to begin transaction", zap.Error(err))
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			if tx != nil {
				tx.Rollback()
			}
			panic(r)
		}
	}()

	txRepo := s.repo.WithTx(tx)

	deleted, err := txRepo.Donation.DeleteAll(ctx)
	if err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("failed to clear ledger", zap.Error(err))
		return nil, err
	}

	restored, skipped := 0, 0
	for i := range rows {
		row := rows[i]
		row.Child = nil
		row.Department = nil

		if _, err := txRepo.Child.GetByID(ctx, row.ChildID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				skipped++
				continue
			}
			if tx != nil {
				tx.Rollback()
			}
			return nil, err
		}
		if _, err := txRepo.Department.GetByID(ctx, row.DepartmentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				skipped++
				continue
			}
			if tx != nil {
				tx.Rollback()
			}
			return nil, err
		}

		if err := txRepo.Donation.Create(ctx, &row); err != nil {
			if tx != nil {
				tx.Rollback()
			}
			s.logger.Error("failed to restore donation",
				zap.String("donation_id", row.DonationID), zap.Error(err))
			return nil, err
		}
		// idempotent when the child is already assigned
		if _, err := txRepo.Child.MarkAssigned(ctx, row.ChildID); err != nil {
			if tx != nil {
				tx.Rollback()
			}
			return nil, err
		}
		restored++
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			s.logger.Error("failed to commit restore", zap.Error(err))
			return nil, err
		}
	}

	s.logger.Info("ledger restored from backup",
		zap.String("filename", filename),
		zap.Int64("deleted", deleted),
		zap.Int("restored", restored),
		zap.Int("skipped", skipped))

	return &dto.RestoreResultResponse{
		Filename: filename,
		Deleted:  deleted,
		Restored: restored,
		Skipped:  skipped,
	}, nil
}
