package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/junksamiad/xmas-donation-app/config"
	"github.com/junksamiad/xmas-donation-app/internal/model"
	"github.com/junksamiad/xmas-donation-app/internal/repository"
	"github.com/junksamiad/xmas-donation-app/pkg/backup"
)

func newBackupServiceForTest(t *testing.T, repo *repository.Repository) BackupService {
	t.Helper()
	cfg := &config.Config{
		Backup: config.BackupConfig{Dir: t.TempDir(), RetentionDays: 30},
	}
	store, err := backup.NewStore(&cfg.Backup, zap.NewNop())
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	return NewBackupService(cfg, repo, store, zap.NewNop())
}

func TestBackupCreateAndList(t *testing.T) {
	donationRepo := newMockDonationRepo(
		testDonation("dn1", "c1", "A", "d1", model.DonationTypeGift, nil, nil),
		testDonation("dn2", "c2", "B", "d1", model.DonationTypeCash, float64Ptr(12.50), nil),
	)
	repo := newTestRepo(nil, nil, donationRepo, nil, nil)
	svc := newBackupServiceForTest(t, repo)

	summary, err := svc.Create(context.Background())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if summary.TotalDonations != 2 || summary.GiftDonations != 1 || summary.CashDonations != 1 {
		t.Fatalf("got counts %d/%d/%d, want 2/1/1",
			summary.TotalDonations, summary.GiftDonations, summary.CashDonations)
	}
	if summary.TotalCashAmount != 12.50 {
		t.Fatalf("got cash total %.2f, want 12.50", summary.TotalCashAmount)
	}

	files, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(files) != 1 || files[0].Filename != summary.Filename {
		t.Fatalf("got %+v, want the created backup", files)
	}
	if files[0].Size == 0 {
		t.Error("backup file is empty")
	}
}

func TestRestoreReplacesLedger(t *testing.T) {
	child1 := testChild("c1", 7, model.GenderMale, true)
	child2 := testChild("c2", 9, model.GenderFemale, true)
	childRepo := newMockChildRepo(child1, child2)
	donationRepo := newMockDonationRepo(
		testDonation("dn1", "c1", "A", "d1", model.DonationTypeGift, nil, nil),
		testDonation("dn2", "c2", "B", "d1", model.DonationTypeCash, float64Ptr(8), nil),
	)
	repo := newTestRepo(childRepo, newMockDepartmentRepo(testDepartment("d1", "Sales")), donationRepo, nil, nil)
	svc := newBackupServiceForTest(t, repo)

	summary, err := svc.Create(context.Background())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// the ledger diverges after the snapshot
	extra := testDonation("dn3", "c9", "C", "d1", model.DonationTypeGift, nil, nil)
	if err := donationRepo.Create(context.Background(), extra); err != nil {
		t.Fatalf("seed extra donation: %v", err)
	}

	result, err := svc.Restore(context.Background(), summary.Filename)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if result.Deleted != 3 {
		t.Errorf("got %d deleted, want 3", result.Deleted)
	}
	if result.Restored != 2 || result.Skipped != 0 {
		t.Errorf("got restored %d skipped %d, want 2/0", result.Restored, result.Skipped)
	}

	count, _ := donationRepo.Count(context.Background())
	if count != 2 {
		t.Fatalf("ledger holds %d rows, want 2", count)
	}

	// restored children are back out of the selection pool
	c1, _ := childRepo.GetByID(context.Background(), "c1")
	if !c1.Assigned {
		t.Error("restored child c1 is not marked assigned")
	}
}

func TestRestoreSkipsOrphanedRows(t *testing.T) {
	childRepo := newMockChildRepo(testChild("c1", 7, model.GenderMale, true))
	donationRepo := newMockDonationRepo(
		testDonation("dn1", "c1", "A", "d1", model.DonationTypeGift, nil, nil),
		// child c-gone no longer exists
		testDonation("dn2", "c-gone", "B", "d1", model.DonationTypeCash, float64Ptr(8), nil),
	)
	repo := newTestRepo(childRepo, newMockDepartmentRepo(testDepartment("d1", "Sales")), donationRepo, nil, nil)
	svc := newBackupServiceForTest(t, repo)

	summary, err := svc.Create(context.Background())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	result, err := svc.Restore(context.Background(), summary.Filename)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if result.Restored != 1 || result.Skipped != 1 {
		t.Fatalf("got restored %d skipped %d, want 1/1", result.Restored, result.Skipped)
	}
}

func TestRestoreUnknownFile(t *testing.T) {
	repo := newTestRepo(nil, nil, newMockDonationRepo(), nil, nil)
	svc := newBackupServiceForTest(t, repo)

	_, err := svc.Restore(context.Background(), "donations-backup-2026-01-01T00-00-00Z.json")
	if !errors.Is(err, ErrBackupNotFound) {
		t.Fatalf("got %v, want ErrBackupNotFound", err)
	}
}

func TestRestoreRejectsGarbage(t *testing.T) {
	repo := newTestRepo(nil, nil, newMockDonationRepo(), nil, nil)

	cfg := &config.Config{
		Backup: config.BackupConfig{Dir: t.TempDir(), RetentionDays: 30},
	}
	store, err := backup.NewStore(&cfg.Backup, zap.NewNop())
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	svc := NewBackupService(cfg, repo, store, zap.NewNop())

	filename := "donations-backup-2026-01-01T00-00-00Z.json"
	if err := store.Put(filename, []byte("not json at all")); err != nil {
		t.Fatalf("seed garbage file: %v", err)
	}

	_, err = svc.Restore(context.Background(), filename)
	if !errors.Is(err, ErrBackupInvalid) {
		t.Fatalf("got %v, want ErrBackupInvalid", err)
	}
}
