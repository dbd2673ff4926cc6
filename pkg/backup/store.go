package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/junksamiad/xmas-donation-app/config"
)

const (
	filePrefix = "donations-backup-"
	fileSuffix = ".json"
)

// FileInfo describes one stored backup.
type FileInfo struct {
	Filename   string    `json:"filename"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Store is a filesystem blob store for donation-ledger backups.
// Files are named donations-backup-<timestamp>.json.
type Store struct {
	dir       string
	retention time.Duration
	logger    *zap.Logger
}

// NewStore creates the backup directory if needed.
func NewStore(cfg *config.BackupConfig, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create backup directory: %w", err)
	}

	retentionDays := cfg.RetentionDays
	if retentionDays <= 0 {
		retentionDays = 30
	}

	return &Store{
		dir:       cfg.Dir,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		logger:    logger,
	}, nil
}

// NewFilename generates a timestamped backup filename.
func NewFilename(now time.Time) string {
	// 2026-01-02T15-04-05Z: colons are not filename-safe
	stamp := strings.ReplaceAll(now.UTC().Format("2006-01-02T15:04:05Z"), ":", "-")
	return filePrefix + stamp + fileSuffix
}

// Put writes a backup blob.
func (s *Store) Put(filename string, data []byte) error {
	if !validFilename(filename) {
		return fmt.Errorf("invalid backup filename: %q", filename)
	}
	return os.WriteFile(filepath.Join(s.dir, filename), data, 0o644)
}

// Get reads a backup blob.
func (s *Store) Get(filename string) ([]byte, error) {
	if !validFilename(filename) {
		return nil, fmt.Errorf("invalid backup filename: %q", filename)
	}
	return os.ReadFile(filepath.Join(s.dir, filename))
}

// Exists reports whether a backup file is present.
func (s *Store) Exists(filename string) bool {
	if !validFilename(filename) {
		return false
	}
	_, err := os.Stat(filepath.Join(s.dir, filename))
	return err == nil
}

// List returns all backups, newest first.
func (s *Store) List() ([]FileInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read backup directory: %w", err)
	}

	infos := make([]FileInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !validFilename(e.Name()) {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		infos = append(infos, FileInfo{
			Filename:   e.Name(),
			Size:       fi.Size(),
			UploadedAt: fi.ModTime(),
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].UploadedAt.After(infos[j].UploadedAt)
	})

	return infos, nil
}

// Prune deletes backups older than the retention window.
// Returns the number of files removed.
func (s *Store) Prune(now time.Time) (int, error) {
	infos, err := s.List()
	if err != nil {
		return 0, err
	}

	cutoff := now.Add(-s.retention)
	deleted := 0
	for _, info := range infos {
		if info.UploadedAt.Before(cutoff) {
			if err := os.Remove(filepath.Join(s.dir, info.Filename)); err != nil {
				s.logger.Warn("failed to prune old backup",
					zap.String("filename", info.Filename), zap.Error(err))
				continue
			}
			deleted++
		}
	}

	return deleted, nil
}

// validFilename accepts only our own naming scheme; rejects path traversal.
func validFilename(name string) bool {
	return strings.HasPrefix(name, filePrefix) &&
		strings.HasSuffix(name, fileSuffix) &&
		!strings.ContainsAny(name, "/\\")
}
