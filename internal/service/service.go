package service

import (
	"go.uber.org/zap"

	"github.com/junksamiad/xmas-donation-app/config"
	"github.com/junksamiad/xmas-donation-app/internal/repository"
	"github.com/junksamiad/xmas-donation-app/pkg/backup"
	"github.com/junksamiad/xmas-donation-app/pkg/jwt"
	"github.com/junksamiad/xmas-donation-app/pkg/redis"
)

// Service aggregates all business services.
type Service struct {
	Auth       AuthService
	Child      ChildService
	Donation   DonationService
	Department DepartmentService
	GiftIdea   GiftIdeaService
	Stats      StatsService
	Export     ExportService
	Backup     BackupService
}

// NewService wires the service aggregate.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	store *backup.Store,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Child:      NewChildService(repo, logger),
		Donation:   NewDonationService(cfg, repo, logger),
		Department: NewDepartmentService(repo, logger),
		GiftIdea:   NewGiftIdeaService(repo, logger),
		Stats:      NewStatsService(repo, logger),
		Export:     NewExportService(repo, logger),
		Backup:     NewBackupService(cfg, repo, store, logger),
	}
}
