package handler

import (
	"github.com/junksamiad/xmas-donation-app/config"
	"github.com/junksamiad/xmas-donation-app/internal/service"
)

// Handler aggregates all HTTP handlers.
type Handler struct {
	Auth       *AuthHandler
	Child      *ChildHandler
	Donation   *DonationHandler
	Department *DepartmentHandler
	GiftIdea   *GiftIdeaHandler
	Stats      *StatsHandler
	Export     *ExportHandler
	Backup     *BackupHandler
}

// NewHandler creates the handler aggregate.
func NewHandler(cfg *config.Config, svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Child:      NewChildHandler(svc.Child),
		Donation:   NewDonationHandler(svc.Donation),
		Department: NewDepartmentHandler(svc.Department),
		GiftIdea:   NewGiftIdeaHandler(svc.GiftIdea),
		Stats:      NewStatsHandler(svc.Stats),
		Export:     NewExportHandler(svc.Export),
		Backup:     NewBackupHandler(cfg, svc.Backup),
	}
}
