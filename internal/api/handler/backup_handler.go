package handler

import (
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/junksamiad/xmas-donation-app/config"
	"github.com/junksamiad/xmas-donation-app/internal/service"
	"github.com/junksamiad/xmas-donation-app/pkg/response"
)

// BackupHandler ledger backup HTTP handlers.
type BackupHandler struct {
	cfg       *config.Config
	backupSvc service.BackupService
}

// NewBackupHandler creates a BackupHandler.
func NewBackupHandler(cfg *config.Config, backupSvc service.BackupService) *BackupHandler {
	return &BackupHandler{cfg: cfg, backupSvc: backupSvc}
}

// List returns stored backups, newest first.
// GET /api/v1/backups
func (h *BackupHandler) List(c *gin.Context) {
	files, err := h.backupSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": files})
}

// Create snapshots the ledger now.
// POST /api/v1/backups
func (h *BackupHandler) Create(c *gin.Context) {
	summary, err := h.backupSvc.Create(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, summary)
}

// Restore replaces the ledger with a named backup.
// POST /api/v1/backups/:filename/restore
func (h *BackupHandler) Restore(c *gin.Context) {
	filename := c.Param("filename")
	if filename == "" {
		response.BadRequest(c, 10001, "backup filename is required")
		return
	}

	result, err := h.backupSvc.Restore(c.Request.Context(), filename)
	if err != nil {
		h.handleBackupError(c, err)
		return
	}

	response.OK(c, result)
}

// Cron runs a scheduled backup. Authenticated by a shared secret rather
// than an admin session, so an external scheduler can call it.
// POST /api/cron/backup
func (h *BackupHandler) Cron(c *gin.Context) {
	secret := h.cfg.Backup.CronSecret
	if secret == "" {
		response.NotFound(c, 17001, "scheduled backups are not configured")
		return
	}

	authHeader := c.GetHeader("Authorization")
	token, hasPrefix := strings.CutPrefix(authHeader, "Bearer ")
	if !hasPrefix || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
		response.Unauthorized(c, 10002, "invalid cron secret")
		return
	}

	summary, err := h.backupSvc.Create(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, summary)
}

func (h *BackupHandler) handleBackupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBackupNotFound):
		response.NotFound(c, 17002, "the requested backup file could not be found")
	case errors.Is(err, service.ErrBackupInvalid):
		response.BadRequest(c, 17003, "the backup file is not a valid donations backup")
	default:
		response.InternalError(c)
	}
}
