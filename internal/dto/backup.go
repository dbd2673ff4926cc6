package dto

// ── backup module DTOs ──

// BackupFileResponse one stored backup file.
type BackupFileResponse struct {
	Filename   string `json:"filename"`
	Size       int64  `json:"size"`
	UploadedAt string `json:"uploaded_at"`
}

// BackupSummaryResponse result of creating a backup.
type BackupSummaryResponse struct {
	Filename        string  `json:"filename"`
	TotalDonations  int     `json:"total_donations"`
	GiftDonations   int     `json:"gift_donations"`
	CashDonations   int     `json:"cash_donations"`
	TotalCashAmount float64 `json:"total_cash_amount"`
	PrunedBackups   int     `json:"pruned_backups"`
	RetentionDays   int     `json:"retention_days"`
}

// RestoreResultResponse result of restoring from a backup.
type RestoreResultResponse struct {
	Filename string `json:"filename"`
	Deleted  int64  `json:"deleted"`
	Restored int    `json:"restored"`
	Skipped  int    `json:"skipped"`
}
