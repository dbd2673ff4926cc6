package dto

// ── department module DTOs ──

// DepartmentListRequest list query parameters.
type DepartmentListRequest struct {
	IncludeInactive bool `form:"include_inactive"`
}

// CreateDepartmentRequest admin department creation.
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// DepartmentResponse basic department view.
type DepartmentResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// DepartmentStatsResponse per-department donation breakdown.
type DepartmentStatsResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	GiftDonations   int64   `json:"gift_donations"`
	CashDonations   int64   `json:"cash_donations"`
	TotalCashAmount float64 `json:"total_cash_amount"`
}

// TopDepartmentResponse one leaderboard entry.
type TopDepartmentResponse struct {
	Name            string  `json:"name"`
	TotalDonations  int64   `json:"total_donations"`
	TotalCashAmount float64 `json:"total_cash_amount"`
}
