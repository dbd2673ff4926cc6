package dto

// ── donation module DTOs ──

// CreateDonationRequest is the public pledge submission.
type CreateDonationRequest struct {
	ChildID      string   `json:"child_id"      binding:"required,uuid"`
	DonorName    string   `json:"donor_name"    binding:"required,min=1,max=100"`
	DonorEmail   *string  `json:"donor_email"   binding:"omitempty,email"`
	DepartmentID string   `json:"department_id" binding:"required,uuid"`
	DonationType string   `json:"donation_type" binding:"required,oneof=gift cash"`
	Amount       *float64 `json:"amount"`
}

// UpdateDonationAmountRequest is the admin cash-amount correction.
type UpdateDonationAmountRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// DonationListRequest pages the admin ledger.
type DonationListRequest struct {
	Page     int    `form:"page"      binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Type     string `form:"type"      binding:"omitempty,oneof=gift cash"`
}

// DonationResponse is the created-pledge view.
type DonationResponse struct {
	ID             string   `json:"id"`
	ChildID        string   `json:"child_id"`
	ChildName      string   `json:"child_name"`
	DonorName      string   `json:"donor_name"`
	DonorEmail     *string  `json:"donor_email,omitempty"`
	DepartmentID   string   `json:"department_id"`
	DepartmentName string   `json:"department_name"`
	DonationType   string   `json:"donation_type"`
	Amount         *float64 `json:"amount,omitempty"`
	CreatedAt      string   `json:"created_at"`
}

// DonationRowResponse is one admin-ledger row with child details joined.
type DonationRowResponse struct {
	ID             string   `json:"id"`
	ChildName      string   `json:"child_name"`
	DonorName      string   `json:"donor_name"`
	DonorEmail     *string  `json:"donor_email,omitempty"`
	DepartmentName string   `json:"department_name"`
	DonationType   string   `json:"donation_type"`
	Amount         *float64 `json:"amount,omitempty"`
	ChildAge       int      `json:"child_age"`
	ChildGender    string   `json:"child_gender"`
	GiftIdeas      string   `json:"gift_ideas"`
	CreatedAt      string   `json:"created_at"`
}

// LatestDonationResponse feeds the public ticker banner.
type LatestDonationResponse struct {
	DonorName      string   `json:"donor_name"`
	DepartmentName string   `json:"department_name"`
	DonationType   string   `json:"donation_type"`
	Amount         *float64 `json:"amount,omitempty"`
	CreatedAt      string   `json:"created_at"`
	MinutesAgo     int      `json:"minutes_ago"`
}

// DonationTotalsResponse headline ledger totals.
type DonationTotalsResponse struct {
	TotalDonations     int64   `json:"total_donations"`
	TotalGiftDonations int64   `json:"total_gift_donations"`
	TotalCashDonations int64   `json:"total_cash_donations"`
	TotalCashAmount    float64 `json:"total_cash_amount"`
}
