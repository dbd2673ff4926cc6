package dto

// ── statistics DTOs ──

// GenderSplitResponse donation counts by child gender.
type GenderSplitResponse struct {
	Male   int64 `json:"male"`
	Female int64 `json:"female"`
	Total  int64 `json:"total"`
}

// AgeGroupResponse one exact-age bucket of the age split.
type AgeGroupResponse struct {
	Age        int     `json:"age"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// TopDonorResponse one top-donors-by-cash entry.
type TopDonorResponse struct {
	DonorName       string  `json:"donor_name"`
	TotalCashAmount float64 `json:"total_cash_amount"`
	TotalDonations  int64   `json:"total_donations"`
	CashDonations   int64   `json:"cash_donations"`
}

// UnderperformingGroupResponse names a demographic group that is
// under-represented in the ledger. Absent entirely when the spread is
// balanced.
type UnderperformingGroupResponse struct {
	Group      string  `json:"group"`
	Percentage float64 `json:"percentage"`
	Message    string  `json:"message"`
}
