package dto

// ── gift-idea module DTOs ──

// GiftIdeaQueryRequest suggestion lookup parameters.
type GiftIdeaQueryRequest struct {
	Age      int    `form:"age"      binding:"required,min=1,max=16"`
	Gender   string `form:"gender"   binding:"required,oneof=male female"`
	Category string `form:"category" binding:"omitempty,max=50"`
}

// GiftIdeaListResponse suggestion lookup result.
type GiftIdeaListResponse struct {
	Ideas []string `json:"ideas"`
}
