package dto

// ── child module DTOs ──

// ChildSearchRequest filters the random selection. Both fields are
// independently optional; an absent field means no constraint.
type ChildSearchRequest struct {
	Gender string `form:"gender" binding:"omitempty,oneof=male female"`
	Age    *int   `form:"age"    binding:"omitempty,min=1,max=16"`
}

// ChildResponse is the public view of a selected child.
type ChildResponse struct {
	ID        string `json:"id"`
	Recipient string `json:"recipient"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	GiftIdeas string `json:"gift_ideas"`
}

// ChildrenProgressResponse assigned vs total children.
type ChildrenProgressResponse struct {
	Assigned   int64 `json:"assigned"`
	Total      int64 `json:"total"`
	Percentage int   `json:"percentage"`
}
