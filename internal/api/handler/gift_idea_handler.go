package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/junksamiad/xmas-donation-app/internal/dto"
	"github.com/junksamiad/xmas-donation-app/internal/service"
	"github.com/junksamiad/xmas-donation-app/pkg/response"
)

// GiftIdeaHandler gift suggestion HTTP handlers.
type GiftIdeaHandler struct {
	giftIdeaSvc service.GiftIdeaService
}

// NewGiftIdeaHandler creates a GiftIdeaHandler.
func NewGiftIdeaHandler(giftIdeaSvc service.GiftIdeaService) *GiftIdeaHandler {
	return &GiftIdeaHandler{giftIdeaSvc: giftIdeaSvc}
}

// Find suggests gifts for a child's age and gender.
// GET /api/v1/gift-ideas?age=&gender=&category=
func (h *GiftIdeaHandler) Find(c *gin.Context) {
	var req dto.GiftIdeaQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "age and gender are required")
		return
	}

	ideas, err := h.giftIdeaSvc.Find(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, ideas)
}
