package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/junksamiad/xmas-donation-app/internal/service"
	"github.com/junksamiad/xmas-donation-app/pkg/response"
)

// StatsHandler admin statistics HTTP handlers.
type StatsHandler struct {
	statsSvc service.StatsService
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(statsSvc service.StatsService) *StatsHandler {
	return &StatsHandler{statsSvc: statsSvc}
}

// GenderSplit returns donation counts by child gender.
// GET /api/v1/stats/gender-split
func (h *StatsHandler) GenderSplit(c *gin.Context) {
	split, err := h.statsSvc.GenderSplit(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, split)
}

// AgeGroups returns donation counts by exact child age.
// GET /api/v1/stats/age-groups
func (h *StatsHandler) AgeGroups(c *gin.Context) {
	groups, err := h.statsSvc.AgeGroupSplit(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": groups})
}

// TopDonors returns the cash-donor leaderboard.
// GET /api/v1/stats/top-donors
func (h *StatsHandler) TopDonors(c *gin.Context) {
	donors, err := h.statsSvc.TopDonorsByCash(c.Request.Context(), 0)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": donors})
}

// Underperforming flags the most under-represented demographic group.
// GET /api/v1/stats/underperforming
func (h *StatsHandler) Underperforming(c *gin.Context) {
	group, err := h.statsSvc.Underperforming(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	// null data when the spread is balanced
	response.OK(c, group)
}
