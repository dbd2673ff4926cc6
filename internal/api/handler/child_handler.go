package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/junksamiad/xmas-donation-app/internal/dto"
	"github.com/junksamiad/xmas-donation-app/internal/service"
	"github.com/junksamiad/xmas-donation-app/pkg/response"
)

// ChildHandler child selection HTTP handlers.
type ChildHandler struct {
	childSvc service.ChildService
}

// NewChildHandler creates a ChildHandler.
func NewChildHandler(childSvc service.ChildService) *ChildHandler {
	return &ChildHandler{childSvc: childSvc}
}

// PickRandom selects a random unassigned child.
// GET /api/v1/children/random?gender=&age=
func (h *ChildHandler) PickRandom(c *gin.Context) {
	var req dto.ChildSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid search parameters")
		return
	}

	child, err := h.childSvc.PickRandom(c.Request.Context(), &req)
	if err != nil {
		h.handleChildError(c, err)
		return
	}

	response.OK(c, child)
}

// Search selects a random child matching at least one criterion.
// GET /api/v1/children/search?gender=&age=
func (h *ChildHandler) Search(c *gin.Context) {
	var req dto.ChildSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid search parameters")
		return
	}

	child, err := h.childSvc.Search(c.Request.Context(), &req)
	if err != nil {
		h.handleChildError(c, err)
		return
	}

	response.OK(c, child)
}

// Progress reports how many children already have a donation.
// GET /api/v1/children/progress
func (h *ChildHandler) Progress(c *gin.Context) {
	progress, err := h.childSvc.Progress(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, progress)
}

// handleChildError maps child module errors to responses.
func (h *ChildHandler) handleChildError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNoChildAvailable):
		response.NotFound(c, 12001, "no children match the selected criteria")
	case errors.Is(err, service.ErrChildNotFound):
		response.NotFound(c, 12002, "the selected child could not be found")
	case errors.Is(err, service.ErrSearchCriteriaRequired):
		response.BadRequest(c, 12003, "please choose a gender or an age to search")
	default:
		response.InternalError(c)
	}
}
