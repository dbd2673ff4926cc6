package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/junksamiad/xmas-donation-app/internal/dto"
	"github.com/junksamiad/xmas-donation-app/internal/service"
	"github.com/junksamiad/xmas-donation-app/pkg/response"
)

// DonationHandler donation module HTTP handlers.
type DonationHandler struct {
	donationSvc service.DonationService
}

// NewDonationHandler creates a DonationHandler.
func NewDonationHandler(donationSvc service.DonationService) *DonationHandler {
	return &DonationHandler{donationSvc: donationSvc}
}

// Create records a public pledge.
// POST /api/v1/donations
func (h *DonationHandler) Create(c *gin.Context) {
	var req dto.CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid donation details")
		return
	}

	donation, err := h.donationSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleDonationError(c, err)
		return
	}

	response.Created(c, donation)
}

// List pages the admin ledger.
// GET /api/v1/donations?page=&page_size=&type=
func (h *DonationHandler) List(c *gin.Context) {
	var req dto.DonationListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid list parameters")
		return
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 20
	}

	rows, total, err := h.donationSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, rows, total, req.Page, req.PageSize)
}

// UpdateAmount corrects a cash donation's amount.
// PUT /api/v1/donations/:id/amount
func (h *DonationHandler) UpdateAmount(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "donation id is required")
		return
	}

	var req dto.UpdateDonationAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid amount")
		return
	}

	donation, err := h.donationSvc.UpdateAmount(c.Request.Context(), id, req.Amount)
	if err != nil {
		h.handleDonationError(c, err)
		return
	}

	response.OK(c, donation)
}

// Latest feeds the public ticker banner.
// GET /api/v1/donations/latest
func (h *DonationHandler) Latest(c *gin.Context) {
	latest, err := h.donationSvc.Latest(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	// nil data on an empty ledger, still a success
	response.OK(c, latest)
}

// Totals returns headline ledger figures.
// GET /api/v1/stats/totals
func (h *DonationHandler) Totals(c *gin.Context) {
	totals, err := h.donationSvc.Totals(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, totals)
}

// handleDonationError maps donation module errors to responses.
func (h *DonationHandler) handleDonationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrChildAlreadyAssigned):
		response.Conflict(c, 14001, "this child has already been chosen by another donor")
	case errors.Is(err, service.ErrChildNotFound):
		response.NotFound(c, 14002, "the selected child could not be found")
	case errors.Is(err, service.ErrDepartmentNotFound):
		response.NotFound(c, 14003, "the selected department could not be found")
	case errors.Is(err, service.ErrDonationNotFound):
		response.NotFound(c, 14004, "donation not found")
	case errors.Is(err, service.ErrCashAmountRequired):
		response.BadRequest(c, 14005, "cash donations must include an amount")
	case errors.Is(err, service.ErrGiftAmountNotAllowed):
		response.BadRequest(c, 14006, "gift donations must not include an amount")
	case errors.Is(err, service.ErrAmountNotPositive):
		response.BadRequest(c, 14007, "donation amount must be greater than zero")
	case errors.Is(err, service.ErrAmountBelowMinimum):
		response.BadRequest(c, 14008, "donation amount is below the £5 minimum")
	case errors.Is(err, service.ErrNotCashDonation):
		response.BadRequest(c, 14009, "only cash donations carry an amount")
	default:
		response.InternalError(c)
	}
}
