package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/junksamiad/xmas-donation-app/internal/dto"
	"github.com/junksamiad/xmas-donation-app/internal/service"
	"github.com/junksamiad/xmas-donation-app/pkg/response"
)

// DepartmentHandler department module HTTP handlers.
type DepartmentHandler struct {
	deptSvc service.DepartmentService
}

// NewDepartmentHandler creates a DepartmentHandler.
func NewDepartmentHandler(deptSvc service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{deptSvc: deptSvc}
}

// List returns departments for the pledge form dropdown.
// GET /api/v1/departments?include_inactive=
func (h *DepartmentHandler) List(c *gin.Context) {
	var req dto.DepartmentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "invalid list parameters")
		return
	}

	depts, err := h.deptSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": depts})
}

// Create adds a department.
// POST /api/v1/departments
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "department name is required")
		return
	}

	dept, err := h.deptSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleDepartmentError(c, err)
		return
	}

	response.Created(c, dept)
}

// Deactivate soft-deletes a department.
// DELETE /api/v1/departments/:id
func (h *DepartmentHandler) Deactivate(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "department id is required")
		return
	}

	if err := h.deptSvc.SetActive(c.Request.Context(), id, false); err != nil {
		h.handleDepartmentError(c, err)
		return
	}

	response.OK(c, nil)
}

// Reinstate reactivates a soft-deleted department.
// PUT /api/v1/departments/:id/reinstate
func (h *DepartmentHandler) Reinstate(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "department id is required")
		return
	}

	if err := h.deptSvc.SetActive(c.Request.Context(), id, true); err != nil {
		h.handleDepartmentError(c, err)
		return
	}

	response.OK(c, nil)
}

// Stats returns per-department donation breakdowns.
// GET /api/v1/stats/departments
func (h *DepartmentHandler) Stats(c *gin.Context) {
	stats, err := h.deptSvc.Stats(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": stats})
}

// Top returns the department leaderboard.
// GET /api/v1/stats/departments/top
func (h *DepartmentHandler) Top(c *gin.Context) {
	top, err := h.deptSvc.TopByDonationCount(c.Request.Context(), 0)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": top})
}

// handleDepartmentError maps department module errors to responses.
func (h *DepartmentHandler) handleDepartmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDepartmentNotFound):
		response.NotFound(c, 13001, "the selected department could not be found")
	case errors.Is(err, service.ErrDepartmentNameExists):
		response.BadRequest(c, 13002, "a department with that name already exists")
	default:
		response.InternalError(c)
	}
}
