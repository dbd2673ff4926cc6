package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/junksamiad/xmas-donation-app/internal/service"
	"github.com/junksamiad/xmas-donation-app/pkg/response"
)

// exportContentTypes maps export formats to download MIME types.
var exportContentTypes = map[string]string{
	service.ExportFormatCSV:  "text/csv; charset=utf-8",
	service.ExportFormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// ExportHandler ledger download HTTP handlers.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// Donations downloads the ledger as csv or xlsx.
// GET /api/v1/export/donations?type=&format=
func (h *ExportHandler) Donations(c *gin.Context) {
	donationType := c.Query("type")
	if donationType != "" && donationType != "gift" && donationType != "cash" {
		response.BadRequest(c, 10001, "type must be gift or cash")
		return
	}

	format := c.DefaultQuery("format", service.ExportFormatCSV)

	buf, filename, err := h.exportSvc.ExportDonations(c.Request.Context(), donationType, format)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	contentType := exportContentTypes[format]
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportNoDonations):
		response.NotFound(c, 16001, "there are no donations to export")
	case errors.Is(err, service.ErrExportUnsupportedFormat):
		response.BadRequest(c, 16002, "format must be csv or xlsx")
	default:
		response.InternalError(c)
	}
}
