package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hmjf-dev/hmjf-cms-api/internal/service"
	"github.com/hmjf-dev/hmjf-cms-api/pkg/response"
)

// ExportHandler serves roster downloads.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler constructs an export handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// Members godoc
// @Summary Export the member roster
// @Tags Exports
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Router /exports/members [get]
func (h *ExportHandler) Members(c *gin.Context) {
	format := c.DefaultQuery("format", service.ExportFormatCSV)
	payload, contentType, err := h.service.ExportMembers(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	serveDownload(c, "members", format, contentType, payload)
}

// Events godoc
// @Summary Export the event list
// @Tags Exports
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Router /exports/events [get]
func (h *ExportHandler) Events(c *gin.Context) {
	format := c.DefaultQuery("format", service.ExportFormatCSV)
	payload, contentType, err := h.service.ExportEvents(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	serveDownload(c, "events", format, contentType, payload)
}

func serveDownload(c *gin.Context, name, format, contentType string, payload []byte) {
	filename := fmt.Sprintf("%s-%s.%s", name, time.Now().Format(time.DateOnly), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, contentType, payload)
}
