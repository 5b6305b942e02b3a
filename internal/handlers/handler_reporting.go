package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hecate-codex/asset_mgmt_app/internal/core/ports/services"
	"github.com/hecate-codex/asset_mgmt_app/internal/middleware"
)

// reportingHandler handles HTTP requests for aggregate reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(reportingService portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: reportingService,
	}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/depreciation", h.getDepreciationReport)
		reports.GET("/asset-status", h.getAssetStatusReport)
	}
}

// getDepreciationReport godoc
// @Summary Get the fleet depreciation report
// @Description Retrieves the per-asset depreciation summary with fleet-wide totals
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.DepreciationReportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build depreciation report"
// @Security BearerAuth
// @Router /reports/depreciation [get]
func (h *reportingHandler) getDepreciationReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.GetDepreciationReport(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build depreciation report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build depreciation report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// getAssetStatusReport godoc
// @Summary Get asset counts by status
// @Description Retrieves the number of assets in each lifecycle status
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.AssetStatusReportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build asset status report"
// @Security BearerAuth
// @Router /reports/asset-status [get]
func (h *reportingHandler) getAssetStatusReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reportingService.GetAssetStatusReport(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build asset status report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build asset status report"})
		return
	}

	c.JSON(http.StatusOK, report)
}
