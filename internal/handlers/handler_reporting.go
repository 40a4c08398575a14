package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/rab_realization_app/internal/core/ports/services"
	"github.com/SscSPs/rab_realization_app/internal/middleware"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// reportingHandler serves realization summaries and exports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
	exportService    portssvc.ExportSvc
}

func newReportingHandler(reportingService portssvc.ReportingSvc, exportService portssvc.ExportSvc) *reportingHandler {
	return &reportingHandler{
		reportingService: reportingService,
		exportService:    exportService,
	}
}

// rabItemSummary godoc
// @Summary Summarize the realizations of a RAB item
// @Description Counts, totals and weighted variance over live, non-rejected realizations.
// @Tags reports
// @Produce  json
// @Param   rabItemID path string true "RAB item ID"
// @Success 200 {object} domain.RabItemSummary
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "RAB item not found"
// @Failure 500 {object} map[string]string "Failed to summarize RAB item"
// @Security BearerAuth
// @Router /rab-items/{rabItemID}/realizations/summary [get]
func (h *reportingHandler) rabItemSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rabItemID := c.Param("rabItemID")

	summary, err := h.reportingService.SummarizeByRabItem(c.Request.Context(), rabItemID)
	if err != nil {
		respondError(c, logger.With(slog.String("rab_item_id", rabItemID)), err, "Failed to summarize RAB item")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// projectSummary godoc
// @Summary Summarize the realizations of a project
// @Description One summary per RAB item plus project totals.
// @Tags reports
// @Produce  json
// @Param   projectID path string true "Project ID"
// @Success 200 {object} domain.ProjectSummary
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to summarize project"
// @Security BearerAuth
// @Router /projects/{projectID}/realizations/summary [get]
func (h *reportingHandler) projectSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	summary, err := h.reportingService.SummarizeByProject(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, logger.With(slog.String("project_id", projectID)), err, "Failed to summarize project")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// exportProject godoc
// @Summary Export a project's realizations as XLSX
// @Tags reports
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   projectID path string true "Project ID"
// @Success 200 {file} file "XLSX workbook"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to export realizations"
// @Security BearerAuth
// @Router /projects/{projectID}/realizations/export [get]
func (h *reportingHandler) exportProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")
	logger = logger.With(slog.String("project_id", projectID))

	data, err := h.exportService.ExportProjectRealizationsXLSX(c.Request.Context(), projectID)
	if err != nil {
		respondError(c, logger, err, "Failed to export realizations")
		return
	}

	logger.Info("Project realizations exported", slog.Int("size_bytes", len(data)))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="realizations-%s.xlsx"`, projectID))
	c.Data(http.StatusOK, xlsxContentType, data)
}

func registerReportingRoutes(group *gin.RouterGroup, reportingService portssvc.ReportingSvc, exportService portssvc.ExportSvc) {
	h := newReportingHandler(reportingService, exportService)

	group.GET("/rab-items/:rabItemID/realizations/summary", h.rabItemSummary)
	group.GET("/projects/:projectID/realizations/summary", h.projectSummary)
	group.GET("/projects/:projectID/realizations/export", h.exportProject)
}
