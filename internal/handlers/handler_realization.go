package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/rab_realization_app/internal/core/ports/services"
	"github.com/SscSPs/rab_realization_app/internal/dto"
	"github.com/SscSPs/rab_realization_app/internal/middleware"
)

// realizationHandler handles HTTP requests related to RAB realizations.
type realizationHandler struct {
	realizationService portssvc.RealizationSvcFacade
}

// newRealizationHandler creates a new realizationHandler.
func newRealizationHandler(realizationService portssvc.RealizationSvcFacade) *realizationHandler {
	return &realizationHandler{
		realizationService: realizationService,
	}
}

// createRealization godoc
// @Summary Record a realization
// @Description Creates a draft realization. Total, budget snapshot and variance are derived server side.
// @Tags realizations
// @Accept  json
// @Produce  json
// @Param   realization body dto.CreateRealizationRequest true "Realization details"
// @Success 201 {object} dto.RealizationResponse
// @Failure 400 {object} map[string]string "Invalid request format or values"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Store temporarily unavailable"
// @Failure 500 {object} map[string]string "Failed to create realization"
// @Security BearerAuth
// @Router /realizations [post]
func (h *realizationHandler) createRealization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateRealizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for CreateRealization", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("creator_user_id", creatorUserID))

	realization, err := h.realizationService.CreateRealization(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err, "Failed to create realization")
		return
	}

	logger.Info("Realization created successfully", slog.String("realization_id", realization.RealizationID))
	c.JSON(http.StatusCreated, dto.ToRealizationResponse(realization))
}

// getRealization godoc
// @Summary Get a realization
// @Tags realizations
// @Produce  json
// @Param   realizationID path string true "Realization ID"
// @Success 200 {object} dto.RealizationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Realization not found"
// @Failure 500 {object} map[string]string "Failed to retrieve realization"
// @Security BearerAuth
// @Router /realizations/{realizationID} [get]
func (h *realizationHandler) getRealization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	realizationID := c.Param("realizationID")

	realization, err := h.realizationService.GetRealization(c.Request.Context(), realizationID)
	if err != nil {
		respondError(c, logger.With(slog.String("realization_id", realizationID)), err, "Failed to retrieve realization")
		return
	}

	c.JSON(http.StatusOK, dto.ToRealizationResponse(realization))
}

// updateRealization godoc
// @Summary Update a realization
// @Description Edits a draft or rejected realization. A rejected realization returns to draft.
// @Tags realizations
// @Accept  json
// @Produce  json
// @Param   realizationID path string true "Realization ID"
// @Param   realization body dto.UpdateRealizationRequest true "Fields to update"
// @Success 200 {object} dto.RealizationResponse
// @Failure 400 {object} map[string]string "Invalid request format or values"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Realization not found"
// @Failure 409 {object} map[string]string "Realization is not editable"
// @Failure 500 {object} map[string]string "Failed to update realization"
// @Security BearerAuth
// @Router /realizations/{realizationID} [put]
func (h *realizationHandler) updateRealization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	realizationID := c.Param("realizationID")

	var req dto.UpdateRealizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for UpdateRealization", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID), slog.String("realization_id", realizationID))

	realization, err := h.realizationService.UpdateRealization(c.Request.Context(), realizationID, req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to update realization")
		return
	}

	logger.Info("Realization updated successfully")
	c.JSON(http.StatusOK, dto.ToRealizationResponse(realization))
}

// deleteRealization godoc
// @Summary Delete a realization
// @Description Soft-deletes a draft or rejected realization together with its documents.
// @Tags realizations
// @Param   realizationID path string true "Realization ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Realization not found"
// @Failure 409 {object} map[string]string "Realization cannot be deleted in its status"
// @Failure 500 {object} map[string]string "Failed to delete realization"
// @Security BearerAuth
// @Router /realizations/{realizationID} [delete]
func (h *realizationHandler) deleteRealization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	realizationID := c.Param("realizationID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("user_id", userID), slog.String("realization_id", realizationID))

	if err := h.realizationService.DeleteRealization(c.Request.Context(), realizationID, userID); err != nil {
		respondError(c, logger, err, "Failed to delete realization")
		return
	}

	logger.Info("Realization deleted successfully")
	c.Status(http.StatusNoContent)
}

// listProjectRealizations godoc
// @Summary List realizations of a project
// @Description Newest transaction first, cursor paginated.
// @Tags realizations
// @Produce  json
// @Param   projectID path string true "Project ID"
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   nextToken query string false "Cursor from the previous page"
// @Param   status query string false "Filter by status" Enums(draft, pending_review, approved, rejected)
// @Success 200 {object} dto.ListRealizationsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list realizations"
// @Security BearerAuth
// @Router /projects/{projectID}/realizations [get]
func (h *realizationHandler) listProjectRealizations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("projectID")

	var params dto.ListRealizationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid query parameters for ListRealizationsByProject", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	page, err := h.realizationService.ListRealizationsByProject(c.Request.Context(), projectID, params)
	if err != nil {
		respondError(c, logger.With(slog.String("project_id", projectID)), err, "Failed to list realizations")
		return
	}

	c.JSON(http.StatusOK, page)
}

// listRabItemRealizations godoc
// @Summary List realizations of a RAB item
// @Description Newest transaction first, cursor paginated.
// @Tags realizations
// @Produce  json
// @Param   rabItemID path string true "RAB item ID"
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   nextToken query string false "Cursor from the previous page"
// @Param   status query string false "Filter by status" Enums(draft, pending_review, approved, rejected)
// @Success 200 {object} dto.ListRealizationsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list realizations"
// @Security BearerAuth
// @Router /rab-items/{rabItemID}/realizations [get]
func (h *realizationHandler) listRabItemRealizations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rabItemID := c.Param("rabItemID")

	var params dto.ListRealizationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Invalid query parameters for ListRealizationsByRabItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	page, err := h.realizationService.ListRealizationsByRabItem(c.Request.Context(), rabItemID, params)
	if err != nil {
		respondError(c, logger.With(slog.String("rab_item_id", rabItemID)), err, "Failed to list realizations")
		return
	}

	c.JSON(http.StatusOK, page)
}

func registerRealizationRoutes(group *gin.RouterGroup, realizationService portssvc.RealizationSvcFacade) {
	h := newRealizationHandler(realizationService)

	realizations := group.Group("/realizations")
	{
		realizations.POST("", h.createRealization)
		realizations.GET("/:realizationID", h.getRealization)
		realizations.PUT("/:realizationID", h.updateRealization)
		realizations.DELETE("/:realizationID", h.deleteRealization)
	}

	group.GET("/projects/:projectID/realizations", h.listProjectRealizations)
	group.GET("/rab-items/:rabItemID/realizations", h.listRabItemRealizations)
}
