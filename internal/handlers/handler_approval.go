package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/rab_realization_app/internal/core/domain"
	portssvc "github.com/SscSPs/rab_realization_app/internal/core/ports/services"
	"github.com/SscSPs/rab_realization_app/internal/dto"
	"github.com/SscSPs/rab_realization_app/internal/middleware"
)

// approvalHandler exposes the realization approval workflow.
type approvalHandler struct {
	approvalService portssvc.ApprovalSvc
}

func newApprovalHandler(approvalService portssvc.ApprovalSvc) *approvalHandler {
	return &approvalHandler{approvalService: approvalService}
}

// transitionFunc performs one approval transition for the acting user.
type transitionFunc func(c *gin.Context, realizationID, actorID string) (*domain.Realization, error)

// runTransition is the shared body of the transition endpoints.
func (h *approvalHandler) runTransition(c *gin.Context, action string, fn transitionFunc) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	realizationID := c.Param("realizationID")

	actorID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("actor_id", actorID), slog.String("realization_id", realizationID))

	realization, err := fn(c, realizationID, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to "+action+" realization")
		return
	}

	logger.Info("Realization transitioned", slog.String("action", action), slog.String("status", string(realization.Status)))
	c.JSON(http.StatusOK, dto.ToRealizationResponse(realization))
}

// submitRealization godoc
// @Summary Submit a draft realization for review
// @Tags approvals
// @Produce  json
// @Param   realizationID path string true "Realization ID"
// @Success 200 {object} dto.RealizationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Realization not found"
// @Failure 409 {object} map[string]string "Realization is not a draft"
// @Failure 500 {object} map[string]string "Failed to submit realization"
// @Security BearerAuth
// @Router /realizations/{realizationID}/submit [post]
func (h *approvalHandler) submitRealization(c *gin.Context) {
	h.runTransition(c, "submit", func(c *gin.Context, id, actor string) (*domain.Realization, error) {
		return h.approvalService.Submit(c.Request.Context(), id, actor)
	})
}

// approveRealization godoc
// @Summary Approve a pending realization
// @Tags approvals
// @Produce  json
// @Param   realizationID path string true "Realization ID"
// @Success 200 {object} dto.RealizationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Realization not found"
// @Failure 409 {object} map[string]string "Realization is not pending review"
// @Failure 500 {object} map[string]string "Failed to approve realization"
// @Security BearerAuth
// @Router /realizations/{realizationID}/approve [post]
func (h *approvalHandler) approveRealization(c *gin.Context) {
	h.runTransition(c, "approve", func(c *gin.Context, id, actor string) (*domain.Realization, error) {
		return h.approvalService.Approve(c.Request.Context(), id, actor)
	})
}

// rejectRealization godoc
// @Summary Reject a pending realization
// @Tags approvals
// @Accept  json
// @Produce  json
// @Param   realizationID path string true "Realization ID"
// @Param   rejection body dto.RejectRealizationRequest true "Rejection reason"
// @Success 200 {object} dto.RealizationResponse
// @Failure 400 {object} map[string]string "Missing rejection reason"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Realization not found"
// @Failure 409 {object} map[string]string "Realization is not pending review"
// @Failure 500 {object} map[string]string "Failed to reject realization"
// @Security BearerAuth
// @Router /realizations/{realizationID}/reject [post]
func (h *approvalHandler) rejectRealization(c *gin.Context) {
	var req dto.RejectRealizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Warn("Failed to bind JSON for RejectRealization", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A rejection reason is required"})
		return
	}

	h.runTransition(c, "reject", func(c *gin.Context, id, actor string) (*domain.Realization, error) {
		return h.approvalService.Reject(c.Request.Context(), id, actor, req.Reason)
	})
}

// resubmitRealization godoc
// @Summary Return a rejected realization to draft
// @Tags approvals
// @Produce  json
// @Param   realizationID path string true "Realization ID"
// @Success 200 {object} dto.RealizationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Realization not found"
// @Failure 409 {object} map[string]string "Realization is not rejected"
// @Failure 500 {object} map[string]string "Failed to resubmit realization"
// @Security BearerAuth
// @Router /realizations/{realizationID}/resubmit [post]
func (h *approvalHandler) resubmitRealization(c *gin.Context) {
	h.runTransition(c, "resubmit", func(c *gin.Context, id, actor string) (*domain.Realization, error) {
		return h.approvalService.Resubmit(c.Request.Context(), id, actor)
	})
}

// listApprovalHistory godoc
// @Summary List the approval history of a realization
// @Tags approvals
// @Produce  json
// @Param   realizationID path string true "Realization ID"
// @Success 200 {array} dto.ApprovalRecordResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Realization not found"
// @Failure 500 {object} map[string]string "Failed to list approval history"
// @Security BearerAuth
// @Router /realizations/{realizationID}/approvals [get]
func (h *approvalHandler) listApprovalHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	realizationID := c.Param("realizationID")

	records, err := h.approvalService.ListApprovalHistory(c.Request.Context(), realizationID)
	if err != nil {
		respondError(c, logger.With(slog.String("realization_id", realizationID)), err, "Failed to list approval history")
		return
	}

	c.JSON(http.StatusOK, dto.ToApprovalRecordResponses(records))
}

func registerApprovalRoutes(group *gin.RouterGroup, approvalService portssvc.ApprovalSvc) {
	h := newApprovalHandler(approvalService)

	realization := group.Group("/realizations/:realizationID")
	{
		realization.POST("/submit", h.submitRealization)
		realization.POST("/approve", h.approveRealization)
		realization.POST("/reject", h.rejectRealization)
		realization.POST("/resubmit", h.resubmitRealization)
		realization.GET("/approvals", h.listApprovalHistory)
	}
}
