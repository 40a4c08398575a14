package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/rab_realization_app/internal/apperrors"
	"github.com/SscSPs/rab_realization_app/internal/core/domain"
	portsrepo "github.com/SscSPs/rab_realization_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rab_realization_app/internal/core/ports/services"
)

// approvalService moves realizations through draft, pending_review, approved and rejected.
type approvalService struct {
	BaseService
	realizationRepo portsrepo.RealizationRepositoryFacade
}

// NewApprovalService creates a new approval service.
func NewApprovalService(realizationRepo portsrepo.RealizationRepositoryFacade, options ...ServiceOption) portssvc.ApprovalSvc {
	return &approvalService{
		BaseService:     newBaseService(options...),
		realizationRepo: realizationRepo,
	}
}

var _ portssvc.ApprovalSvc = (*approvalService)(nil)

func (s *approvalService) Submit(ctx context.Context, realizationID string, userID string) (*domain.Realization, error) {
	return s.transition(ctx, "submit realization", realizationID, userID, domain.ActionSubmit, nil, nil)
}

func (s *approvalService) Approve(ctx context.Context, realizationID string, approverID string) (*domain.Realization, error) {
	return s.transition(ctx, "approve realization", realizationID, approverID, domain.ActionApprove, nil,
		func(r *domain.Realization, now time.Time) {
			r.ApprovedBy = &approverID
			r.ApprovedAt = &now
			r.RejectionReason = nil
		})
}

func (s *approvalService) Reject(ctx context.Context, realizationID string, approverID string, reason string) (*domain.Realization, error) {
	const op = "reject realization"
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperrors.NewValidationError(op, realizationID, "rejection reason is required")
	}
	return s.transition(ctx, op, realizationID, approverID, domain.ActionReject, &reason,
		func(r *domain.Realization, _ time.Time) {
			r.ApprovedBy = &approverID
			r.ApprovedAt = nil
			r.RejectionReason = &reason
		})
}

func (s *approvalService) Resubmit(ctx context.Context, realizationID string, userID string) (*domain.Realization, error) {
	return s.transition(ctx, "resubmit realization", realizationID, userID, domain.ActionResubmit, nil,
		func(r *domain.Realization, _ time.Time) {
			r.ApprovedBy = nil
			r.ApprovedAt = nil
			r.RejectionReason = nil
		})
}

func (s *approvalService) ListApprovalHistory(ctx context.Context, realizationID string) ([]domain.ApprovalRecord, error) {
	if _, err := retryRead(ctx, &s.BaseService, "get realization", func(ctx context.Context) (*domain.Realization, error) {
		return s.realizationRepo.FindRealizationByID(ctx, realizationID)
	}); err != nil {
		return nil, err
	}

	records, err := retryRead(ctx, &s.BaseService, "list approval history", func(ctx context.Context) ([]domain.ApprovalRecord, error) {
		return s.realizationRepo.ListApprovalRecords(ctx, realizationID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list approval history", slog.String("realization_id", realizationID))
		return nil, err
	}
	return records, nil
}

// transition applies action to the stored realization. The write is conditional on the
// version and status that were read, so a concurrent change fails instead of being overwritten.
func (s *approvalService) transition(
	ctx context.Context,
	op, realizationID, actorID string,
	action domain.ApprovalAction,
	reason *string,
	mutate func(*domain.Realization, time.Time),
) (*domain.Realization, error) {
	if err := requireActor(op, realizationID, actorID); err != nil {
		return nil, err
	}

	current, err := retryRead(ctx, &s.BaseService, "get realization", func(ctx context.Context) (*domain.Realization, error) {
		return s.realizationRepo.FindRealizationByID(ctx, realizationID)
	})
	if err != nil {
		return nil, err
	}

	next, ok := domain.NextStatus(current.Status, action)
	if !ok {
		return nil, apperrors.NewInvalidStateError(op, realizationID,
			fmt.Sprintf("status is %s, expected %s", current.Status, domain.RequiredStatus(action)))
	}

	now := s.Now()
	updated := *current
	updated.Status = next
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = actorID
	if mutate != nil {
		mutate(&updated, now)
	}
	applyFigures(&updated)

	record := domain.ApprovalRecord{
		ApprovalID:    uuid.NewString(),
		RealizationID: realizationID,
		Action:        action,
		FromStatus:    current.Status,
		ToStatus:      next,
		ActorID:       actorID,
		Reason:        reason,
		ActedAt:       now,
	}

	if err := s.realizationRepo.UpdateRealization(ctx, updated, current.Version, current.Status, &record); err != nil {
		s.LogError(ctx, err, "Failed to apply approval transition",
			slog.String("realization_id", realizationID),
			slog.String("action", string(action)))
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	updated.Version = current.Version + 1

	s.LogInfo(ctx, "Realization status changed",
		slog.String("realization_id", realizationID),
		slog.String("action", string(action)),
		slog.String("from", string(current.Status)),
		slog.String("to", string(next)),
		slog.String("actor_id", actorID))
	return &updated, nil
}
