package services

import (
	"context"

	"github.com/SscSPs/rab_realization_app/internal/core/domain"
)

// ApprovalSvc drives the realization approval state machine.
type ApprovalSvc interface {
	// Submit moves a draft realization to pending_review.
	Submit(ctx context.Context, realizationID string, userID string) (*domain.Realization, error)

	// Approve moves a pending_review realization to approved.
	Approve(ctx context.Context, realizationID string, approverID string) (*domain.Realization, error)

	// Reject moves a pending_review realization to rejected. reason must not be blank.
	Reject(ctx context.Context, realizationID string, approverID string, reason string) (*domain.Realization, error)

	// Resubmit returns a rejected realization to draft.
	Resubmit(ctx context.Context, realizationID string, userID string) (*domain.Realization, error)

	// ListApprovalHistory returns every transition of a realization, oldest first.
	ListApprovalHistory(ctx context.Context, realizationID string) ([]domain.ApprovalRecord, error)
}
