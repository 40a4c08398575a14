package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/rab_realization_app/internal/core/domain"
)

// RealizationFilter narrows a realization listing. Exactly one of ProjectID or RabItemID is set.
type RealizationFilter struct {
	ProjectID string
	RabItemID string
	Status    *domain.RealizationStatus
}

// RealizationReader defines read operations for realization data.
// Soft-deleted rows are never returned.
type RealizationReader interface {
	// FindRealizationByID returns the realization or apperrors.ErrNotFound.
	FindRealizationByID(ctx context.Context, realizationID string) (*domain.Realization, error)

	// ListRealizations returns one page ordered by transaction date and creation time (newest first)
	// plus the token of the next page, if any.
	ListRealizations(ctx context.Context, filter RealizationFilter, limit int, nextToken *string) ([]domain.Realization, *string, error)

	// ListAllRealizationsByProject returns every realization of a project, oldest first. Used by exports.
	ListAllRealizationsByProject(ctx context.Context, projectID string) ([]domain.Realization, error)

	// ListApprovalRecords returns the transition history of a realization, oldest first.
	ListApprovalRecords(ctx context.Context, realizationID string) ([]domain.ApprovalRecord, error)
}

// RealizationWriter defines write operations for realization data.
type RealizationWriter interface {
	// SaveRealization inserts a new realization.
	SaveRealization(ctx context.Context, realization domain.Realization) error

	// UpdateRealization writes every mutable column of realization in one statement, guarded by
	// expectedVersion and expectedStatus. When record is non-nil it is appended to the approval log in
	// the same transaction. A guard mismatch returns apperrors.ErrInvalidState.
	UpdateRealization(ctx context.Context, realization domain.Realization, expectedVersion int64, expectedStatus domain.RealizationStatus, record *domain.ApprovalRecord) error

	// SoftDeleteRealization tombstones a realization and all of its documents in one transaction,
	// provided it is still at expectedVersion.
	SoftDeleteRealization(ctx context.Context, realizationID string, expectedVersion int64, deletedBy string, deletedAt time.Time) error
}

// RealizationRepositoryFacade combines all realization-related repository interfaces
type RealizationRepositoryFacade interface {
	RealizationReader
	RealizationWriter
}
