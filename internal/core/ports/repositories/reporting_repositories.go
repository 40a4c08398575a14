package repositories

import (
	"context"

	"github.com/SscSPs/rab_realization_app/internal/core/domain"
)

// ReportingRepositoryFacade defines aggregate queries.
// Aggregates cover non-deleted, non-rejected realizations only.
type ReportingRepositoryFacade interface {
	// AggregateByRabItem returns the aggregate of a single RAB item (zeroed if it has no realizations).
	AggregateByRabItem(ctx context.Context, rabItemID string) (*domain.RealizationAggregate, error)

	// AggregateByProject returns one aggregate per RAB item of the project, including items without realizations.
	AggregateByProject(ctx context.Context, projectID string) ([]domain.RealizationAggregate, error)
}
