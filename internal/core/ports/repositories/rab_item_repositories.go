package repositories

import (
	"context"

	"github.com/SscSPs/rab_realization_app/internal/core/domain"
)

// RabItemReader defines read access to projects and their RAB lines.
// Both are owned by other modules; this service never writes them.
type RabItemReader interface {
	// FindProjectByID returns the project or apperrors.ErrNotFound.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// FindRabItemByID returns a non-deleted RAB item or apperrors.ErrNotFound.
	FindRabItemByID(ctx context.Context, rabItemID string) (*domain.RabItem, error)
}
