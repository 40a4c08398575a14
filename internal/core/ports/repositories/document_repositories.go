package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/rab_realization_app/internal/core/domain"
)

// DocumentRepositoryFacade defines persistence for realization documents.
type DocumentRepositoryFacade interface {
	// SaveDocument inserts document metadata. The owning realization must exist and not be deleted,
	// otherwise apperrors.ErrNotFound is returned and nothing is written.
	SaveDocument(ctx context.Context, document domain.RealizationDocument) error

	// FindDocumentByID returns a non-deleted document or apperrors.ErrNotFound.
	FindDocumentByID(ctx context.Context, documentID string) (*domain.RealizationDocument, error)

	// ListDocumentsByRealization returns non-deleted documents ordered by upload time ascending.
	ListDocumentsByRealization(ctx context.Context, realizationID string) ([]domain.RealizationDocument, error)

	// SoftDeleteDocument sets deleted_at on a live document.
	SoftDeleteDocument(ctx context.Context, documentID string, deletedAt time.Time) error
}
