package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/rab_realization_app/internal/apperrors"
	"github.com/SscSPs/rab_realization_app/internal/core/domain"
	portsrepo "github.com/SscSPs/rab_realization_app/internal/core/ports/repositories"
	"github.com/SscSPs/rab_realization_app/internal/models"
	"github.com/SscSPs/rab_realization_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

// PgxDocumentRepository persists realization document metadata.
type PgxDocumentRepository struct {
	BaseRepository
}

func newPgxDocumentRepository(pool DBPool, queryTimeout time.Duration) *PgxDocumentRepository {
	return &PgxDocumentRepository{
		BaseRepository: BaseRepository{Pool: pool, QueryTimeout: queryTimeout},
	}
}

var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

// SaveDocument inserts document metadata under a share lock on the owning realization,
// so a concurrent soft delete cannot leave a live document behind a tombstoned entry.
func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, document domain.RealizationDocument) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if !isUUID(document.RealizationID) {
		return apperrors.NewOpNotFoundError("attach document", document.RealizationID, "realization does not exist")
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var lockedID string
	err = tx.QueryRow(ctx, `
		SELECT realization_id FROM rab_realizations
		WHERE realization_id = $1 AND deleted_at IS NULL
		FOR SHARE;`, document.RealizationID).Scan(&lockedID)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewOpNotFoundError("attach document", document.RealizationID, "realization does not exist")
	}
	if err != nil {
		return classifyDBError("attach document", document.RealizationID, err)
	}

	m := mapping.ToModelDocument(document)
	_, err = tx.Exec(ctx, `
		INSERT INTO realization_documents (
			document_id, realization_id, file_name, storage_path, mime_type, size_bytes,
			document_type, description, uploaded_by, uploaded_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		m.DocumentID, m.RealizationID, m.FileName, m.StoragePath, m.MimeType, m.SizeBytes,
		m.DocumentType, m.Description, m.UploadedBy, m.UploadedAt,
	)
	if err != nil {
		return classifyDBError("insert document", m.DocumentID, err)
	}

	return r.Commit(ctx, tx)
}

const documentColumns = `document_id, realization_id, file_name, storage_path, mime_type, size_bytes,
	document_type, description, uploaded_by, uploaded_at, deleted_at`

func scanDocument(row pgx.Row) (models.RealizationDocument, error) {
	var m models.RealizationDocument
	err := row.Scan(
		&m.DocumentID,
		&m.RealizationID,
		&m.FileName,
		&m.StoragePath,
		&m.MimeType,
		&m.SizeBytes,
		&m.DocumentType,
		&m.Description,
		&m.UploadedBy,
		&m.UploadedAt,
		&m.DeletedAt,
	)
	return m, err
}

// FindDocumentByID returns a live document or a not-found error.
func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.RealizationDocument, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if !isUUID(documentID) {
		return nil, apperrors.NewOpNotFoundError("find document", documentID, "document does not exist")
	}

	query := `SELECT ` + documentColumns + ` FROM realization_documents WHERE document_id = $1 AND deleted_at IS NULL;`
	m, err := scanDocument(r.Pool.QueryRow(ctx, query, documentID))
	if err != nil {
		return nil, classifyDBError("find document", documentID, err)
	}
	d := mapping.ToDomainDocument(m)
	return &d, nil
}

// ListDocumentsByRealization returns live documents in upload order.
func (r *PgxDocumentRepository) ListDocumentsByRealization(ctx context.Context, realizationID string) ([]domain.RealizationDocument, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if !isUUID(realizationID) {
		return []domain.RealizationDocument{}, nil
	}

	query := `SELECT ` + documentColumns + ` FROM realization_documents
		WHERE realization_id = $1 AND deleted_at IS NULL
		ORDER BY uploaded_at ASC, document_id ASC;`
	rows, err := r.Pool.Query(ctx, query, realizationID)
	if err != nil {
		return nil, classifyDBError("list documents", realizationID, err)
	}
	defer rows.Close()

	documents := make([]domain.RealizationDocument, 0)
	for rows.Next() {
		m, scanErr := scanDocument(rows)
		if scanErr != nil {
			return nil, classifyDBError("scan document", realizationID, scanErr)
		}
		documents = append(documents, mapping.ToDomainDocument(m))
	}
	if err := rows.Err(); err != nil {
		return nil, classifyDBError("iterate documents", realizationID, err)
	}
	return documents, nil
}

// SoftDeleteDocument tombstones a live document.
func (r *PgxDocumentRepository) SoftDeleteDocument(ctx context.Context, documentID string, deletedAt time.Time) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if !isUUID(documentID) {
		return apperrors.NewOpNotFoundError("delete document", documentID, "document does not exist")
	}

	cmdTag, err := r.Pool.Exec(ctx, `
		UPDATE realization_documents SET deleted_at = $2
		WHERE document_id = $1 AND deleted_at IS NULL;`, documentID, deletedAt)
	if err != nil {
		return classifyDBError("delete document", documentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewOpNotFoundError("delete document", documentID, "document does not exist")
	}
	return nil
}
