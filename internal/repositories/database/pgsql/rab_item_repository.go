package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/rab_realization_app/internal/apperrors"
	"github.com/SscSPs/rab_realization_app/internal/core/domain"
	portsrepo "github.com/SscSPs/rab_realization_app/internal/core/ports/repositories"
	"github.com/SscSPs/rab_realization_app/internal/models"
	"github.com/SscSPs/rab_realization_app/internal/utils/mapping"
)

// PgxRabItemRepository reads projects and RAB lines owned by the project module.
type PgxRabItemRepository struct {
	BaseRepository
}

func newPgxRabItemRepository(pool DBPool, queryTimeout time.Duration) *PgxRabItemRepository {
	return &PgxRabItemRepository{
		BaseRepository: BaseRepository{Pool: pool, QueryTimeout: queryTimeout},
	}
}

var _ portsrepo.RabItemReader = (*PgxRabItemRepository)(nil)

// FindProjectByID returns the project or a not-found error.
func (r *PgxRabItemRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if !isUUID(projectID) {
		return nil, apperrors.NewOpNotFoundError("find project", projectID, "project does not exist")
	}

	var m models.Project
	err := r.Pool.QueryRow(ctx, `SELECT project_id, name FROM projects WHERE project_id = $1`, projectID).
		Scan(&m.ProjectID, &m.Name)
	if err != nil {
		return nil, classifyDBError("find project", projectID, err)
	}
	return &domain.Project{ProjectID: m.ProjectID, Name: m.Name}, nil
}

// FindRabItemByID returns a live RAB line or a not-found error.
func (r *PgxRabItemRepository) FindRabItemByID(ctx context.Context, rabItemID string) (*domain.RabItem, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if !isUUID(rabItemID) {
		return nil, apperrors.NewOpNotFoundError("find rab item", rabItemID, "rab item does not exist")
	}

	query := `
		SELECT rab_item_id, project_id, description, category, unit, planned_quantity, unit_price, deleted_at
		FROM project_rab
		WHERE rab_item_id = $1 AND deleted_at IS NULL;
	`
	var m models.RabItem
	err := r.Pool.QueryRow(ctx, query, rabItemID).Scan(
		&m.RabItemID,
		&m.ProjectID,
		&m.Description,
		&m.Category,
		&m.Unit,
		&m.PlannedQuantity,
		&m.UnitPrice,
		&m.DeletedAt,
	)
	if err != nil {
		return nil, classifyDBError("find rab item", rabItemID, err)
	}
	item := mapping.ToDomainRabItem(m)
	return &item, nil
}
