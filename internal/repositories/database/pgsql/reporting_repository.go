package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/rab_realization_app/internal/apperrors"
	"github.com/SscSPs/rab_realization_app/internal/core/domain"
	portsrepo "github.com/SscSPs/rab_realization_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// reportingRepository computes realization aggregates in SQL.
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(pool DBPool, queryTimeout time.Duration) *reportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: pool, QueryTimeout: queryTimeout},
	}
}

var _ portsrepo.ReportingRepositoryFacade = (*reportingRepository)(nil)

// Rejected and soft-deleted entries never count. Entries with unknown variance
// contribute to the total but not to the variance weighting.
const aggregateSelect = `
	SELECT
		ri.rab_item_id,
		ri.description,
		ri.planned_quantity * ri.unit_price AS budget_total,
		COALESCE(SUM(r.total_amount), 0) AS total_realized,
		COUNT(r.realization_id) AS entry_count,
		COALESCE(SUM(r.variance_percentage * r.total_amount) FILTER (WHERE r.variance_percentage IS NOT NULL), 0) AS weighted_variance_sum,
		COALESCE(SUM(r.total_amount) FILTER (WHERE r.variance_percentage IS NOT NULL), 0) AS variance_weight
	FROM project_rab ri
	LEFT JOIN rab_realizations r
		ON r.rab_item_id = ri.rab_item_id
		AND r.deleted_at IS NULL
		AND r.status <> 'rejected'
`

const aggregateGroupBy = `GROUP BY ri.rab_item_id, ri.description, ri.planned_quantity, ri.unit_price`

func scanAggregate(row pgx.Row) (domain.RealizationAggregate, error) {
	var a domain.RealizationAggregate
	err := row.Scan(
		&a.RabItemID,
		&a.Description,
		&a.BudgetTotal,
		&a.TotalRealized,
		&a.Count,
		&a.WeightedVarianceSum,
		&a.VarianceWeight,
	)
	return a, err
}

// AggregateByRabItem returns the aggregate of one live RAB item or a not-found error.
func (r *reportingRepository) AggregateByRabItem(ctx context.Context, rabItemID string) (*domain.RealizationAggregate, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if !isUUID(rabItemID) {
		return nil, apperrors.NewOpNotFoundError("aggregate rab item", rabItemID, "rab item does not exist")
	}

	query := aggregateSelect + `WHERE ri.rab_item_id = $1 AND ri.deleted_at IS NULL ` + aggregateGroupBy + `;`
	a, err := scanAggregate(r.Pool.QueryRow(ctx, query, rabItemID))
	if err != nil {
		return nil, classifyDBError("aggregate rab item", rabItemID, err)
	}
	return &a, nil
}

// AggregateByProject returns one aggregate per live RAB item of a project.
func (r *reportingRepository) AggregateByProject(ctx context.Context, projectID string) ([]domain.RealizationAggregate, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if !isUUID(projectID) {
		return []domain.RealizationAggregate{}, nil
	}

	query := aggregateSelect + `WHERE ri.project_id = $1 AND ri.deleted_at IS NULL ` + aggregateGroupBy +
		` ORDER BY ri.description ASC, ri.rab_item_id ASC;`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, classifyDBError("aggregate project", projectID, err)
	}
	defer rows.Close()

	result := make([]domain.RealizationAggregate, 0)
	for rows.Next() {
		a, scanErr := scanAggregate(rows)
		if scanErr != nil {
			return nil, classifyDBError("scan aggregate", projectID, scanErr)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyDBError("iterate aggregates", projectID, err)
	}
	return result, nil
}
