package pgsql

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/SscSPs/rab_realization_app/internal/apperrors"
	"github.com/SscSPs/rab_realization_app/internal/core/domain"
	portsrepo "github.com/SscSPs/rab_realization_app/internal/core/ports/repositories"
	"github.com/SscSPs/rab_realization_app/internal/models"
	"github.com/SscSPs/rab_realization_app/internal/utils/mapping"
	"github.com/SscSPs/rab_realization_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

const realizationColumns = `
	realization_id, project_id, rab_item_id, transaction_date, quantity, unit_price, total_amount,
	vendor_name, invoice_number, payment_method, notes,
	budget_unit_price, variance_amount, variance_percentage,
	status, approved_by, approved_at, rejection_reason, deleted_at, deleted_by,
	created_at, created_by, last_updated_at, last_updated_by, version`

// PgxRealizationRepository persists realization entries and their approval log.
type PgxRealizationRepository struct {
	BaseRepository
}

func newPgxRealizationRepository(pool DBPool, queryTimeout time.Duration) *PgxRealizationRepository {
	return &PgxRealizationRepository{
		BaseRepository: BaseRepository{Pool: pool, QueryTimeout: queryTimeout},
	}
}

var _ portsrepo.RealizationRepositoryFacade = (*PgxRealizationRepository)(nil)

func scanRealization(row pgx.Row) (models.Realization, error) {
	var m models.Realization
	err := row.Scan(
		&m.RealizationID,
		&m.ProjectID,
		&m.RabItemID,
		&m.TransactionDate,
		&m.Quantity,
		&m.UnitPrice,
		&m.TotalAmount,
		&m.VendorName,
		&m.InvoiceNumber,
		&m.PaymentMethod,
		&m.Notes,
		&m.BudgetUnitPrice,
		&m.VarianceAmount,
		&m.VariancePercentage,
		&m.Status,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.RejectionReason,
		&m.DeletedAt,
		&m.DeletedBy,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.Version,
	)
	return m, err
}

// SaveRealization inserts a new realization entry.
func (r *PgxRealizationRepository) SaveRealization(ctx context.Context, realization domain.Realization) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	m := mapping.ToModelRealization(realization)
	query := `
		INSERT INTO rab_realizations (` + realizationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RealizationID,
		m.ProjectID,
		m.RabItemID,
		m.TransactionDate,
		m.Quantity,
		m.UnitPrice,
		m.TotalAmount,
		m.VendorName,
		m.InvoiceNumber,
		m.PaymentMethod,
		m.Notes,
		m.BudgetUnitPrice,
		m.VarianceAmount,
		m.VariancePercentage,
		m.Status,
		m.ApprovedBy,
		m.ApprovedAt,
		m.RejectionReason,
		m.DeletedAt,
		m.DeletedBy,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
	)
	if err != nil {
		return classifyDBError("insert realization", m.RealizationID, err)
	}
	return nil
}

// FindRealizationByID returns a live realization or a not-found error.
func (r *PgxRealizationRepository) FindRealizationByID(ctx context.Context, realizationID string) (*domain.Realization, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if !isUUID(realizationID) {
		return nil, apperrors.NewOpNotFoundError("find realization", realizationID, "realization does not exist")
	}

	query := `SELECT ` + realizationColumns + ` FROM rab_realizations WHERE realization_id = $1 AND deleted_at IS NULL;`
	m, err := scanRealization(r.Pool.QueryRow(ctx, query, realizationID))
	if err != nil {
		return nil, classifyDBError("find realization", realizationID, err)
	}
	d := mapping.ToDomainRealization(m)
	return &d, nil
}

// ListRealizations returns one page of live realizations, newest transaction first.
func (r *PgxRealizationRepository) ListRealizations(ctx context.Context, filter portsrepo.RealizationFilter, limit int, nextToken *string) ([]domain.Realization, *string, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	limit = pagination.NormalizeLimit(limit)
	// One extra row tells us whether another page exists.
	fetchLimit := limit + 1

	var args []interface{}
	filterClause := `WHERE deleted_at IS NULL`
	entityID := filter.ProjectID
	if filter.RabItemID != "" {
		entityID = filter.RabItemID
		args = append(args, filter.RabItemID)
		filterClause += ` AND rab_item_id = $` + strconv.Itoa(len(args))
	} else {
		args = append(args, filter.ProjectID)
		filterClause += ` AND project_id = $` + strconv.Itoa(len(args))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		filterClause += ` AND status = $` + strconv.Itoa(len(args))
	}

	if !isUUID(entityID) {
		return []domain.Realization{}, nil, nil
	}
	if nextToken != nil && *nextToken != "" {
		cursor, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil || !isUUID(cursor.ID) {
			return nil, nil, apperrors.NewValidationError("list realizations", entityID, "invalid nextToken")
		}
		args = append(args, cursor.SortDate, cursor.CreatedAt, cursor.ID)
		filterClause += ` AND (transaction_date, created_at, realization_id) < ($` + strconv.Itoa(len(args)-2) +
			`, $` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query := `SELECT ` + realizationColumns + ` FROM rab_realizations ` + filterClause +
		` ORDER BY transaction_date DESC, created_at DESC, realization_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, classifyDBError("list realizations", entityID, err)
	}
	defer rows.Close()

	modelRealizations := make([]models.Realization, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanRealization(rows)
		if scanErr != nil {
			return nil, nil, classifyDBError("scan realization", entityID, scanErr)
		}
		modelRealizations = append(modelRealizations, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, classifyDBError("iterate realizations", entityID, err)
	}

	var nextTokenVal *string
	results := modelRealizations
	if len(modelRealizations) > limit {
		last := modelRealizations[limit-1]
		token := pagination.EncodeToken(last.TransactionDate, last.CreatedAt, last.RealizationID)
		nextTokenVal = &token
		results = modelRealizations[:limit]
	}

	return mapping.ToDomainRealizationSlice(results), nextTokenVal, nil
}

// ListAllRealizationsByProject returns every live realization of a project, oldest transaction first.
func (r *PgxRealizationRepository) ListAllRealizationsByProject(ctx context.Context, projectID string) ([]domain.Realization, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if !isUUID(projectID) {
		return []domain.Realization{}, nil
	}

	query := `SELECT ` + realizationColumns + ` FROM rab_realizations
		WHERE project_id = $1 AND deleted_at IS NULL
		ORDER BY transaction_date ASC, created_at ASC, realization_id ASC;`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, classifyDBError("list project realizations", projectID, err)
	}
	defer rows.Close()

	var modelRealizations []models.Realization
	for rows.Next() {
		m, scanErr := scanRealization(rows)
		if scanErr != nil {
			return nil, classifyDBError("scan realization", projectID, scanErr)
		}
		modelRealizations = append(modelRealizations, m)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyDBError("iterate realizations", projectID, err)
	}
	return mapping.ToDomainRealizationSlice(modelRealizations), nil
}

// ListApprovalRecords returns the approval log of a realization, oldest first.
func (r *PgxRealizationRepository) ListApprovalRecords(ctx context.Context, realizationID string) ([]domain.ApprovalRecord, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if !isUUID(realizationID) {
		return []domain.ApprovalRecord{}, nil
	}

	query := `
		SELECT approval_id, realization_id, action, from_status, to_status, actor_id, reason, acted_at
		FROM realization_approvals
		WHERE realization_id = $1
		ORDER BY acted_at ASC, approval_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, realizationID)
	if err != nil {
		return nil, classifyDBError("list approval records", realizationID, err)
	}
	defer rows.Close()

	records := make([]domain.ApprovalRecord, 0)
	for rows.Next() {
		var m models.RealizationApproval
		if err := rows.Scan(&m.ApprovalID, &m.RealizationID, &m.Action, &m.FromStatus, &m.ToStatus, &m.ActorID, &m.Reason, &m.ActedAt); err != nil {
			return nil, classifyDBError("scan approval record", realizationID, err)
		}
		records = append(records, mapping.ToDomainApproval(m))
	}
	if err := rows.Err(); err != nil {
		return nil, classifyDBError("iterate approval records", realizationID, err)
	}
	return records, nil
}

// UpdateRealization writes the mutable columns of a realization when it is still at
// expectedVersion and expectedStatus, and appends record to the approval log in the same transaction.
func (r *PgxRealizationRepository) UpdateRealization(ctx context.Context, realization domain.Realization, expectedVersion int64, expectedStatus domain.RealizationStatus, record *domain.ApprovalRecord) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if !isUUID(realization.RealizationID) {
		return apperrors.NewOpNotFoundError("update realization", realization.RealizationID, "realization does not exist")
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelRealization(realization)
	query := `
		UPDATE rab_realizations
		SET transaction_date = $2, quantity = $3, unit_price = $4, total_amount = $5,
		    vendor_name = $6, invoice_number = $7, payment_method = $8, notes = $9,
		    budget_unit_price = $10, variance_amount = $11, variance_percentage = $12,
		    status = $13, approved_by = $14, approved_at = $15, rejection_reason = $16,
		    last_updated_at = $17, last_updated_by = $18, version = version + 1
		WHERE realization_id = $1 AND version = $19 AND status = $20 AND deleted_at IS NULL;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.RealizationID,
		m.TransactionDate,
		m.Quantity,
		m.UnitPrice,
		m.TotalAmount,
		m.VendorName,
		m.InvoiceNumber,
		m.PaymentMethod,
		m.Notes,
		m.BudgetUnitPrice,
		m.VarianceAmount,
		m.VariancePercentage,
		m.Status,
		m.ApprovedBy,
		m.ApprovedAt,
		m.RejectionReason,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		expectedVersion,
		string(expectedStatus),
	)
	if err != nil {
		return classifyDBError("update realization", m.RealizationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.explainGuardMiss(ctx, tx, "update realization", m.RealizationID, expectedStatus)
	}

	if record != nil {
		a := mapping.ToModelApproval(*record)
		_, err = tx.Exec(ctx, `
			INSERT INTO realization_approvals (approval_id, realization_id, action, from_status, to_status, actor_id, reason, acted_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
			a.ApprovalID, a.RealizationID, a.Action, a.FromStatus, a.ToStatus, a.ActorID, a.Reason, a.ActedAt,
		)
		if err != nil {
			return classifyDBError("insert approval record", m.RealizationID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// SoftDeleteRealization tombstones a realization and its documents in one transaction.
func (r *PgxRealizationRepository) SoftDeleteRealization(ctx context.Context, realizationID string, expectedVersion int64, deletedBy string, deletedAt time.Time) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if !isUUID(realizationID) {
		return apperrors.NewOpNotFoundError("delete realization", realizationID, "realization does not exist")
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	cmdTag, err := tx.Exec(ctx, `
		UPDATE rab_realizations
		SET deleted_at = $2, deleted_by = $3, last_updated_at = $2, last_updated_by = $3, version = version + 1
		WHERE realization_id = $1 AND version = $4 AND status IN ('draft', 'rejected') AND deleted_at IS NULL;`,
		realizationID, deletedAt, deletedBy, expectedVersion,
	)
	if err != nil {
		return classifyDBError("delete realization", realizationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.explainGuardMiss(ctx, tx, "delete realization", realizationID, "")
	}

	_, err = tx.Exec(ctx, `
		UPDATE realization_documents SET deleted_at = $2
		WHERE realization_id = $1 AND deleted_at IS NULL;`,
		realizationID, deletedAt,
	)
	if err != nil {
		return classifyDBError("delete realization documents", realizationID, err)
	}

	return r.Commit(ctx, tx)
}

// explainGuardMiss tells a vanished row apart from one whose version or status moved on.
func (r *PgxRealizationRepository) explainGuardMiss(ctx context.Context, tx pgx.Tx, op, realizationID string, expectedStatus domain.RealizationStatus) error {
	var status string
	err := tx.QueryRow(ctx, `SELECT status FROM rab_realizations WHERE realization_id = $1 AND deleted_at IS NULL;`, realizationID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewOpNotFoundError(op, realizationID, "realization does not exist")
	}
	if err != nil {
		return classifyDBError(op, realizationID, err)
	}
	if expectedStatus != "" && status != string(expectedStatus) {
		return apperrors.NewInvalidStateError(op, realizationID, "status is "+status+", expected "+string(expectedStatus))
	}
	return apperrors.NewInvalidStateError(op, realizationID, "realization was modified concurrently (status "+status+")")
}
