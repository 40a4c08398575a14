package pgsql

import (
	"context"
	"errors"
	"strings"

	"github.com/SscSPs/rab_realization_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// classifyDBError maps a pgx error onto the application error taxonomy.
// Timeouts, cancellations, connection loss and serialization conflicts are retryable.
func classifyDBError(op, entityID string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewOpNotFoundError(op, entityID, "no matching row")
	}
	if isRetryableDBError(err) {
		return apperrors.NewRetryableError(op, entityID, err)
	}
	if reason, ok := rejectedInput(err); ok {
		return &apperrors.OpError{Op: op, EntityID: entityID, Kind: apperrors.ErrValidation, Reason: reason, Err: err}
	}
	return apperrors.NewInternalError(op, entityID, err)
}

// rejectedInput recognizes data exceptions (class 22) and integrity constraint
// violations (class 23): the values written were unacceptable, not the store.
func rejectedInput(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", false
	}
	switch {
	case strings.HasPrefix(pgErr.Code, "22"):
		return "value out of range or malformed", true
	case strings.HasPrefix(pgErr.Code, "23"):
		if pgErr.ConstraintName == "" {
			return "value violates a constraint", true
		}
		return "value violates constraint " + pgErr.ConstraintName, true
	}
	return "", false
}

func isRetryableDBError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	if pgconn.Timeout(err) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, "08"): // connection exception
			return true
		case strings.HasPrefix(pgErr.Code, "40"): // serialization failure, deadlock
			return true
		case strings.HasPrefix(pgErr.Code, "53"): // insufficient resources
			return true
		case pgErr.Code == "55P03", pgErr.Code == "57014", pgErr.Code == "57P01": // lock not available, query canceled, admin shutdown
			return true
		}
	}
	return false
}
