package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/rab_realization_app/internal/apperrors"
	"github.com/SscSPs/rab_realization_app/internal/middleware"
	"github.com/go-playground/validator/v10"
)

const retryBackoff = 50 * time.Millisecond

// requestValidator checks request structs against the same `binding` tags gin uses,
// so services enforce them no matter which adapter called in.
var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	return v
}

// BaseService provides common functionality for all services
type BaseService struct {
	readRetryAttempts int
	now               func() time.Time
}

// ServiceOption configures the shared parts of a service.
type ServiceOption func(*BaseService)

// WithReadRetries sets how many extra attempts a read gets after a retryable failure.
func WithReadRetries(attempts int) ServiceOption {
	return func(s *BaseService) {
		if attempts >= 0 {
			s.readRetryAttempts = attempts
		}
	}
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BaseService) {
		if now != nil {
			s.now = now
		}
	}
}

func newBaseService(options ...ServiceOption) BaseService {
	base := BaseService{now: time.Now}
	for _, option := range options {
		option(&base)
	}
	return base
}

// Now returns the current UTC time from the configured clock.
func (s *BaseService) Now() time.Time {
	if s.now == nil {
		return time.Now().UTC()
	}
	return s.now().UTC()
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// retryRead runs an idempotent read, retrying retryable failures up to s.readRetryAttempts times.
func retryRead[T any](ctx context.Context, s *BaseService, op string, read func(context.Context) (T, error)) (T, error) {
	var (
		result T
		err    error
	)
	for attempt := 0; ; attempt++ {
		result, err = read(ctx)
		if err == nil || !apperrors.IsRetryable(err) || attempt >= s.readRetryAttempts {
			return result, err
		}

		s.LogDebug(ctx, "Retrying read after transient failure",
			slog.String("op", op),
			slog.Int("attempt", attempt+1),
			slog.String("error", err.Error()))

		timer := time.NewTimer(retryBackoff * time.Duration(attempt+1))
		select {
		case <-ctx.Done():
			timer.Stop()
			return result, err
		case <-timer.C:
		}
	}
}

// validateRequest runs the binding tags of req and turns failures into a validation error.
func validateRequest(op, entityID string, req any) error {
	err := requestValidator.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field()+" failed "+fe.Tag())
		}
		return apperrors.NewValidationError(op, entityID, strings.Join(fields, ", "))
	}
	return apperrors.NewValidationError(op, entityID, err.Error())
}

// requireActor rejects blank user ids.
func requireActor(op, entityID, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return apperrors.NewValidationError(op, entityID, "user id is required")
	}
	return nil
}
