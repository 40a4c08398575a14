package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/rab_realization_app/internal/apperrors"
	"github.com/SscSPs/rab_realization_app/internal/core/domain"
	portsrepo "github.com/SscSPs/rab_realization_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rab_realization_app/internal/core/ports/services"
	"github.com/SscSPs/rab_realization_app/internal/dto"
	"github.com/SscSPs/rab_realization_app/internal/utils/costing"
	"github.com/SscSPs/rab_realization_app/internal/utils/pagination"
)

// realizationService records realization entries against RAB items.
type realizationService struct {
	BaseService
	realizationRepo portsrepo.RealizationRepositoryFacade
	rabItemRepo     portsrepo.RabItemReader
}

// NewRealizationService creates a new realization ledger service.
func NewRealizationService(realizationRepo portsrepo.RealizationRepositoryFacade, rabItemRepo portsrepo.RabItemReader, options ...ServiceOption) portssvc.RealizationSvcFacade {
	return &realizationService{
		BaseService:     newBaseService(options...),
		realizationRepo: realizationRepo,
		rabItemRepo:     rabItemRepo,
	}
}

var _ portssvc.RealizationSvcFacade = (*realizationService)(nil)

// dateOnly drops the time of day; transaction dates are stored as DATE.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func validateAmounts(op, entityID string, quantity, unitPrice decimal.Decimal) error {
	if !quantity.IsPositive() {
		return apperrors.NewValidationError(op, entityID, "quantity must be greater than zero")
	}
	if unitPrice.IsNegative() {
		return apperrors.NewValidationError(op, entityID, "unit price must not be negative")
	}
	if err := costing.ValidateInputs(quantity, unitPrice); err != nil {
		return apperrors.NewValidationError(op, entityID, err.Error())
	}
	return nil
}

// applyFigures recomputes the derived amounts from quantity, unit price and the budget snapshot.
func applyFigures(r *domain.Realization) {
	figures := costing.Compute(r.Quantity, r.UnitPrice, r.BudgetUnitPrice)
	r.TotalAmount = figures.TotalAmount
	r.VarianceAmount = figures.VarianceAmount
	r.VariancePercentage = figures.VariancePercentage
}

func (s *realizationService) CreateRealization(ctx context.Context, req dto.CreateRealizationRequest, creatorUserID string) (*domain.Realization, error) {
	const op = "create realization"
	if err := requireActor(op, req.RabItemID, creatorUserID); err != nil {
		return nil, err
	}
	if err := validateRequest(op, req.RabItemID, req); err != nil {
		return nil, err
	}
	if err := validateAmounts(op, req.RabItemID, *req.Quantity, *req.UnitPrice); err != nil {
		return nil, err
	}

	if _, err := retryRead(ctx, &s.BaseService, "find project", func(ctx context.Context) (*domain.Project, error) {
		return s.rabItemRepo.FindProjectByID(ctx, req.ProjectID)
	}); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError(op, req.ProjectID, "project does not exist")
		}
		s.LogError(ctx, err, "Failed to resolve project", slog.String("project_id", req.ProjectID))
		return nil, fmt.Errorf("failed to resolve project %s: %w", req.ProjectID, err)
	}

	rabItem, err := retryRead(ctx, &s.BaseService, "find rab item", func(ctx context.Context) (*domain.RabItem, error) {
		return s.rabItemRepo.FindRabItemByID(ctx, req.RabItemID)
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError(op, req.RabItemID, "rab item does not exist")
		}
		s.LogError(ctx, err, "Failed to resolve rab item", slog.String("rab_item_id", req.RabItemID))
		return nil, fmt.Errorf("failed to resolve rab item %s: %w", req.RabItemID, err)
	}
	if rabItem.ProjectID != req.ProjectID {
		return nil, apperrors.NewValidationError(op, req.RabItemID, "rab item does not belong to project "+req.ProjectID)
	}

	now := s.Now()
	budgetUnitPrice := rabItem.UnitPrice
	realization := domain.Realization{
		RealizationID:   uuid.NewString(),
		ProjectID:       req.ProjectID,
		RabItemID:       req.RabItemID,
		TransactionDate: dateOnly(req.TransactionDate),
		Quantity:        *req.Quantity,
		UnitPrice:       *req.UnitPrice,
		VendorName:      strings.TrimSpace(req.VendorName),
		InvoiceNumber:   strings.TrimSpace(req.InvoiceNumber),
		PaymentMethod:   strings.TrimSpace(req.PaymentMethod),
		Notes:           req.Notes,
		BudgetUnitPrice: &budgetUnitPrice,
		Status:          domain.StatusDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
			Version:       1,
		},
	}
	applyFigures(&realization)

	if err := s.realizationRepo.SaveRealization(ctx, realization); err != nil {
		s.LogError(ctx, err, "Failed to save realization",
			slog.String("realization_id", realization.RealizationID),
			slog.String("rab_item_id", realization.RabItemID))
		return nil, fmt.Errorf("failed to save realization: %w", err)
	}

	s.LogInfo(ctx, "Realization created",
		slog.String("realization_id", realization.RealizationID),
		slog.String("rab_item_id", realization.RabItemID),
		slog.String("total_amount", realization.TotalAmount.String()))
	return &realization, nil
}

func (s *realizationService) GetRealization(ctx context.Context, realizationID string) (*domain.Realization, error) {
	realization, err := retryRead(ctx, &s.BaseService, "get realization", func(ctx context.Context) (*domain.Realization, error) {
		return s.realizationRepo.FindRealizationByID(ctx, realizationID)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get realization", slog.String("realization_id", realizationID))
		}
		return nil, err
	}
	return realization, nil
}

func (s *realizationService) UpdateRealization(ctx context.Context, realizationID string, req dto.UpdateRealizationRequest, userID string) (*domain.Realization, error) {
	const op = "update realization"
	if err := requireActor(op, realizationID, userID); err != nil {
		return nil, err
	}
	if err := validateRequest(op, realizationID, req); err != nil {
		return nil, err
	}

	current, err := s.GetRealization(ctx, realizationID)
	if err != nil {
		return nil, err
	}
	if !current.Status.IsEditable() {
		return nil, apperrors.NewInvalidStateError(op, realizationID, "status is "+string(current.Status))
	}

	updated := *current
	if req.TransactionDate != nil {
		updated.TransactionDate = dateOnly(*req.TransactionDate)
	}
	if req.Quantity != nil {
		updated.Quantity = *req.Quantity
	}
	if req.UnitPrice != nil {
		updated.UnitPrice = *req.UnitPrice
	}
	if req.VendorName != nil {
		updated.VendorName = strings.TrimSpace(*req.VendorName)
	}
	if req.InvoiceNumber != nil {
		updated.InvoiceNumber = strings.TrimSpace(*req.InvoiceNumber)
	}
	if req.PaymentMethod != nil {
		updated.PaymentMethod = strings.TrimSpace(*req.PaymentMethod)
	}
	if req.Notes != nil {
		updated.Notes = *req.Notes
	}
	if err := validateAmounts(op, realizationID, updated.Quantity, updated.UnitPrice); err != nil {
		return nil, err
	}
	applyFigures(&updated)

	now := s.Now()
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = userID

	// Editing a rejected entry sends it back to draft.
	var record *domain.ApprovalRecord
	if current.Status == domain.StatusRejected {
		next, _ := domain.NextStatus(current.Status, domain.ActionResubmit)
		updated.Status = next
		updated.RejectionReason = nil
		updated.ApprovedBy = nil
		updated.ApprovedAt = nil
		record = &domain.ApprovalRecord{
			ApprovalID:    uuid.NewString(),
			RealizationID: realizationID,
			Action:        domain.ActionResubmit,
			FromStatus:    current.Status,
			ToStatus:      next,
			ActorID:       userID,
			ActedAt:       now,
		}
	}

	if err := s.realizationRepo.UpdateRealization(ctx, updated, current.Version, current.Status, record); err != nil {
		s.LogError(ctx, err, "Failed to update realization", slog.String("realization_id", realizationID))
		return nil, fmt.Errorf("failed to update realization: %w", err)
	}
	updated.Version = current.Version + 1

	s.LogInfo(ctx, "Realization updated",
		slog.String("realization_id", realizationID),
		slog.String("status", string(updated.Status)))
	return &updated, nil
}

func (s *realizationService) DeleteRealization(ctx context.Context, realizationID string, userID string) error {
	const op = "delete realization"
	if err := requireActor(op, realizationID, userID); err != nil {
		return err
	}

	current, err := s.GetRealization(ctx, realizationID)
	if err != nil {
		return err
	}
	if !current.Status.IsEditable() {
		return apperrors.NewInvalidStateError(op, realizationID, "status is "+string(current.Status))
	}

	if err := s.realizationRepo.SoftDeleteRealization(ctx, realizationID, current.Version, userID, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to delete realization", slog.String("realization_id", realizationID))
		return fmt.Errorf("failed to delete realization: %w", err)
	}

	s.LogInfo(ctx, "Realization deleted",
		slog.String("realization_id", realizationID),
		slog.String("deleted_by", userID))
	return nil
}

func (s *realizationService) ListRealizationsByProject(ctx context.Context, projectID string, params dto.ListRealizationsParams) (*dto.ListRealizationsResponse, error) {
	return s.list(ctx, "list project realizations", portsrepo.RealizationFilter{ProjectID: projectID}, projectID, params)
}

func (s *realizationService) ListRealizationsByRabItem(ctx context.Context, rabItemID string, params dto.ListRealizationsParams) (*dto.ListRealizationsResponse, error) {
	return s.list(ctx, "list rab item realizations", portsrepo.RealizationFilter{RabItemID: rabItemID}, rabItemID, params)
}

type realizationPage struct {
	items     []domain.Realization
	nextToken *string
}

func (s *realizationService) list(ctx context.Context, op string, filter portsrepo.RealizationFilter, entityID string, params dto.ListRealizationsParams) (*dto.ListRealizationsResponse, error) {
	if err := validateRequest(op, entityID, params); err != nil {
		return nil, err
	}
	if params.Status != "" {
		status := domain.RealizationStatus(params.Status)
		filter.Status = &status
	}
	var nextToken *string
	if params.NextToken != "" {
		nextToken = &params.NextToken
	}
	limit := pagination.NormalizeLimit(params.Limit)

	page, err := retryRead(ctx, &s.BaseService, op, func(ctx context.Context) (realizationPage, error) {
		items, token, err := s.realizationRepo.ListRealizations(ctx, filter, limit, nextToken)
		return realizationPage{items: items, nextToken: token}, err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list realizations", slog.String("op", op), slog.String("entity_id", entityID))
		}
		return nil, err
	}

	return &dto.ListRealizationsResponse{
		Realizations: dto.ToRealizationResponses(page.items),
		NextToken:    page.nextToken,
	}, nil
}
