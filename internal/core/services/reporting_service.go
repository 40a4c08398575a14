package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/rab_realization_app/internal/apperrors"
	"github.com/SscSPs/rab_realization_app/internal/core/domain"
	portsrepo "github.com/SscSPs/rab_realization_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rab_realization_app/internal/core/ports/services"
	"github.com/SscSPs/rab_realization_app/internal/utils/costing"
)

// reportingService implements the ReportingSvc interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepositoryFacade
	rabItemRepo   portsrepo.RabItemReader
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade, rabItemRepo portsrepo.RabItemReader, options ...ServiceOption) portssvc.ReportingSvc {
	return &reportingService{
		BaseService:   newBaseService(options...),
		reportingRepo: reportingRepo,
		rabItemRepo:   rabItemRepo,
	}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

// summarize turns a raw aggregate into the caller-facing summary.
func summarize(a domain.RealizationAggregate) domain.RealizationSummary {
	return domain.RealizationSummary{
		TotalRealized:   a.TotalRealized,
		Count:           a.Count,
		AvgVariancePct:  costing.WeightedAverage(a.WeightedVarianceSum, a.VarianceWeight),
		BudgetTotal:     a.BudgetTotal,
		RemainingBudget: a.BudgetTotal.Sub(a.TotalRealized),
	}
}

// SummarizeByRabItem aggregates the live, non-rejected realizations of one RAB item.
func (s *reportingService) SummarizeByRabItem(ctx context.Context, rabItemID string) (*domain.RabItemSummary, error) {
	aggregate, err := retryRead(ctx, &s.BaseService, "summarize rab item", func(ctx context.Context) (*domain.RealizationAggregate, error) {
		return s.reportingRepo.AggregateByRabItem(ctx, rabItemID)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to aggregate rab item", slog.String("rab_item_id", rabItemID))
		}
		return nil, err
	}

	return &domain.RabItemSummary{
		RabItemID:          aggregate.RabItemID,
		Description:        aggregate.Description,
		RealizationSummary: summarize(*aggregate),
	}, nil
}

// SummarizeByProject rolls every RAB item of a project into one summary plus a per-item breakdown.
func (s *reportingService) SummarizeByProject(ctx context.Context, projectID string) (*domain.ProjectSummary, error) {
	if _, err := retryRead(ctx, &s.BaseService, "find project", func(ctx context.Context) (*domain.Project, error) {
		return s.rabItemRepo.FindProjectByID(ctx, projectID)
	}); err != nil {
		return nil, err
	}

	aggregates, err := retryRead(ctx, &s.BaseService, "summarize project", func(ctx context.Context) ([]domain.RealizationAggregate, error) {
		return s.reportingRepo.AggregateByProject(ctx, projectID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate project", slog.String("project_id", projectID))
		return nil, err
	}

	rollup := domain.RealizationAggregate{
		BudgetTotal:         decimal.Zero,
		TotalRealized:       decimal.Zero,
		WeightedVarianceSum: decimal.Zero,
		VarianceWeight:      decimal.Zero,
	}
	items := make([]domain.RabItemSummary, 0, len(aggregates))
	for _, a := range aggregates {
		rollup.BudgetTotal = rollup.BudgetTotal.Add(a.BudgetTotal)
		rollup.TotalRealized = rollup.TotalRealized.Add(a.TotalRealized)
		rollup.Count += a.Count
		rollup.WeightedVarianceSum = rollup.WeightedVarianceSum.Add(a.WeightedVarianceSum)
		rollup.VarianceWeight = rollup.VarianceWeight.Add(a.VarianceWeight)

		items = append(items, domain.RabItemSummary{
			RabItemID:          a.RabItemID,
			Description:        a.Description,
			RealizationSummary: summarize(a),
		})
	}

	return &domain.ProjectSummary{
		ProjectID:          projectID,
		RealizationSummary: summarize(rollup),
		Items:              items,
	}, nil
}
