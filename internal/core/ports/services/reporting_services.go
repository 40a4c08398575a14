package services

import (
	"context"

	"github.com/SscSPs/rab_realization_app/internal/core/domain"
)

// ReportingSvc computes read-only realization summaries.
type ReportingSvc interface {
	// SummarizeByRabItem aggregates the live, non-rejected realizations of a RAB item.
	SummarizeByRabItem(ctx context.Context, rabItemID string) (*domain.RabItemSummary, error)

	// SummarizeByProject aggregates every RAB item of a project.
	SummarizeByProject(ctx context.Context, projectID string) (*domain.ProjectSummary, error)
}

// ExportSvc renders realization data into downloadable files.
type ExportSvc interface {
	// ExportProjectRealizationsXLSX returns an XLSX workbook of a project's realizations.
	ExportProjectRealizationsXLSX(ctx context.Context, projectID string) ([]byte, error)
}
