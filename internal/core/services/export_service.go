package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/SscSPs/rab_realization_app/internal/apperrors"
	"github.com/SscSPs/rab_realization_app/internal/core/domain"
	portsrepo "github.com/SscSPs/rab_realization_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rab_realization_app/internal/core/ports/services"
)

const (
	realizationSheet = "Realizations"
	summarySheet     = "Summary"
)

var realizationHeaders = []string{
	"Transaction Date",
	"RAB Item",
	"Vendor",
	"Invoice Number",
	"Payment Method",
	"Quantity",
	"Unit Price",
	"Total Amount",
	"Budget Unit Price",
	"Variance Amount",
	"Variance %",
	"Status",
	"Notes",
}

var summaryHeaders = []string{
	"RAB Item",
	"Description",
	"Budget Total",
	"Total Realized",
	"Remaining Budget",
	"Entries",
	"Avg Variance %",
}

// exportService renders project realizations into XLSX workbooks.
type exportService struct {
	BaseService
	realizationRepo portsrepo.RealizationReader
	reportingSvc    portssvc.ReportingSvc
}

// NewExportService creates a new export service.
func NewExportService(realizationRepo portsrepo.RealizationReader, reportingSvc portssvc.ReportingSvc, options ...ServiceOption) portssvc.ExportSvc {
	return &exportService{
		BaseService:     newBaseService(options...),
		realizationRepo: realizationRepo,
		reportingSvc:    reportingSvc,
	}
}

var _ portssvc.ExportSvc = (*exportService)(nil)

// ExportProjectRealizationsXLSX writes one row per live realization and a per-item summary sheet.
func (s *exportService) ExportProjectRealizationsXLSX(ctx context.Context, projectID string) ([]byte, error) {
	const op = "export project realizations"
	start := time.Now()

	// Resolves the project, so an unknown id fails before any workbook work.
	summary, err := s.reportingSvc.SummarizeByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	realizations, err := retryRead(ctx, &s.BaseService, op, func(ctx context.Context) ([]domain.Realization, error) {
		return s.realizationRepo.ListAllRealizationsByProject(ctx, projectID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to load realizations for export", slog.String("project_id", projectID))
		return nil, err
	}

	itemNames := make(map[string]string, len(summary.Items))
	for _, item := range summary.Items {
		itemNames[item.RabItemID] = item.Description
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", realizationSheet); err != nil {
		return nil, apperrors.NewInternalError(op, projectID, err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, apperrors.NewInternalError(op, projectID, err)
	}

	if err := writeRow(f, realizationSheet, 1, toCells(realizationHeaders)); err != nil {
		return nil, apperrors.NewInternalError(op, projectID, err)
	}
	for i, r := range realizations {
		name := itemNames[r.RabItemID]
		if name == "" {
			name = r.RabItemID
		}
		row := []any{
			r.TransactionDate.Format("2006-01-02"),
			name,
			r.VendorName,
			r.InvoiceNumber,
			r.PaymentMethod,
			r.Quantity.InexactFloat64(),
			r.UnitPrice.InexactFloat64(),
			r.TotalAmount.InexactFloat64(),
			optionalNumber(r.BudgetUnitPrice),
			optionalNumber(r.VarianceAmount),
			optionalNumber(r.VariancePercentage),
			string(r.Status),
			r.Notes,
		}
		if err := writeRow(f, realizationSheet, i+2, row); err != nil {
			return nil, apperrors.NewInternalError(op, projectID, err)
		}
	}

	if err := writeRow(f, summarySheet, 1, toCells(summaryHeaders)); err != nil {
		return nil, apperrors.NewInternalError(op, projectID, err)
	}
	rowIdx := 2
	for _, item := range summary.Items {
		if err := writeRow(f, summarySheet, rowIdx, summaryRow(item.RabItemID, item.Description, item.RealizationSummary)); err != nil {
			return nil, apperrors.NewInternalError(op, projectID, err)
		}
		rowIdx++
	}
	if err := writeRow(f, summarySheet, rowIdx, summaryRow("", "Project total", summary.RealizationSummary)); err != nil {
		return nil, apperrors.NewInternalError(op, projectID, err)
	}

	_ = f.SetColWidth(realizationSheet, "A", "A", 14)
	_ = f.SetColWidth(realizationSheet, "B", "B", 36)
	_ = f.SetColWidth(realizationSheet, "C", "E", 20)
	_ = f.SetColWidth(realizationSheet, "F", "K", 16)
	_ = f.SetColWidth(realizationSheet, "M", "M", 48)
	_ = f.SetColWidth(summarySheet, "A", "B", 36)
	_ = f.SetColWidth(summarySheet, "C", "G", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, apperrors.NewInternalError(op, projectID, fmt.Errorf("xlsx write: %w", err))
	}

	s.LogInfo(ctx, "Project realizations exported",
		slog.String("project_id", projectID),
		slog.Int("rows", len(realizations)),
		slog.Int64("elapsed_ms", time.Since(start).Milliseconds()))
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func toCells(headers []string) []any {
	cells := make([]any, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	return cells
}

func summaryRow(id, description string, s domain.RealizationSummary) []any {
	return []any{
		id,
		description,
		s.BudgetTotal.InexactFloat64(),
		s.TotalRealized.InexactFloat64(),
		s.RemainingBudget.InexactFloat64(),
		s.Count,
		s.AvgVariancePct.InexactFloat64(),
	}
}

// optionalNumber leaves the cell empty when the value is unknown.
func optionalNumber(d *decimal.Decimal) any {
	if d == nil {
		return ""
	}
	return d.InexactFloat64()
}
