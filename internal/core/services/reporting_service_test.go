package services_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"

	"github.com/SscSPs/rab_realization_app/internal/apperrors"
	"github.com/SscSPs/rab_realization_app/internal/core/domain"
	portssvc "github.com/SscSPs/rab_realization_app/internal/core/ports/services"
	"github.com/SscSPs/rab_realization_app/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	reportingRepo   *MockReportingRepository
	rabItemRepo     *MockRabItemRepository
	realizationRepo *MockRealizationRepository
	service         portssvc.ReportingSvc
	export          portssvc.ExportSvc
	ctx             context.Context
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.reportingRepo = new(MockReportingRepository)
	s.rabItemRepo = new(MockRabItemRepository)
	s.realizationRepo = new(MockRealizationRepository)
	s.service = services.NewReportingService(s.reportingRepo, s.rabItemRepo)
	s.export = services.NewExportService(s.realizationRepo, s.service)
	s.ctx = context.Background()
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Scenario D: an item without realizations has a zeroed summary.
func (s *ReportingServiceTestSuite) TestSummarizeByRabItem_NoRealizations() {
	s.reportingRepo.On("AggregateByRabItem", mock.Anything, "rab-1").Return(&domain.RealizationAggregate{
		RabItemID:           "rab-1",
		Description:         "Beton K-300",
		BudgetTotal:         dec("4500000"),
		TotalRealized:       decimal.Zero,
		WeightedVarianceSum: decimal.Zero,
		VarianceWeight:      decimal.Zero,
	}, nil)

	summary, err := s.service.SummarizeByRabItem(s.ctx, "rab-1")

	s.Require().NoError(err)
	s.True(summary.TotalRealized.IsZero())
	s.Equal(int64(0), summary.Count)
	s.True(summary.AvgVariancePct.IsZero())
	s.True(summary.RemainingBudget.Equal(dec("4500000")))
}

func (s *ReportingServiceTestSuite) TestSummarizeByRabItem_WeightsVarianceByAmount() {
	// 500000 at 11.11% and 100000 at -10.00%, plus one entry with unknown variance.
	s.reportingRepo.On("AggregateByRabItem", mock.Anything, "rab-1").Return(&domain.RealizationAggregate{
		RabItemID:           "rab-1",
		BudgetTotal:         dec("1000000"),
		TotalRealized:       dec("650000"),
		Count:               3,
		WeightedVarianceSum: dec("5555000").Add(dec("-1000000")),
		VarianceWeight:      dec("600000"),
	}, nil)

	summary, err := s.service.SummarizeByRabItem(s.ctx, "rab-1")

	s.Require().NoError(err)
	s.Equal("7.59", summary.AvgVariancePct.StringFixed(2))
	s.Equal(int64(3), summary.Count)
	s.True(summary.RemainingBudget.Equal(dec("350000")))
}

func (s *ReportingServiceTestSuite) TestSummarizeByRabItem_UnknownItem() {
	s.reportingRepo.On("AggregateByRabItem", mock.Anything, "missing").
		Return(nil, apperrors.NewOpNotFoundError("aggregate rab item", "missing", "no matching row"))

	_, err := s.service.SummarizeByRabItem(s.ctx, "missing")

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ReportingServiceTestSuite) projectAggregates() []domain.RealizationAggregate {
	return []domain.RealizationAggregate{
		{
			RabItemID: "rab-1", Description: "Beton K-300",
			BudgetTotal: dec("4500000"), TotalRealized: dec("500000"), Count: 1,
			WeightedVarianceSum: dec("5555000"), VarianceWeight: dec("500000"),
		},
		{
			RabItemID: "rab-2", Description: "Besi Ulir",
			BudgetTotal: dec("2000000"), TotalRealized: decimal.Zero, Count: 0,
			WeightedVarianceSum: decimal.Zero, VarianceWeight: decimal.Zero,
		},
	}
}

func (s *ReportingServiceTestSuite) TestSummarizeByProject_RollsUpItems() {
	s.rabItemRepo.On("FindProjectByID", mock.Anything, "project-1").Return(&domain.Project{ProjectID: "project-1"}, nil)
	s.reportingRepo.On("AggregateByProject", mock.Anything, "project-1").Return(s.projectAggregates(), nil)

	summary, err := s.service.SummarizeByProject(s.ctx, "project-1")

	s.Require().NoError(err)
	s.Equal("project-1", summary.ProjectID)
	s.True(summary.BudgetTotal.Equal(dec("6500000")))
	s.True(summary.TotalRealized.Equal(dec("500000")))
	s.True(summary.RemainingBudget.Equal(dec("6000000")))
	s.Equal(int64(1), summary.Count)
	s.Equal("11.11", summary.AvgVariancePct.StringFixed(2))
	s.Require().Len(summary.Items, 2)
	s.True(summary.Items[1].AvgVariancePct.IsZero())
}

func (s *ReportingServiceTestSuite) TestSummarizeByProject_UnknownProject() {
	s.rabItemRepo.On("FindProjectByID", mock.Anything, "missing").
		Return(nil, apperrors.NewOpNotFoundError("find project", "missing", "no matching row"))

	_, err := s.service.SummarizeByProject(s.ctx, "missing")

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.reportingRepo.AssertNotCalled(s.T(), "AggregateByProject", mock.Anything, mock.Anything)
}

func (s *ReportingServiceTestSuite) TestExportProjectRealizationsXLSX() {
	s.rabItemRepo.On("FindProjectByID", mock.Anything, "project-1").Return(&domain.Project{ProjectID: "project-1"}, nil)
	s.reportingRepo.On("AggregateByProject", mock.Anything, "project-1").Return(s.projectAggregates(), nil)
	noBudget := storedRealization("r-2", domain.StatusDraft)
	noBudget.BudgetUnitPrice = nil
	noBudget.VarianceAmount = nil
	noBudget.VariancePercentage = nil
	s.realizationRepo.On("ListAllRealizationsByProject", mock.Anything, "project-1").
		Return([]domain.Realization{*storedRealization("r-1", domain.StatusApproved), *noBudget}, nil)

	data, err := s.export.ExportProjectRealizationsXLSX(s.ctx, "project-1")
	s.Require().NoError(err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	s.Require().NoError(err)
	defer f.Close()

	s.Equal([]string{"Realizations", "Summary"}, f.GetSheetList())

	rows, err := f.GetRows("Realizations")
	s.Require().NoError(err)
	s.Require().Len(rows, 3)
	s.Equal("Transaction Date", rows[0][0])
	s.Equal("2024-03-01", rows[1][0])
	s.Equal("Beton K-300", rows[1][1])
	s.Equal("500000", rows[1][7])
	s.Equal("11.11", rows[1][10])
	s.Equal("", rows[2][8])

	summaryRows, err := f.GetRows("Summary")
	s.Require().NoError(err)
	s.Require().Len(summaryRows, 4)
	s.Equal("Project total", summaryRows[3][1])
}

func (s *ReportingServiceTestSuite) TestExport_UnknownProject() {
	s.rabItemRepo.On("FindProjectByID", mock.Anything, "missing").
		Return(nil, apperrors.NewOpNotFoundError("find project", "missing", "no matching row"))

	_, err := s.export.ExportProjectRealizationsXLSX(s.ctx, "missing")

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.realizationRepo.AssertNotCalled(s.T(), "ListAllRealizationsByProject", mock.Anything, mock.Anything)
}
