package handlers_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/rab_realization_app/internal/core/domain"
	portssvc "github.com/SscSPs/rab_realization_app/internal/core/ports/services"
	"github.com/SscSPs/rab_realization_app/internal/dto"
)

type MockRealizationService struct {
	mock.Mock
}

func (m *MockRealizationService) GetRealization(ctx context.Context, realizationID string) (*domain.Realization, error) {
	args := m.Called(ctx, realizationID)
	r, _ := args.Get(0).(*domain.Realization)
	return r, args.Error(1)
}

func (m *MockRealizationService) ListRealizationsByProject(ctx context.Context, projectID string, params dto.ListRealizationsParams) (*dto.ListRealizationsResponse, error) {
	args := m.Called(ctx, projectID, params)
	r, _ := args.Get(0).(*dto.ListRealizationsResponse)
	return r, args.Error(1)
}

func (m *MockRealizationService) ListRealizationsByRabItem(ctx context.Context, rabItemID string, params dto.ListRealizationsParams) (*dto.ListRealizationsResponse, error) {
	args := m.Called(ctx, rabItemID, params)
	r, _ := args.Get(0).(*dto.ListRealizationsResponse)
	return r, args.Error(1)
}

func (m *MockRealizationService) CreateRealization(ctx context.Context, req dto.CreateRealizationRequest, creatorUserID string) (*domain.Realization, error) {
	args := m.Called(ctx, req, creatorUserID)
	r, _ := args.Get(0).(*domain.Realization)
	return r, args.Error(1)
}

func (m *MockRealizationService) UpdateRealization(ctx context.Context, realizationID string, req dto.UpdateRealizationRequest, userID string) (*domain.Realization, error) {
	args := m.Called(ctx, realizationID, req, userID)
	r, _ := args.Get(0).(*domain.Realization)
	return r, args.Error(1)
}

func (m *MockRealizationService) DeleteRealization(ctx context.Context, realizationID string, userID string) error {
	return m.Called(ctx, realizationID, userID).Error(0)
}

type MockApprovalService struct {
	mock.Mock
}

func (m *MockApprovalService) Submit(ctx context.Context, realizationID string, userID string) (*domain.Realization, error) {
	args := m.Called(ctx, realizationID, userID)
	r, _ := args.Get(0).(*domain.Realization)
	return r, args.Error(1)
}

func (m *MockApprovalService) Approve(ctx context.Context, realizationID string, approverID string) (*domain.Realization, error) {
	args := m.Called(ctx, realizationID, approverID)
	r, _ := args.Get(0).(*domain.Realization)
	return r, args.Error(1)
}

func (m *MockApprovalService) Reject(ctx context.Context, realizationID string, approverID string, reason string) (*domain.Realization, error) {
	args := m.Called(ctx, realizationID, approverID, reason)
	r, _ := args.Get(0).(*domain.Realization)
	return r, args.Error(1)
}

func (m *MockApprovalService) Resubmit(ctx context.Context, realizationID string, userID string) (*domain.Realization, error) {
	args := m.Called(ctx, realizationID, userID)
	r, _ := args.Get(0).(*domain.Realization)
	return r, args.Error(1)
}

func (m *MockApprovalService) ListApprovalHistory(ctx context.Context, realizationID string) ([]domain.ApprovalRecord, error) {
	args := m.Called(ctx, realizationID)
	r, _ := args.Get(0).([]domain.ApprovalRecord)
	return r, args.Error(1)
}

type MockDocumentService struct {
	mock.Mock
	uploaded []byte
}

func (m *MockDocumentService) AttachDocument(ctx context.Context, realizationID string, req dto.AttachDocumentRequest, uploaderID string) (*domain.RealizationDocument, error) {
	args := m.Called(ctx, realizationID, req, uploaderID)
	r, _ := args.Get(0).(*domain.RealizationDocument)
	return r, args.Error(1)
}

func (m *MockDocumentService) UploadDocument(ctx context.Context, realizationID string, file portssvc.UploadedFile, form dto.UploadDocumentForm, uploaderID string) (*domain.RealizationDocument, error) {
	m.uploaded, _ = io.ReadAll(file.Content)
	args := m.Called(ctx, realizationID, file.FileName, form, uploaderID)
	r, _ := args.Get(0).(*domain.RealizationDocument)
	return r, args.Error(1)
}

func (m *MockDocumentService) ListDocuments(ctx context.Context, realizationID string) ([]domain.RealizationDocument, error) {
	args := m.Called(ctx, realizationID)
	r, _ := args.Get(0).([]domain.RealizationDocument)
	return r, args.Error(1)
}

func (m *MockDocumentService) DeleteDocument(ctx context.Context, documentID string, userID string) error {
	return m.Called(ctx, documentID, userID).Error(0)
}

type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) SummarizeByRabItem(ctx context.Context, rabItemID string) (*domain.RabItemSummary, error) {
	args := m.Called(ctx, rabItemID)
	r, _ := args.Get(0).(*domain.RabItemSummary)
	return r, args.Error(1)
}

func (m *MockReportingService) SummarizeByProject(ctx context.Context, projectID string) (*domain.ProjectSummary, error) {
	args := m.Called(ctx, projectID)
	r, _ := args.Get(0).(*domain.ProjectSummary)
	return r, args.Error(1)
}

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportProjectRealizationsXLSX(ctx context.Context, projectID string) ([]byte, error) {
	args := m.Called(ctx, projectID)
	r, _ := args.Get(0).([]byte)
	return r, args.Error(1)
}
