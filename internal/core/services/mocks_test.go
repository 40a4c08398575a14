package services_test

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/rab_realization_app/internal/core/domain"
	portsrepo "github.com/SscSPs/rab_realization_app/internal/core/ports/repositories"
	"github.com/SscSPs/rab_realization_app/internal/storage"
)

// --- Mock RealizationRepository ---
type MockRealizationRepository struct {
	mock.Mock
}

var _ portsrepo.RealizationRepositoryFacade = (*MockRealizationRepository)(nil)

func (m *MockRealizationRepository) SaveRealization(ctx context.Context, realization domain.Realization) error {
	args := m.Called(ctx, realization)
	return args.Error(0)
}

func (m *MockRealizationRepository) FindRealizationByID(ctx context.Context, realizationID string) (*domain.Realization, error) {
	args := m.Called(ctx, realizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Realization), args.Error(1)
}

func (m *MockRealizationRepository) ListRealizations(ctx context.Context, filter portsrepo.RealizationFilter, limit int, nextToken *string) ([]domain.Realization, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Realization), returnedNextToken, args.Error(2)
}

func (m *MockRealizationRepository) ListAllRealizationsByProject(ctx context.Context, projectID string) ([]domain.Realization, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Realization), args.Error(1)
}

func (m *MockRealizationRepository) ListApprovalRecords(ctx context.Context, realizationID string) ([]domain.ApprovalRecord, error) {
	args := m.Called(ctx, realizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApprovalRecord), args.Error(1)
}

func (m *MockRealizationRepository) UpdateRealization(ctx context.Context, realization domain.Realization, expectedVersion int64, expectedStatus domain.RealizationStatus, record *domain.ApprovalRecord) error {
	args := m.Called(ctx, realization, expectedVersion, expectedStatus, record)
	return args.Error(0)
}

func (m *MockRealizationRepository) SoftDeleteRealization(ctx context.Context, realizationID string, expectedVersion int64, deletedBy string, deletedAt time.Time) error {
	args := m.Called(ctx, realizationID, expectedVersion, deletedBy, deletedAt)
	return args.Error(0)
}

// --- Mock RabItemRepository ---
type MockRabItemRepository struct {
	mock.Mock
}

var _ portsrepo.RabItemReader = (*MockRabItemRepository)(nil)

func (m *MockRabItemRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockRabItemRepository) FindRabItemByID(ctx context.Context, rabItemID string) (*domain.RabItem, error) {
	args := m.Called(ctx, rabItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RabItem), args.Error(1)
}

// --- Mock DocumentRepository ---
type MockDocumentRepository struct {
	mock.Mock
}

var _ portsrepo.DocumentRepositoryFacade = (*MockDocumentRepository)(nil)

func (m *MockDocumentRepository) SaveDocument(ctx context.Context, document domain.RealizationDocument) error {
	args := m.Called(ctx, document)
	return args.Error(0)
}

func (m *MockDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.RealizationDocument, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RealizationDocument), args.Error(1)
}

func (m *MockDocumentRepository) ListDocumentsByRealization(ctx context.Context, realizationID string) ([]domain.RealizationDocument, error) {
	args := m.Called(ctx, realizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RealizationDocument), args.Error(1)
}

func (m *MockDocumentRepository) SoftDeleteDocument(ctx context.Context, documentID string, deletedAt time.Time) error {
	args := m.Called(ctx, documentID, deletedAt)
	return args.Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepositoryFacade = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) AggregateByRabItem(ctx context.Context, rabItemID string) (*domain.RealizationAggregate, error) {
	args := m.Called(ctx, rabItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RealizationAggregate), args.Error(1)
}

func (m *MockReportingRepository) AggregateByProject(ctx context.Context, projectID string) ([]domain.RealizationAggregate, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RealizationAggregate), args.Error(1)
}

// --- Mock FileStore ---
type MockFileStore struct {
	mock.Mock
	saved map[string][]byte
}

var _ storage.FileStore = (*MockFileStore)(nil)

func (m *MockFileStore) Save(ctx context.Context, objectKey, contentType string, content io.Reader) error {
	data, readErr := io.ReadAll(content)
	args := m.Called(ctx, objectKey, contentType)
	if readErr != nil {
		return readErr
	}
	if args.Error(0) == nil {
		if m.saved == nil {
			m.saved = make(map[string][]byte)
		}
		m.saved[objectKey] = data
	}
	return args.Error(0)
}

func (m *MockFileStore) Delete(ctx context.Context, objectKey string) error {
	args := m.Called(ctx, objectKey)
	return args.Error(0)
}

func (m *MockFileStore) Close() error {
	return nil
}
