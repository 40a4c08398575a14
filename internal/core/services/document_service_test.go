package services_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/rab_realization_app/internal/apperrors"
	"github.com/SscSPs/rab_realization_app/internal/core/domain"
	portssvc "github.com/SscSPs/rab_realization_app/internal/core/ports/services"
	"github.com/SscSPs/rab_realization_app/internal/core/services"
	"github.com/SscSPs/rab_realization_app/internal/dto"
)

var samplePDF = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

type DocumentServiceTestSuite struct {
	suite.Suite
	documentRepo    *MockDocumentRepository
	realizationRepo *MockRealizationRepository
	fileStore       *MockFileStore
	service         portssvc.DocumentSvc
	ctx             context.Context
}

func (s *DocumentServiceTestSuite) SetupTest() {
	s.documentRepo = new(MockDocumentRepository)
	s.realizationRepo = new(MockRealizationRepository)
	s.fileStore = new(MockFileStore)
	s.service = services.NewDocumentService(s.documentRepo, s.realizationRepo, s.fileStore, 1024,
		services.WithClock(func() time.Time { return fixedNow }))
	s.ctx = context.Background()
}

func TestDocumentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}

func (s *DocumentServiceTestSuite) expectRealization(id string) {
	s.realizationRepo.On("FindRealizationByID", mock.Anything, id).Return(storedRealization(id, domain.StatusApproved), nil)
}

func (s *DocumentServiceTestSuite) TestAttachDocument_DefaultsClassification() {
	s.expectRealization("r-1")
	s.documentRepo.On("SaveDocument", mock.Anything, mock.MatchedBy(func(d domain.RealizationDocument) bool {
		return d.RealizationID == "r-1" && d.DocumentType == domain.DocumentOther && d.UploadedBy == "user-1"
	})).Return(nil)

	doc, err := s.service.AttachDocument(s.ctx, "r-1", dto.AttachDocumentRequest{
		FileName:    "invoice.pdf",
		StoragePath: "uploads/invoice.pdf",
		MimeType:    "application/pdf",
		SizeBytes:   2048,
	}, "user-1")

	s.Require().NoError(err)
	s.Equal(domain.DocumentOther, doc.DocumentType)
	s.Equal(fixedNow, doc.UploadedAt)
	s.NotEmpty(doc.DocumentID)
	s.documentRepo.AssertExpectations(s.T())
}

// Scenario E: attaching to an unknown realization writes nothing.
func (s *DocumentServiceTestSuite) TestAttachDocument_UnknownRealization() {
	s.realizationRepo.On("FindRealizationByID", mock.Anything, "missing").
		Return(nil, apperrors.NewOpNotFoundError("find realization", "missing", "no matching row"))

	doc, err := s.service.AttachDocument(s.ctx, "missing", dto.AttachDocumentRequest{
		FileName:    "invoice.pdf",
		StoragePath: "uploads/invoice.pdf",
	}, "user-1")

	s.Nil(doc)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.documentRepo.AssertNotCalled(s.T(), "SaveDocument", mock.Anything, mock.Anything)
}

func (s *DocumentServiceTestSuite) TestAttachDocument_RequiresUploaderAndFields() {
	_, err := s.service.AttachDocument(s.ctx, "r-1", dto.AttachDocumentRequest{FileName: "a.pdf", StoragePath: "a"}, "")
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.service.AttachDocument(s.ctx, "r-1", dto.AttachDocumentRequest{FileName: "a.pdf"}, "user-1")
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.service.AttachDocument(s.ctx, "r-1", dto.AttachDocumentRequest{FileName: "a.pdf", StoragePath: "a", DocumentType: "selfie"}, "user-1")
	s.ErrorIs(err, apperrors.ErrValidation)

	s.documentRepo.AssertNotCalled(s.T(), "SaveDocument", mock.Anything, mock.Anything)
}

func (s *DocumentServiceTestSuite) TestUploadDocument_StoresBytesAndMetadata() {
	s.expectRealization("r-1")
	var storedKey string
	s.fileStore.On("Save", mock.Anything, mock.MatchedBy(func(key string) bool {
		storedKey = key
		return strings.HasPrefix(key, "realizations/r-1/") && strings.HasSuffix(key, ".pdf")
	}), "application/pdf").Return(nil)
	s.documentRepo.On("SaveDocument", mock.Anything, mock.MatchedBy(func(d domain.RealizationDocument) bool {
		return d.StoragePath == storedKey &&
			d.MimeType == "application/pdf" &&
			d.SizeBytes == int64(len(samplePDF)) &&
			d.DocumentType == domain.DocumentInvoice &&
			d.FileName == "faktur.pdf"
	})).Return(nil)

	doc, err := s.service.UploadDocument(s.ctx, "r-1", portssvc.UploadedFile{
		FileName: "../../faktur.pdf",
		Size:     int64(len(samplePDF)),
		Content:  bytes.NewReader(samplePDF),
	}, dto.UploadDocumentForm{DocumentType: domain.DocumentInvoice}, "user-1")

	s.Require().NoError(err)
	s.Equal("realizations/r-1/"+doc.DocumentID+".pdf", doc.StoragePath)
	s.Equal(samplePDF, s.fileStore.saved[doc.StoragePath])
	s.documentRepo.AssertExpectations(s.T())
}

func (s *DocumentServiceTestSuite) TestUploadDocument_RejectsUnsupportedType() {
	s.expectRealization("r-1")

	_, err := s.service.UploadDocument(s.ctx, "r-1", portssvc.UploadedFile{
		FileName: "notes.txt",
		Size:     11,
		Content:  strings.NewReader("hello world"),
	}, dto.UploadDocumentForm{}, "user-1")

	s.ErrorIs(err, apperrors.ErrValidation)
	s.Contains(err.Error(), "unsupported file type")
	s.fileStore.AssertNotCalled(s.T(), "Save", mock.Anything, mock.Anything, mock.Anything)
}

func (s *DocumentServiceTestSuite) TestUploadDocument_RejectsDeclaredOversize() {
	_, err := s.service.UploadDocument(s.ctx, "r-1", portssvc.UploadedFile{
		FileName: "big.pdf",
		Size:     4096,
		Content:  bytes.NewReader(samplePDF),
	}, dto.UploadDocumentForm{}, "user-1")

	s.ErrorIs(err, apperrors.ErrValidation)
	s.realizationRepo.AssertNotCalled(s.T(), "FindRealizationByID", mock.Anything, mock.Anything)
}

func (s *DocumentServiceTestSuite) TestUploadDocument_RejectsStreamBeyondLimit() {
	s.expectRealization("r-1")
	s.fileStore.On("Save", mock.Anything, mock.Anything, "application/pdf").Return(nil)
	s.fileStore.On("Delete", mock.Anything, mock.Anything).Return(nil)

	oversized := append(append([]byte{}, samplePDF...), bytes.Repeat([]byte("0"), 2048)...)
	_, err := s.service.UploadDocument(s.ctx, "r-1", portssvc.UploadedFile{
		FileName: "big.pdf",
		Size:     10, // understated by the client
		Content:  bytes.NewReader(oversized),
	}, dto.UploadDocumentForm{}, "user-1")

	s.ErrorIs(err, apperrors.ErrValidation)
	s.fileStore.AssertCalled(s.T(), "Delete", mock.Anything, mock.Anything)
	s.documentRepo.AssertNotCalled(s.T(), "SaveDocument", mock.Anything, mock.Anything)
}

func (s *DocumentServiceTestSuite) TestUploadDocument_RemovesObjectWhenMetadataFails() {
	s.expectRealization("r-1")
	var storedKey string
	s.fileStore.On("Save", mock.Anything, mock.MatchedBy(func(key string) bool {
		storedKey = key
		return true
	}), "application/pdf").Return(nil)
	s.documentRepo.On("SaveDocument", mock.Anything, mock.Anything).
		Return(apperrors.NewOpNotFoundError("attach document", "r-1", "realization does not exist"))
	s.fileStore.On("Delete", mock.Anything, mock.MatchedBy(func(key string) bool { return key == storedKey })).Return(nil)

	_, err := s.service.UploadDocument(s.ctx, "r-1", portssvc.UploadedFile{
		FileName: "faktur.pdf",
		Size:     int64(len(samplePDF)),
		Content:  bytes.NewReader(samplePDF),
	}, dto.UploadDocumentForm{}, "user-1")

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.fileStore.AssertExpectations(s.T())
}

func (s *DocumentServiceTestSuite) TestUploadDocument_StoreFailure() {
	s.expectRealization("r-1")
	s.fileStore.On("Save", mock.Anything, mock.Anything, "application/pdf").Return(errors.New("bucket unavailable"))
	s.fileStore.On("Delete", mock.Anything, mock.Anything).Return(nil)

	_, err := s.service.UploadDocument(s.ctx, "r-1", portssvc.UploadedFile{
		FileName: "faktur.pdf",
		Size:     int64(len(samplePDF)),
		Content:  bytes.NewReader(samplePDF),
	}, dto.UploadDocumentForm{}, "user-1")

	s.ErrorIs(err, apperrors.ErrInternal)
	s.documentRepo.AssertNotCalled(s.T(), "SaveDocument", mock.Anything, mock.Anything)
}

func (s *DocumentServiceTestSuite) TestListDocuments() {
	s.expectRealization("r-1")
	docs := []domain.RealizationDocument{
		{DocumentID: "d-1", RealizationID: "r-1", UploadedAt: fixedNow.Add(-time.Minute)},
		{DocumentID: "d-2", RealizationID: "r-1", UploadedAt: fixedNow},
	}
	s.documentRepo.On("ListDocumentsByRealization", mock.Anything, "r-1").Return(docs, nil)

	result, err := s.service.ListDocuments(s.ctx, "r-1")

	s.Require().NoError(err)
	s.Equal(docs, result)
}

func (s *DocumentServiceTestSuite) TestListDocuments_UnknownRealization() {
	s.realizationRepo.On("FindRealizationByID", mock.Anything, "missing").
		Return(nil, apperrors.NewOpNotFoundError("find realization", "missing", "no matching row"))

	_, err := s.service.ListDocuments(s.ctx, "missing")

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *DocumentServiceTestSuite) TestDeleteDocument() {
	s.documentRepo.On("FindDocumentByID", mock.Anything, "d-1").Return(&domain.RealizationDocument{DocumentID: "d-1"}, nil)
	s.documentRepo.On("SoftDeleteDocument", mock.Anything, "d-1", fixedNow).Return(nil)

	s.NoError(s.service.DeleteDocument(s.ctx, "d-1", "user-1"))
	s.documentRepo.AssertExpectations(s.T())
	s.fileStore.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything)
}

func (s *DocumentServiceTestSuite) TestDeleteDocument_NotFound() {
	s.documentRepo.On("FindDocumentByID", mock.Anything, "d-9").
		Return(nil, apperrors.NewOpNotFoundError("find document", "d-9", "no matching row"))

	err := s.service.DeleteDocument(s.ctx, "d-9", "user-1")

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.documentRepo.AssertNotCalled(s.T(), "SoftDeleteDocument", mock.Anything, mock.Anything, mock.Anything)
}
