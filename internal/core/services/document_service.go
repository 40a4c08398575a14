package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/SscSPs/rab_realization_app/internal/apperrors"
	"github.com/SscSPs/rab_realization_app/internal/core/domain"
	portsrepo "github.com/SscSPs/rab_realization_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/rab_realization_app/internal/core/ports/services"
	"github.com/SscSPs/rab_realization_app/internal/dto"
	"github.com/SscSPs/rab_realization_app/internal/storage"
)

// sniffLength matches mimetype's default read limit.
const sniffLength = 3072

// allowedUploadTypes are the content types accepted as realization evidence.
var allowedUploadTypes = []string{
	"application/pdf",
	"image/jpeg",
	"image/png",
	"image/webp",
	"image/heic",
	"application/msword",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// documentService manages realization evidence documents.
type documentService struct {
	BaseService
	documentRepo    portsrepo.DocumentRepositoryFacade
	realizationRepo portsrepo.RealizationReader
	fileStore       storage.FileStore
	maxUploadBytes  int64
}

// NewDocumentService creates a new document service. maxUploadBytes <= 0 disables the size check.
func NewDocumentService(documentRepo portsrepo.DocumentRepositoryFacade, realizationRepo portsrepo.RealizationReader, fileStore storage.FileStore, maxUploadBytes int64, options ...ServiceOption) portssvc.DocumentSvc {
	return &documentService{
		BaseService:     newBaseService(options...),
		documentRepo:    documentRepo,
		realizationRepo: realizationRepo,
		fileStore:       fileStore,
		maxUploadBytes:  maxUploadBytes,
	}
}

var _ portssvc.DocumentSvc = (*documentService)(nil)

func (s *documentService) requireRealization(ctx context.Context, realizationID string) error {
	_, err := retryRead(ctx, &s.BaseService, "get realization", func(ctx context.Context) (*domain.Realization, error) {
		return s.realizationRepo.FindRealizationByID(ctx, realizationID)
	})
	return err
}

func documentTypeOrDefault(t domain.DocumentType) domain.DocumentType {
	if t == "" {
		return domain.DocumentOther
	}
	return t
}

func (s *documentService) AttachDocument(ctx context.Context, realizationID string, req dto.AttachDocumentRequest, uploaderID string) (*domain.RealizationDocument, error) {
	const op = "attach document"
	if err := requireActor(op, realizationID, uploaderID); err != nil {
		return nil, err
	}
	if err := validateRequest(op, realizationID, req); err != nil {
		return nil, err
	}
	if err := s.requireRealization(ctx, realizationID); err != nil {
		return nil, err
	}

	document := domain.RealizationDocument{
		DocumentID:    uuid.NewString(),
		RealizationID: realizationID,
		FileName:      filepath.Base(strings.TrimSpace(req.FileName)),
		StoragePath:   strings.TrimSpace(req.StoragePath),
		MimeType:      req.MimeType,
		SizeBytes:     req.SizeBytes,
		DocumentType:  documentTypeOrDefault(req.DocumentType),
		Description:   req.Description,
		UploadedBy:    uploaderID,
		UploadedAt:    s.Now(),
	}

	if err := s.documentRepo.SaveDocument(ctx, document); err != nil {
		s.LogError(ctx, err, "Failed to save document", slog.String("realization_id", realizationID))
		return nil, fmt.Errorf("failed to attach document: %w", err)
	}

	s.LogInfo(ctx, "Document attached",
		slog.String("document_id", document.DocumentID),
		slog.String("realization_id", realizationID))
	return &document, nil
}

// countingReader fails once more than limit bytes have been read.
type countingReader struct {
	r     io.Reader
	n     int64
	limit int64
}

var errUploadTooLarge = errors.New("upload exceeds size limit")

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	if c.limit > 0 && c.n > c.limit {
		return n, errUploadTooLarge
	}
	return n, err
}

func (s *documentService) UploadDocument(ctx context.Context, realizationID string, file portssvc.UploadedFile, form dto.UploadDocumentForm, uploaderID string) (*domain.RealizationDocument, error) {
	const op = "upload document"
	if err := requireActor(op, realizationID, uploaderID); err != nil {
		return nil, err
	}
	if err := validateRequest(op, realizationID, form); err != nil {
		return nil, err
	}
	if file.Content == nil {
		return nil, apperrors.NewValidationError(op, realizationID, "file is required")
	}
	if s.maxUploadBytes > 0 && file.Size > s.maxUploadBytes {
		return nil, apperrors.NewValidationError(op, realizationID,
			fmt.Sprintf("file is %d bytes, limit is %d", file.Size, s.maxUploadBytes))
	}
	if err := s.requireRealization(ctx, realizationID); err != nil {
		return nil, err
	}

	header := make([]byte, sniffLength)
	n, err := io.ReadFull(file.Content, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, apperrors.NewInternalError(op, realizationID, err)
	}
	if n == 0 {
		return nil, apperrors.NewValidationError(op, realizationID, "file is empty")
	}
	header = header[:n]

	detected := mimetype.Detect(header)
	if !isAllowedType(detected) {
		return nil, apperrors.NewValidationError(op, realizationID, "unsupported file type "+detected.String())
	}

	ext := detected.Extension()
	if ext == "" {
		ext = strings.ToLower(filepath.Ext(file.FileName))
	}
	documentID := uuid.NewString()
	objectKey := path.Join("realizations", realizationID, documentID+ext)

	content := &countingReader{
		r:     io.MultiReader(bytes.NewReader(header), file.Content),
		limit: s.maxUploadBytes,
	}
	if err := s.fileStore.Save(ctx, objectKey, detected.String(), content); err != nil {
		s.removeObject(ctx, objectKey)
		if errors.Is(err, errUploadTooLarge) {
			return nil, apperrors.NewValidationError(op, realizationID,
				fmt.Sprintf("file exceeds limit of %d bytes", s.maxUploadBytes))
		}
		s.LogError(ctx, err, "Failed to store document", slog.String("object_key", objectKey))
		return nil, apperrors.NewInternalError(op, realizationID, err)
	}

	fileName := filepath.Base(strings.TrimSpace(file.FileName))
	if fileName == "." || fileName == "/" || fileName == "" {
		fileName = documentID + ext
	}
	document := domain.RealizationDocument{
		DocumentID:    documentID,
		RealizationID: realizationID,
		FileName:      fileName,
		StoragePath:   objectKey,
		MimeType:      detected.String(),
		SizeBytes:     content.n,
		DocumentType:  documentTypeOrDefault(form.DocumentType),
		Description:   form.Description,
		UploadedBy:    uploaderID,
		UploadedAt:    s.Now(),
	}

	if err := s.documentRepo.SaveDocument(ctx, document); err != nil {
		s.removeObject(ctx, objectKey)
		s.LogError(ctx, err, "Failed to save uploaded document", slog.String("realization_id", realizationID))
		return nil, fmt.Errorf("failed to attach uploaded document: %w", err)
	}

	s.LogInfo(ctx, "Document uploaded",
		slog.String("document_id", documentID),
		slog.String("realization_id", realizationID),
		slog.String("mime_type", document.MimeType),
		slog.Int64("size_bytes", document.SizeBytes))
	return &document, nil
}

// isAllowedType matches the detected type or one of its aliases against the allow-list.
func isAllowedType(detected *mimetype.MIME) bool {
	for _, allowed := range allowedUploadTypes {
		if detected.Is(allowed) {
			return true
		}
	}
	return false
}

// removeObject deletes a stored object after a failed upload. It must run even if ctx was cancelled.
func (s *documentService) removeObject(ctx context.Context, objectKey string) {
	if err := s.fileStore.Delete(context.WithoutCancel(ctx), objectKey); err != nil {
		s.LogError(ctx, err, "Failed to remove orphaned document object", slog.String("object_key", objectKey))
	}
}

func (s *documentService) ListDocuments(ctx context.Context, realizationID string) ([]domain.RealizationDocument, error) {
	if err := s.requireRealization(ctx, realizationID); err != nil {
		return nil, err
	}
	documents, err := retryRead(ctx, &s.BaseService, "list documents", func(ctx context.Context) ([]domain.RealizationDocument, error) {
		return s.documentRepo.ListDocumentsByRealization(ctx, realizationID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list documents", slog.String("realization_id", realizationID))
		return nil, err
	}
	return documents, nil
}

func (s *documentService) DeleteDocument(ctx context.Context, documentID string, userID string) error {
	const op = "delete document"
	if err := requireActor(op, documentID, userID); err != nil {
		return err
	}
	if _, err := retryRead(ctx, &s.BaseService, "get document", func(ctx context.Context) (*domain.RealizationDocument, error) {
		return s.documentRepo.FindDocumentByID(ctx, documentID)
	}); err != nil {
		return err
	}

	if err := s.documentRepo.SoftDeleteDocument(ctx, documentID, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to delete document", slog.String("document_id", documentID))
		return fmt.Errorf("failed to delete document: %w", err)
	}

	s.LogInfo(ctx, "Document deleted",
		slog.String("document_id", documentID),
		slog.String("deleted_by", userID))
	return nil
}
