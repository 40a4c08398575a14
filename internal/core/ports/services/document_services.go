package services

import (
	"context"
	"io"

	"github.com/SscSPs/rab_realization_app/internal/core/domain"
	"github.com/SscSPs/rab_realization_app/internal/dto"
)

// UploadedFile is the byte content of an upload together with its client-side name.
type UploadedFile struct {
	FileName string
	Size     int64
	Content  io.Reader
}

// DocumentSvc manages evidence documents attached to realizations.
type DocumentSvc interface {
	// AttachDocument registers already-stored file metadata against a realization.
	AttachDocument(ctx context.Context, realizationID string, req dto.AttachDocumentRequest, uploaderID string) (*domain.RealizationDocument, error)

	// UploadDocument stores the file bytes and attaches the resulting metadata.
	UploadDocument(ctx context.Context, realizationID string, file UploadedFile, form dto.UploadDocumentForm, uploaderID string) (*domain.RealizationDocument, error)

	// ListDocuments returns the live documents of a realization ordered by upload time.
	ListDocuments(ctx context.Context, realizationID string) ([]domain.RealizationDocument, error)

	// DeleteDocument soft-deletes a document. Stored bytes are left in place.
	DeleteDocument(ctx context.Context, documentID string, userID string) error
}
