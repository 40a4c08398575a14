package dto

import (
	"time"

	"github.com/SscSPs/rab_realization_app/internal/core/domain"
)

// AttachDocumentRequest registers an already-stored file against a realization.
type AttachDocumentRequest struct {
	FileName     string              `json:"fileName" binding:"required,max=255"`
	StoragePath  string              `json:"storagePath" binding:"required,max=1024"`
	MimeType     string              `json:"mimeType" binding:"max=127"`
	SizeBytes    int64               `json:"sizeBytes" binding:"gte=0"`
	DocumentType domain.DocumentType `json:"documentType" binding:"omitempty,oneof=invoice receipt photo contract delivery_note other"`
	Description  string              `json:"description"`
}

// UploadDocumentForm is the non-file part of a multipart upload.
type UploadDocumentForm struct {
	DocumentType domain.DocumentType `form:"documentType" binding:"omitempty,oneof=invoice receipt photo contract delivery_note other"`
	Description  string              `form:"description"`
}

// DocumentResponse defines the data returned for a realization document.
type DocumentResponse struct {
	DocumentID    string              `json:"documentID"`
	RealizationID string              `json:"realizationID"`
	FileName      string              `json:"fileName"`
	StoragePath   string              `json:"storagePath"`
	MimeType      string              `json:"mimeType"`
	SizeBytes     int64               `json:"sizeBytes"`
	DocumentType  domain.DocumentType `json:"documentType"`
	Description   string              `json:"description"`
	UploadedBy    string              `json:"uploadedBy"`
	UploadedAt    time.Time           `json:"uploadedAt"`
}

// ListDocumentsResponse wraps a realization's documents.
type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
}

// ToDocumentResponse converts a domain.RealizationDocument to DocumentResponse DTO.
func ToDocumentResponse(d *domain.RealizationDocument) DocumentResponse {
	return DocumentResponse{
		DocumentID:    d.DocumentID,
		RealizationID: d.RealizationID,
		FileName:      d.FileName,
		StoragePath:   d.StoragePath,
		MimeType:      d.MimeType,
		SizeBytes:     d.SizeBytes,
		DocumentType:  d.DocumentType,
		Description:   d.Description,
		UploadedBy:    d.UploadedBy,
		UploadedAt:    d.UploadedAt,
	}
}

// ToListDocumentsResponse converts a slice of documents.
func ToListDocumentsResponse(docs []domain.RealizationDocument) ListDocumentsResponse {
	res := make([]DocumentResponse, len(docs))
	for i := range docs {
		res[i] = ToDocumentResponse(&docs[i])
	}
	return ListDocumentsResponse{Documents: res}
}
