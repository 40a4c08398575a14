package domain

import "time"

// DocumentType classifies an evidence file.
type DocumentType string

const (
	DocumentInvoice      DocumentType = "invoice"
	DocumentReceipt      DocumentType = "receipt"
	DocumentPhoto        DocumentType = "photo"
	DocumentContract     DocumentType = "contract"
	DocumentDeliveryNote DocumentType = "delivery_note"
	DocumentOther        DocumentType = "other"
)

// IsValid reports whether t is a known classification.
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentInvoice, DocumentReceipt, DocumentPhoto, DocumentContract, DocumentDeliveryNote, DocumentOther:
		return true
	}
	return false
}

// RealizationDocument is evidence attached to exactly one realization.
// Only metadata and the storage path live here; bytes belong to the file store.
type RealizationDocument struct {
	DocumentID    string       `json:"documentID"`
	RealizationID string       `json:"realizationID"`
	FileName      string       `json:"fileName"`
	StoragePath   string       `json:"storagePath"`
	MimeType      string       `json:"mimeType"`
	SizeBytes     int64        `json:"sizeBytes"`
	DocumentType  DocumentType `json:"documentType"`
	Description   string       `json:"description"`
	UploadedBy    string       `json:"uploadedBy"`
	UploadedAt    time.Time    `json:"uploadedAt"`
	DeletedAt     *time.Time   `json:"deletedAt,omitempty"`
}
