package mapping

import (
	"github.com/SscSPs/rab_realization_app/internal/core/domain"
	"github.com/SscSPs/rab_realization_app/internal/models"
)

// ToModelRealization converts a domain Realization to a model Realization
func ToModelRealization(d domain.Realization) models.Realization {
	return models.Realization{
		RealizationID:      d.RealizationID,
		ProjectID:          d.ProjectID,
		RabItemID:          d.RabItemID,
		TransactionDate:    d.TransactionDate,
		Quantity:           d.Quantity,
		UnitPrice:          d.UnitPrice,
		TotalAmount:        d.TotalAmount,
		VendorName:         nullableString(d.VendorName),
		InvoiceNumber:      nullableString(d.InvoiceNumber),
		PaymentMethod:      nullableString(d.PaymentMethod),
		Notes:              nullableString(d.Notes),
		BudgetUnitPrice:    d.BudgetUnitPrice,
		VarianceAmount:     d.VarianceAmount,
		VariancePercentage: d.VariancePercentage,
		Status:             string(d.Status),
		ApprovedBy:         d.ApprovedBy,
		ApprovedAt:         d.ApprovedAt,
		RejectionReason:    d.RejectionReason,
		DeletedAt:          d.DeletedAt,
		DeletedBy:          d.DeletedBy,
		AuditFields:        models.AuditFields(d.AuditFields),
	}
}

// ToDomainRealization converts a model Realization to a domain Realization
func ToDomainRealization(m models.Realization) domain.Realization {
	return domain.Realization{
		RealizationID:      m.RealizationID,
		ProjectID:          m.ProjectID,
		RabItemID:          m.RabItemID,
		TransactionDate:    m.TransactionDate,
		Quantity:           m.Quantity,
		UnitPrice:          m.UnitPrice,
		TotalAmount:        m.TotalAmount,
		VendorName:         stringValue(m.VendorName),
		InvoiceNumber:      stringValue(m.InvoiceNumber),
		PaymentMethod:      stringValue(m.PaymentMethod),
		Notes:              stringValue(m.Notes),
		BudgetUnitPrice:    m.BudgetUnitPrice,
		VarianceAmount:     m.VarianceAmount,
		VariancePercentage: m.VariancePercentage,
		Status:             domain.RealizationStatus(m.Status),
		ApprovedBy:         m.ApprovedBy,
		ApprovedAt:         m.ApprovedAt,
		RejectionReason:    m.RejectionReason,
		DeletedAt:          m.DeletedAt,
		DeletedBy:          m.DeletedBy,
		AuditFields:        domain.AuditFields(m.AuditFields),
	}
}

// ToDomainRealizationSlice converts a slice of model Realizations to domain Realizations
func ToDomainRealizationSlice(ms []models.Realization) []domain.Realization {
	ds := make([]domain.Realization, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRealization(m)
	}
	return ds
}

// ToModelDocument converts a domain RealizationDocument to its row shape
func ToModelDocument(d domain.RealizationDocument) models.RealizationDocument {
	return models.RealizationDocument{
		DocumentID:    d.DocumentID,
		RealizationID: d.RealizationID,
		FileName:      d.FileName,
		StoragePath:   d.StoragePath,
		MimeType:      nullableString(d.MimeType),
		SizeBytes:     d.SizeBytes,
		DocumentType:  string(d.DocumentType),
		Description:   nullableString(d.Description),
		UploadedBy:    d.UploadedBy,
		UploadedAt:    d.UploadedAt,
		DeletedAt:     d.DeletedAt,
	}
}

// ToDomainDocument converts a document row to a domain RealizationDocument
func ToDomainDocument(m models.RealizationDocument) domain.RealizationDocument {
	return domain.RealizationDocument{
		DocumentID:    m.DocumentID,
		RealizationID: m.RealizationID,
		FileName:      m.FileName,
		StoragePath:   m.StoragePath,
		MimeType:      stringValue(m.MimeType),
		SizeBytes:     m.SizeBytes,
		DocumentType:  domain.DocumentType(m.DocumentType),
		Description:   stringValue(m.Description),
		UploadedBy:    m.UploadedBy,
		UploadedAt:    m.UploadedAt,
		DeletedAt:     m.DeletedAt,
	}
}

// ToModelApproval converts a domain ApprovalRecord to its row shape
func ToModelApproval(d domain.ApprovalRecord) models.RealizationApproval {
	return models.RealizationApproval{
		ApprovalID:    d.ApprovalID,
		RealizationID: d.RealizationID,
		Action:        string(d.Action),
		FromStatus:    string(d.FromStatus),
		ToStatus:      string(d.ToStatus),
		ActorID:       d.ActorID,
		Reason:        d.Reason,
		ActedAt:       d.ActedAt,
	}
}

// ToDomainApproval converts an approval row to a domain ApprovalRecord
func ToDomainApproval(m models.RealizationApproval) domain.ApprovalRecord {
	return domain.ApprovalRecord{
		ApprovalID:    m.ApprovalID,
		RealizationID: m.RealizationID,
		Action:        domain.ApprovalAction(m.Action),
		FromStatus:    domain.RealizationStatus(m.FromStatus),
		ToStatus:      domain.RealizationStatus(m.ToStatus),
		ActorID:       m.ActorID,
		Reason:        m.Reason,
		ActedAt:       m.ActedAt,
	}
}

// ToDomainRabItem converts a project_rab row to a domain RabItem
func ToDomainRabItem(m models.RabItem) domain.RabItem {
	return domain.RabItem{
		RabItemID:       m.RabItemID,
		ProjectID:       m.ProjectID,
		Description:     m.Description,
		Category:        stringValue(m.Category),
		Unit:            stringValue(m.Unit),
		PlannedQuantity: m.PlannedQuantity,
		UnitPrice:       m.UnitPrice,
		DeletedAt:       m.DeletedAt,
	}
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
