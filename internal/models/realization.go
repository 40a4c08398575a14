package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Realization is the row shape of rab_realizations.
type Realization struct {
	RealizationID      string           `json:"realizationID"`      // Primary Key (UUID)
	ProjectID          string           `json:"projectID"`          // FK -> projects.project_id
	RabItemID          string           `json:"rabItemID"`          // FK -> project_rab.rab_item_id
	TransactionDate    time.Time        `json:"transactionDate"`    // DATE
	Quantity           decimal.Decimal  `json:"quantity"`           // NUMERIC(18,4)
	UnitPrice          decimal.Decimal  `json:"unitPrice"`          // NUMERIC(18,2)
	TotalAmount        decimal.Decimal  `json:"totalAmount"`        // NUMERIC(36,6)
	VendorName         *string          `json:"vendorName"`         // Nullable
	InvoiceNumber      *string          `json:"invoiceNumber"`      // Nullable
	PaymentMethod      *string          `json:"paymentMethod"`      // Nullable
	Notes              *string          `json:"notes"`              // Nullable
	BudgetUnitPrice    *decimal.Decimal `json:"budgetUnitPrice"`    // Nullable
	VarianceAmount     *decimal.Decimal `json:"varianceAmount"`     // Nullable
	VariancePercentage *decimal.Decimal `json:"variancePercentage"` // Nullable NUMERIC(24,2)
	Status             string           `json:"status"`
	ApprovedBy         *string          `json:"approvedBy"`
	ApprovedAt         *time.Time       `json:"approvedAt"`
	RejectionReason    *string          `json:"rejectionReason"`
	DeletedAt          *time.Time       `json:"deletedAt"`
	DeletedBy          *string          `json:"deletedBy"`
	AuditFields
}

// RealizationDocument is the row shape of realization_documents.
type RealizationDocument struct {
	DocumentID    string     `json:"documentID"`
	RealizationID string     `json:"realizationID"`
	FileName      string     `json:"fileName"`
	StoragePath   string     `json:"storagePath"`
	MimeType      *string    `json:"mimeType"`
	SizeBytes     int64      `json:"sizeBytes"`
	DocumentType  string     `json:"documentType"`
	Description   *string    `json:"description"`
	UploadedBy    string     `json:"uploadedBy"`
	UploadedAt    time.Time  `json:"uploadedAt"`
	DeletedAt     *time.Time `json:"deletedAt"`
}

// RealizationApproval is the row shape of realization_approvals.
type RealizationApproval struct {
	ApprovalID    string    `json:"approvalID"`
	RealizationID string    `json:"realizationID"`
	Action        string    `json:"action"`
	FromStatus    string    `json:"fromStatus"`
	ToStatus      string    `json:"toStatus"`
	ActorID       string    `json:"actorID"`
	Reason        *string   `json:"reason"`
	ActedAt       time.Time `json:"actedAt"`
}
