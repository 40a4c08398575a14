package dto

import (
	"time"

	"github.com/SscSPs/rab_realization_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRealizationRequest defines the data needed to record a realization.
// Totals and variance are never accepted from the client.
type CreateRealizationRequest struct {
	ProjectID       string           `json:"projectID" binding:"required"`
	RabItemID       string           `json:"rabItemID" binding:"required"`
	TransactionDate time.Time        `json:"transactionDate" binding:"required"`
	Quantity        *decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice       *decimal.Decimal `json:"unitPrice" binding:"required"`
	VendorName      string           `json:"vendorName" binding:"max=255"`
	InvoiceNumber   string           `json:"invoiceNumber" binding:"max=100"`
	PaymentMethod   string           `json:"paymentMethod" binding:"max=50"`
	Notes           string           `json:"notes"`
}

// UpdateRealizationRequest defines the editable fields of a realization.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateRealizationRequest struct {
	TransactionDate *time.Time       `json:"transactionDate"`
	Quantity        *decimal.Decimal `json:"quantity"`
	UnitPrice       *decimal.Decimal `json:"unitPrice"`
	VendorName      *string          `json:"vendorName" binding:"omitempty,max=255"`
	InvoiceNumber   *string          `json:"invoiceNumber" binding:"omitempty,max=100"`
	PaymentMethod   *string          `json:"paymentMethod" binding:"omitempty,max=50"`
	Notes           *string          `json:"notes"`
}

// RejectRealizationRequest carries the mandatory rejection reason.
type RejectRealizationRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ListRealizationsParams defines query parameters for listing realizations.
type ListRealizationsParams struct {
	Limit     int    `form:"limit,default=20"`
	NextToken string `form:"nextToken"`
	Status    string `form:"status" binding:"omitempty,oneof=draft pending_review approved rejected"`
}

// RealizationResponse defines the data returned for a realization.
type RealizationResponse struct {
	RealizationID      string                   `json:"realizationID"`
	ProjectID          string                   `json:"projectID"`
	RabItemID          string                   `json:"rabItemID"`
	TransactionDate    time.Time                `json:"transactionDate"`
	Quantity           decimal.Decimal          `json:"quantity"`
	UnitPrice          decimal.Decimal          `json:"unitPrice"`
	TotalAmount        decimal.Decimal          `json:"totalAmount"`
	VendorName         string                   `json:"vendorName"`
	InvoiceNumber      string                   `json:"invoiceNumber"`
	PaymentMethod      string                   `json:"paymentMethod"`
	Notes              string                   `json:"notes"`
	BudgetUnitPrice    *decimal.Decimal         `json:"budgetUnitPrice"`
	VarianceAmount     *decimal.Decimal         `json:"varianceAmount"`
	VariancePercentage *decimal.Decimal         `json:"variancePercentage"`
	Status             domain.RealizationStatus `json:"status"`
	ApprovedBy         *string                  `json:"approvedBy"`
	ApprovedAt         *time.Time               `json:"approvedAt"`
	RejectionReason    *string                  `json:"rejectionReason"`
	CreatedAt          time.Time                `json:"createdAt"`
	CreatedBy          string                   `json:"createdBy"`
	LastUpdatedAt      time.Time                `json:"lastUpdatedAt"`
	LastUpdatedBy      string                   `json:"lastUpdatedBy"`
}

// ListRealizationsResponse is one page of realizations.
type ListRealizationsResponse struct {
	Realizations []RealizationResponse `json:"realizations"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ApprovalRecordResponse is one transition of a realization's history.
type ApprovalRecordResponse struct {
	ApprovalID string                   `json:"approvalID"`
	Action     domain.ApprovalAction    `json:"action"`
	FromStatus domain.RealizationStatus `json:"fromStatus"`
	ToStatus   domain.RealizationStatus `json:"toStatus"`
	ActorID    string                   `json:"actorID"`
	Reason     *string                  `json:"reason,omitempty"`
	ActedAt    time.Time                `json:"actedAt"`
}

// ToRealizationResponse converts a domain.Realization to RealizationResponse DTO.
func ToRealizationResponse(r *domain.Realization) RealizationResponse {
	return RealizationResponse{
		RealizationID:      r.RealizationID,
		ProjectID:          r.ProjectID,
		RabItemID:          r.RabItemID,
		TransactionDate:    r.TransactionDate,
		Quantity:           r.Quantity,
		UnitPrice:          r.UnitPrice,
		TotalAmount:        r.TotalAmount,
		VendorName:         r.VendorName,
		InvoiceNumber:      r.InvoiceNumber,
		PaymentMethod:      r.PaymentMethod,
		Notes:              r.Notes,
		BudgetUnitPrice:    r.BudgetUnitPrice,
		VarianceAmount:     r.VarianceAmount,
		VariancePercentage: r.VariancePercentage,
		Status:             r.Status,
		ApprovedBy:         r.ApprovedBy,
		ApprovedAt:         r.ApprovedAt,
		RejectionReason:    r.RejectionReason,
		CreatedAt:          r.CreatedAt,
		CreatedBy:          r.CreatedBy,
		LastUpdatedAt:      r.LastUpdatedAt,
		LastUpdatedBy:      r.LastUpdatedBy,
	}
}

// ToRealizationResponses converts a slice of domain.Realization.
func ToRealizationResponses(rs []domain.Realization) []RealizationResponse {
	res := make([]RealizationResponse, len(rs))
	for i := range rs {
		res[i] = ToRealizationResponse(&rs[i])
	}
	return res
}

// ToApprovalRecordResponses converts approval history for the API.
func ToApprovalRecordResponses(records []domain.ApprovalRecord) []ApprovalRecordResponse {
	res := make([]ApprovalRecordResponse, len(records))
	for i, rec := range records {
		res[i] = ApprovalRecordResponse{
			ApprovalID: rec.ApprovalID,
			Action:     rec.Action,
			FromStatus: rec.FromStatus,
			ToStatus:   rec.ToStatus,
			ActorID:    rec.ActorID,
			Reason:     rec.Reason,
			ActedAt:    rec.ActedAt,
		}
	}
	return res
}
