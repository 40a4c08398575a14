package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RealizationStatus is the approval state of a realization entry.
type RealizationStatus string

const (
	StatusDraft         RealizationStatus = "draft"
	StatusPendingReview RealizationStatus = "pending_review"
	StatusApproved      RealizationStatus = "approved"
	StatusRejected      RealizationStatus = "rejected"
)

// IsValid reports whether s is one of the known statuses.
func (s RealizationStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPendingReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsEditable reports whether quantities and metadata may still change.
func (s RealizationStatus) IsEditable() bool {
	return s == StatusDraft || s == StatusRejected
}

// ApprovalAction names a user-triggered transition.
type ApprovalAction string

const (
	ActionSubmit   ApprovalAction = "submit"
	ActionApprove  ApprovalAction = "approve"
	ActionReject   ApprovalAction = "reject"
	ActionResubmit ApprovalAction = "resubmit"
)

// transitions maps each action to the single status it may start from and the status it produces.
var transitions = map[ApprovalAction]struct {
	from RealizationStatus
	to   RealizationStatus
}{
	ActionSubmit:   {from: StatusDraft, to: StatusPendingReview},
	ActionApprove:  {from: StatusPendingReview, to: StatusApproved},
	ActionReject:   {from: StatusPendingReview, to: StatusRejected},
	ActionResubmit: {from: StatusRejected, to: StatusDraft},
}

// NextStatus returns the status reached by applying action to current.
// ok is false when the action is unknown or not permitted from current.
func NextStatus(current RealizationStatus, action ApprovalAction) (next RealizationStatus, ok bool) {
	t, found := transitions[action]
	if !found || t.from != current {
		return "", false
	}
	return t.to, true
}

// RequiredStatus returns the status action must start from.
func RequiredStatus(action ApprovalAction) RealizationStatus {
	return transitions[action].from
}

// Realization is one actual expenditure recorded against a RAB item.
type Realization struct {
	RealizationID      string             `json:"realizationID"`
	ProjectID          string             `json:"projectID"`
	RabItemID          string             `json:"rabItemID"`
	TransactionDate    time.Time          `json:"transactionDate"`
	Quantity           decimal.Decimal    `json:"quantity"`
	UnitPrice          decimal.Decimal    `json:"unitPrice"`
	TotalAmount        decimal.Decimal    `json:"totalAmount"` // Always Quantity * UnitPrice
	VendorName         string             `json:"vendorName"`
	InvoiceNumber      string             `json:"invoiceNumber"`
	PaymentMethod      string             `json:"paymentMethod"`
	Notes              string             `json:"notes"`
	BudgetUnitPrice    *decimal.Decimal   `json:"budgetUnitPrice"` // Snapshot of the RAB unit price at creation
	VarianceAmount     *decimal.Decimal   `json:"varianceAmount"`
	VariancePercentage *decimal.Decimal   `json:"variancePercentage"` // Scale 2
	Status             RealizationStatus  `json:"status"`
	ApprovedBy         *string            `json:"approvedBy"`
	ApprovedAt         *time.Time         `json:"approvedAt"`
	RejectionReason    *string            `json:"rejectionReason"`
	DeletedAt          *time.Time         `json:"deletedAt,omitempty"`
	DeletedBy          *string            `json:"deletedBy,omitempty"`
	AuditFields
}

// IsDeleted reports whether the entry has been tombstoned.
func (r Realization) IsDeleted() bool {
	return r.DeletedAt != nil
}

// ApprovalRecord is one entry of a realization's transition history.
type ApprovalRecord struct {
	ApprovalID    string            `json:"approvalID"`
	RealizationID string            `json:"realizationID"`
	Action        ApprovalAction    `json:"action"`
	FromStatus    RealizationStatus `json:"fromStatus"`
	ToStatus      RealizationStatus `json:"toStatus"`
	ActorID       string            `json:"actorID"`
	Reason        *string           `json:"reason"`
	ActedAt       time.Time         `json:"actedAt"`
}
