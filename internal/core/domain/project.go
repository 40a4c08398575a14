package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project is the construction project a RAB belongs to.
// Owned by the project module; this service only reads it.
type Project struct {
	ProjectID string `json:"projectID"`
	Name      string `json:"name"`
}

// RabItem is a single budget line of a project's RAB (Rencana Anggaran Biaya).
type RabItem struct {
	RabItemID       string          `json:"rabItemID"`
	ProjectID       string          `json:"projectID"`
	Description     string          `json:"description"`
	Category        string          `json:"category"`
	Unit            string          `json:"unit"`
	PlannedQuantity decimal.Decimal `json:"plannedQuantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	DeletedAt       *time.Time      `json:"deletedAt,omitempty"`
}

// BudgetTotal is the planned spend of the line.
func (r RabItem) BudgetTotal() decimal.Decimal {
	return r.PlannedQuantity.Mul(r.UnitPrice)
}
