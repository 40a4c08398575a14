package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RabItem is the row shape of project_rab.
type RabItem struct {
	RabItemID       string          `json:"rabItemID"`
	ProjectID       string          `json:"projectID"`
	Description     string          `json:"description"`
	Category        *string         `json:"category"`
	Unit            *string         `json:"unit"`
	PlannedQuantity decimal.Decimal `json:"plannedQuantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	DeletedAt       *time.Time      `json:"deletedAt"`
}

// Project is the row shape of projects.
type Project struct {
	ProjectID string `json:"projectID"`
	Name      string `json:"name"`
}
