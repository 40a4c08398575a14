package domain

import (
	"github.com/shopspring/decimal"
)

// RealizationAggregate is the raw per-RAB-item aggregate read from the store.
// WeightedVarianceSum is sum(variance_percentage * total_amount) and VarianceWeight
// is sum(total_amount), both over entries with a known variance only.
type RealizationAggregate struct {
	RabItemID           string          `json:"rabItemID"`
	Description         string          `json:"description"`
	BudgetTotal         decimal.Decimal `json:"budgetTotal"`
	TotalRealized       decimal.Decimal `json:"totalRealized"`
	Count               int64           `json:"count"`
	WeightedVarianceSum decimal.Decimal `json:"weightedVarianceSum"`
	VarianceWeight      decimal.Decimal `json:"varianceWeight"`
}

// RealizationSummary is the read-only rollup returned to callers.
type RealizationSummary struct {
	TotalRealized   decimal.Decimal `json:"totalRealized"`
	Count           int64           `json:"count"`
	AvgVariancePct  decimal.Decimal `json:"avgVariancePct"`
	BudgetTotal     decimal.Decimal `json:"budgetTotal"`
	RemainingBudget decimal.Decimal `json:"remainingBudget"`
}

// RabItemSummary is a RealizationSummary for one budget line.
type RabItemSummary struct {
	RabItemID   string `json:"rabItemID"`
	Description string `json:"description"`
	RealizationSummary
}

// ProjectSummary rolls every budget line of a project up into one summary.
type ProjectSummary struct {
	ProjectID string `json:"projectID"`
	RealizationSummary
	Items []RabItemSummary `json:"items"`
}
