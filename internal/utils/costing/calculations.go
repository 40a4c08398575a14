package costing

import (
	"errors"

	"github.com/shopspring/decimal"
)

const (
	// PercentageScale is the number of decimal places kept on variance percentages.
	PercentageScale int32 = 2
	// QuantityScale and PriceScale are the decimal places accepted on inputs.
	QuantityScale int32 = 4
	PriceScale    int32 = 2
	// AmountScale is enough to hold quantity * price exactly.
	AmountScale = QuantityScale + PriceScale
)

var (
	hundred = decimal.NewFromInt(100)

	// Exclusive upper bounds matching NUMERIC(18,4) and NUMERIC(18,2).
	maxQuantity  = decimal.New(1, 14)
	maxUnitPrice = decimal.New(1, 16)
)

var (
	ErrQuantityScale = errors.New("quantity allows at most 4 decimal places")
	ErrQuantityRange = errors.New("quantity must be less than 100000000000000")
	ErrPriceScale    = errors.New("unit price allows at most 2 decimal places")
	ErrPriceRange    = errors.New("unit price must be less than 10000000000000000")
)

// FitsScale reports whether d carries no more than places fractional digits.
func FitsScale(d decimal.Decimal, places int32) bool {
	return d.Equal(d.Truncate(places))
}

// ValidateInputs checks that quantity and unit price can be stored without rounding.
// Inputs that pass keep Compute's figures exact in the stored columns.
func ValidateInputs(quantity, unitPrice decimal.Decimal) error {
	if !FitsScale(quantity, QuantityScale) {
		return ErrQuantityScale
	}
	if quantity.Abs().GreaterThanOrEqual(maxQuantity) {
		return ErrQuantityRange
	}
	if !FitsScale(unitPrice, PriceScale) {
		return ErrPriceScale
	}
	if unitPrice.Abs().GreaterThanOrEqual(maxUnitPrice) {
		return ErrPriceRange
	}
	return nil
}

// Figures are the derived amounts of a realization entry.
type Figures struct {
	TotalAmount        decimal.Decimal
	VarianceAmount     *decimal.Decimal
	VariancePercentage *decimal.Decimal
}

// Compute derives the total and variance of a realization from its quantity, actual
// unit price and the budget unit price snapshot.
//
// Variance is only set when budgetUnitPrice is known and the budget total
// (budgetUnitPrice * quantity) is non-zero.
func Compute(quantity, unitPrice decimal.Decimal, budgetUnitPrice *decimal.Decimal) Figures {
	total := quantity.Mul(unitPrice)
	figures := Figures{TotalAmount: total}

	if budgetUnitPrice == nil {
		return figures
	}
	budgetTotal := budgetUnitPrice.Mul(quantity)
	if budgetTotal.IsZero() {
		return figures
	}

	varianceAmount := total.Sub(budgetTotal)
	variancePct := varianceAmount.Div(budgetTotal).Mul(hundred).Round(PercentageScale)
	figures.VarianceAmount = &varianceAmount
	figures.VariancePercentage = &variancePct
	return figures
}

// WeightedAverage returns weightedSum / weight rounded to PercentageScale, or zero when weight is zero.
func WeightedAverage(weightedSum, weight decimal.Decimal) decimal.Decimal {
	if weight.IsZero() {
		return decimal.Zero
	}
	return weightedSum.Div(weight).Round(PercentageScale)
}
