package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"utsav/internal/domain"
	"utsav/internal/money"
)

// LineItemInput is the DTO for one priced row on a quotation or invoice.
// Amount is never accepted from the caller; it is derived from quantity and
// rate on every save.
type LineItemInput struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	Rate        decimal.Decimal `json:"rate"`
}

// buildLineItems validates inputs and produces line items with derived
// amounts and insertion-order sort keys.
func buildLineItems(inputs []LineItemInput) ([]domain.LineItem, error) {
	items := make([]domain.LineItem, 0, len(inputs))
	for i, in := range inputs {
		if in.Quantity.IsNegative() || in.Rate.IsNegative() {
			return nil, domain.ErrInvalidLineItem
		}
		unit := in.Unit
		if unit == "" {
			unit = domain.DefaultUnit
		}
		items = append(items, domain.LineItem{
			Description: in.Description,
			Quantity:    in.Quantity,
			Unit:        unit,
			Rate:        in.Rate,
			Amount:      money.LineAmount(in.Quantity, in.Rate),
			SortOrder:   i,
		})
	}
	return items, nil
}

// lineAmounts extracts the amount column for subtotal computation.
func lineAmounts(items []domain.LineItem) []decimal.Decimal {
	amounts := make([]decimal.Decimal, len(items))
	for i := range items {
		amounts[i] = items[i].Amount
	}
	return amounts
}

// formatDocNumber renders a human-readable document number, e.g.
// QT-2026-0005 or INV-2026-0012.
func formatDocNumber(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, year, seq)
}
