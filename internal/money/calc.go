// Package money holds the pure monetary arithmetic for quotations and
// invoices: line amounts, subtotals, GST application, and balance clamping.
// Everything here is stateless; callers recompute eagerly after every
// mutation instead of caching derived figures.
package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// LineAmount derives a line item's amount from its quantity and rate.
func LineAmount(quantity, rate decimal.Decimal) decimal.Decimal {
	return quantity.Mul(rate)
}

// Subtotal sums a list of line amounts.
func Subtotal(amounts []decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range amounts {
		sum = sum.Add(a)
	}
	return sum
}

// TaxRates carries the tax percentages applied to a document. Either the
// flat GST field or the CGST/SGST/IGST split is populated; each non-zero
// rate is applied independently to the same discounted base and summed,
// never compounded.
type TaxRates struct {
	GST  decimal.Decimal `db:"gst_percentage" json:"gst_percentage"`
	CGST decimal.Decimal `db:"cgst_rate" json:"cgst_rate"`
	SGST decimal.Decimal `db:"sgst_rate" json:"sgst_rate"`
	IGST decimal.Decimal `db:"igst_rate" json:"igst_rate"`
}

// TaxPortion is one rate's contribution against the discounted base.
type TaxPortion struct {
	Label  string          `json:"label"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

// Breakdown returns the per-rate tax portions for the given discounted base.
// Zero rates are omitted.
func (t TaxRates) Breakdown(base decimal.Decimal) []TaxPortion {
	labeled := []struct {
		label string
		rate  decimal.Decimal
	}{
		{"GST", t.GST},
		{"CGST", t.CGST},
		{"SGST", t.SGST},
		{"IGST", t.IGST},
	}
	portions := make([]TaxPortion, 0, len(labeled))
	for _, l := range labeled {
		if l.rate.IsZero() {
			continue
		}
		portions = append(portions, TaxPortion{
			Label:  l.label,
			Rate:   l.rate,
			Amount: base.Mul(l.rate).Div(hundred),
		})
	}
	return portions
}

// Sum returns the combined percentage across all configured rates.
func (t TaxRates) Sum() decimal.Decimal {
	return t.GST.Add(t.CGST).Add(t.SGST).Add(t.IGST)
}

// Totals is the derived financial state of a quotation or invoice.
type Totals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	Discount  decimal.Decimal `json:"discount"`
	TaxAmount decimal.Decimal `json:"tax_amount"`
	Total     decimal.Decimal `json:"total"`
}

// Compute derives totals from a subtotal, a flat discount, and tax rates.
// The discount is applied before tax; a discount exceeding subtotal plus tax
// yields a negative total, which is not clamped. Only balances clamp at zero.
func Compute(subtotal, discount decimal.Decimal, rates TaxRates) Totals {
	base := subtotal.Sub(discount)
	tax := decimal.Zero
	for _, p := range rates.Breakdown(base) {
		tax = tax.Add(p.Amount)
	}
	return Totals{
		Subtotal:  subtotal,
		Discount:  discount,
		TaxAmount: tax,
		Total:     base.Add(tax),
	}
}

// BalanceDue clamps the outstanding amount at zero; overpayment never
// produces a negative balance.
func BalanceDue(total, amountPaid decimal.Decimal) decimal.Decimal {
	balance := total.Sub(amountPaid)
	if balance.IsNegative() {
		return decimal.Zero
	}
	return balance
}
