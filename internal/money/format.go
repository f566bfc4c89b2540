package money

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatINR renders an amount as Indian rupees with Indian digit grouping
// (last three digits, then groups of two). Paise are shown only when the
// amount is fractional. Amounts are rounded to paise first so the rupee and
// paise parts always come from the same value.
func FormatINR(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	abs := amount.Abs().Round(2)

	whole := abs.Truncate(0)
	frac := abs.Sub(whole)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteRune('₹')
	b.WriteString(groupIndian(whole.StringFixed(0)))
	if !frac.IsZero() {
		fixed := abs.StringFixed(2)
		b.WriteString(fixed[strings.IndexByte(fixed, '.'):])
	}
	return b.String()
}

// groupIndian inserts commas per the Indian numbering system: 1234567
// becomes 12,34,567.
func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	head := digits[:n-3]
	tail := digits[n-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	parts = append(parts, tail)
	return strings.Join(parts, ",")
}

// FormatDate renders a timestamp as "DD Mon YYYY", the display format used
// on printed documents.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02 Jan 2006")
}
