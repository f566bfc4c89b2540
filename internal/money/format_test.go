package money

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR_IndianGrouping(t *testing.T) {
	assert.Equal(t, "₹0", FormatINR(d("0")))
	assert.Equal(t, "₹999", FormatINR(d("999")))
	assert.Equal(t, "₹1,000", FormatINR(d("1000")))
	assert.Equal(t, "₹1,23,456", FormatINR(d("123456")))
	assert.Equal(t, "₹12,34,567", FormatINR(d("1234567")))
	assert.Equal(t, "₹1,23,45,678", FormatINR(d("12345678")))
}

func TestFormatINR_Paise(t *testing.T) {
	// Paise appear only for fractional amounts.
	assert.Equal(t, "₹1,500", FormatINR(d("1500.00")))
	assert.Equal(t, "₹1,500.50", FormatINR(d("1500.5")))
	assert.Equal(t, "₹0.75", FormatINR(d("0.75")))
}

func TestFormatINR_RoundingCarriesIntoRupees(t *testing.T) {
	// Sub-paise precision rounds before splitting, so a carry into the
	// rupee column never leaves the grouping behind.
	assert.Equal(t, "₹100", FormatINR(d("99.995")))
	assert.Equal(t, "₹99.99", FormatINR(d("99.994")))
	assert.Equal(t, "₹2,000", FormatINR(d("1999.999")))
	assert.Equal(t, "₹1,00,000", FormatINR(d("99999.996")))
	assert.Equal(t, "₹10.62", FormatINR(d("10.6155")))
}

func TestFormatINR_Negative(t *testing.T) {
	assert.Equal(t, "-₹1,23,456", FormatINR(d("-123456")))
	assert.Equal(t, "-₹55.25", FormatINR(d("-55.25")))
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2026, time.March, 7, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "07 Mar 2026", FormatDate(ts))
	assert.Equal(t, "-", FormatDate(time.Time{}))
}
