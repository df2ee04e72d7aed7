package render

import (
	"github.com/shopspring/decimal"

	"github.com/fairyhunter13/product-list-ui/internal/model"
)

// CurrencyGlyph prefixes every rendered price.
const CurrencyGlyph = "$"

// FormatPrice renders price with exactly two decimals. The float is first converted to its
// shortest decimal representation and then rounded half away from zero, so 9.995 renders
// as $10.00 rather than following the binary value below it.
func FormatPrice(price float64) string {
	return CurrencyGlyph + decimal.NewFromFloat(price).StringFixed(2)
}

// FormatDate renders the calendar date of createdAt, in the timestamp's own offset, with
// the locale's short date layout.
func FormatDate(createdAt string, loc Locale) (string, error) {
	t, err := model.ParseCreatedAt(createdAt)
	if err != nil {
		return "", err
	}
	return t.Format(loc.DateShort), nil
}
