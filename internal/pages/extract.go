package pages

import (
	"strconv"
	"strings"
)

// parsePrice parses a currency-prefixed decimal such as "$29.99". The second
// return value reports whether the text was parsable; callers extracting
// price collections skip unparsable rows instead of aborting the read.
func parsePrice(text string) (float64, bool) {
	s := strings.TrimSpace(text)
	i := strings.Index(s, "$")
	if i < 0 {
		return 0, false
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(s[i+1:]), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// amountAfterCurrency extracts the numeric tail of a summary label such as
// "Item total: $39.98". Labels without a currency symbol or with an
// unparsable tail degrade to 0.0: these figures exist for test assertions,
// and a failed scrape should surface as a mismatched assertion rather than
// abort the extraction.
func amountAfterCurrency(label string) float64 {
	_, tail, found := strings.Cut(label, "$")
	if !found {
		return 0
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(tail), 64)
	if err != nil {
		return 0
	}
	return value
}
