package pricing

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/purrify/pricing_api/internal/currency"
)

// DefaultLocale is the reference locale used when a tag cannot be parsed.
const DefaultLocale = "en-CA"

const nbsp = ' '

// FormatCurrency renders amount as a display price string for the given
// locale. The output always carries a bare "$" glyph, never an ISO currency
// code, whichever currency was resolved. French-style locales place the
// symbol after the number separated by a non-breaking space (fr-CA
// convention); everything else prefixes it. Runs of ordinary spaces are
// collapsed to one; runs containing a non-breaking space are kept verbatim.
//
// Amounts are always derived from the static price table, never user input;
// non-finite or negative values are the caller's problem.
func FormatCurrency(amount float64, cur currency.Currency, locale string) string {
	tag := parseLocale(locale)
	p := message.NewPrinter(tag)
	formatted := p.Sprint(number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))

	base, _ := tag.Base()
	var out string
	if base.String() == "fr" {
		out = formatted + string(nbsp) + currency.Symbol(cur)
	} else {
		out = currency.Symbol(cur) + formatted
	}
	return strings.TrimSpace(collapseSpaces(out))
}

// parseLocale normalizes a BCP-47-ish tag ("fr_CA" included) and falls back
// to the reference locale when the tag is empty or unparseable.
func parseLocale(locale string) language.Tag {
	locale = strings.TrimSpace(strings.ReplaceAll(locale, "_", "-"))
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.MustParse(DefaultLocale)
	}
	return tag
}

// collapseSpaces reduces each run of ordinary spaces to a single space.
// Runs that include a non-breaking space survive untouched: locale
// formatters use NBSP deliberately between digits and symbol.
func collapseSpaces(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(runes); {
		r := runes[i]
		if r != ' ' && r != nbsp {
			b.WriteRune(r)
			i++
			continue
		}
		j := i
		hasNBSP := false
		for j < len(runes) && (runes[j] == ' ' || runes[j] == nbsp) {
			if runes[j] == nbsp {
				hasNBSP = true
			}
			j++
		}
		if hasNBSP {
			b.WriteString(string(runes[i:j]))
		} else {
			b.WriteRune(' ')
		}
		i = j
	}
	return b.String()
}
