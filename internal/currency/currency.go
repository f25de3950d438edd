package currency

// Currency is one of the two currencies the store sells in.
type Currency string

const (
	// CAD is the reference currency, used whenever no stronger signal exists.
	CAD Currency = "CAD"
	// USD is served only to shoppers geolocated to the United States.
	USD Currency = "USD"
)

// usCountryCode is the single recognized country code for the secondary
// currency. Nothing else participates in currency selection: no IP lookup,
// no Accept-Language, no user setting.
const usCountryCode = "US"

// Detect maps a geo-header country code to a currency. Only the exact value
// "US" yields USD; anything else, including lowercase or padded variants,
// degrades to CAD.
func Detect(countryCode string) Currency {
	if countryCode == usCountryCode {
		return USD
	}
	return CAD
}

// Parse returns the currency named by s, or false if s is not exactly one of
// the two supported codes. Used to disambiguate currency-vs-locale query
// arguments.
func Parse(s string) (Currency, bool) {
	switch Currency(s) {
	case CAD:
		return CAD, true
	case USD:
		return USD, true
	default:
		return "", false
	}
}

// Symbol returns the glyph shown next to prices. Both currencies render a
// bare "$": shoppers are never shown an ISO currency code.
func Symbol(Currency) string {
	return "$"
}
