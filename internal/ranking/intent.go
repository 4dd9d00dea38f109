package ranking

import "strings"

// Intent is a coarse classification of where a query is leaning.
type Intent int

const (
	// IntentMixed means the query matches both families, or neither; an
	// ambiguous signal must not suppress any suggestion family downstream.
	IntentMixed Intent = iota
	// IntentPlace means the query is a prefix of a top-city name only.
	IntentPlace
	// IntentEvent means the query is a prefix of a category or season name only.
	IntentEvent
)

// String returns a string representation of the intent.
func (i Intent) String() string {
	switch i {
	case IntentPlace:
		return "place"
	case IntentEvent:
		return "event"
	case IntentMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// IntentDetector classifies queries against the reference lists.
// The classification is informational: it does not gate which sources the
// Aggregator queries. It is a pure function over its inputs.
type IntentDetector struct {
	topCities  []string
	eventTerms []string
}

// NewIntentDetector creates a detector over the given top-city names and
// event-leaning names (categories plus season tags).
func NewIntentDetector(topCities, categories, seasons []string) *IntentDetector {
	eventTerms := make([]string, 0, len(categories)+len(seasons))
	eventTerms = append(eventTerms, categories...)
	eventTerms = append(eventTerms, seasons...)
	return &IntentDetector{topCities: topCities, eventTerms: eventTerms}
}

// Detect classifies query as place-leaning, event-leaning, or mixed.
func (d *IntentDetector) Detect(query string) Intent {
	folded := Fold(strings.TrimSpace(query))
	if folded == "" {
		return IntentMixed
	}
	place := anyPrefixed(d.topCities, folded)
	event := anyPrefixed(d.eventTerms, folded)
	switch {
	case place && event:
		return IntentMixed
	case place:
		return IntentPlace
	case event:
		return IntentEvent
	default:
		return IntentMixed
	}
}

// anyPrefixed reports whether query is a prefix of any folded name.
func anyPrefixed(names []string, foldedQuery string) bool {
	for _, name := range names {
		if strings.HasPrefix(Fold(name), foldedQuery) {
			return true
		}
	}
	return false
}
