package pricing

import (
	"strings"
	"unicode"
)

// Central-London postcode districts that sit inside the charging zone. This
// is a coarse heuristic standing in for a real geofence; swap the predicate
// on the calculator to replace it.
var congestionPostcodePrefixes = []string{"EC", "WC", "E1", "SE1", "SW1", "W1", "N1", "NW1"}

// DefaultCongestionZone matches an address against the congestion-zone
// heuristic: a "London" mention or a central-London postcode prefix.
func DefaultCongestionZone(address string) bool {
	upper := strings.ToUpper(address)
	if strings.Contains(upper, "LONDON") {
		return true
	}
	for _, token := range strings.FieldsFunc(upper, func(r rune) bool {
		return r == ',' || r == ' '
	}) {
		for _, prefix := range congestionPostcodePrefixes {
			if postcodeToken(token, prefix) {
				return true
			}
		}
	}
	return false
}

// postcodeToken reports whether token looks like an outward postcode in the
// given district.
func postcodeToken(token, prefix string) bool {
	if !strings.HasPrefix(token, prefix) {
		return false
	}
	rest := token[len(prefix):]
	if unicode.IsDigit(rune(prefix[len(prefix)-1])) {
		// Prefixes ending in a digit (SW1, E1) match the bare outward code
		// or a lettered subdivision (SW1A), not longer districts like SW12.
		return rest == "" || unicode.IsLetter(rune(rest[0]))
	}
	// Letter-only prefixes (EC, WC) need a digit next to look like a postcode.
	return rest != "" && unicode.IsDigit(rune(rest[0]))
}
