package reports

import "strings"

// Named filters understood by the service, plus the tag marker. The today
// pseudo-filter is expanded client side and never reaches the wire.
const (
	FilterActive   = "active"
	FilterWorkview = "workview"
	FilterWorkable = "workable"
	FilterAll      = "all"
	FilterToday    = "today"

	TagMarker = "@"
)

// Translate converts free-form user criteria into the ordered filter tokens
// the service accepts. Empty (or all-whitespace) criteria and the literal
// "all" mean the active set. The today pseudo-filter is replaced by
// active+workview; duplicates the user supplied are passed through, the
// service is idempotent on them.
//
// A criteria string that is only a tag filter is deliberately not expanded
// with active; callers wanting active-only tag filtering say so explicitly.
func Translate(criteria string) []string {
	trimmed := strings.TrimSpace(criteria)
	if trimmed == "" || trimmed == FilterAll {
		return []string{FilterActive}
	}
	tokens := strings.Fields(trimmed)
	result := make([]string, 0, len(tokens)+1)
	hadToday := false
	for _, token := range tokens {
		if token == FilterToday {
			hadToday = true
			continue
		}
		result = append(result, token)
	}
	if hadToday {
		result = append(result, FilterActive, FilterWorkview)
	}
	return result
}

// TagFilters returns the tag tokens from a translated filter set, in the
// order given. Listing uses these to order its groups.
func TagFilters(tokens []string) []string {
	var tags []string
	for _, token := range tokens {
		if strings.HasPrefix(token, TagMarker) {
			tags = append(tags, token)
		}
	}
	return tags
}

// HasToday reports whether the pre-translation criteria text contains the
// today token. The summary window depends on the original text, not on the
// translated set (translation removes the token).
func HasToday(criteria string) bool {
	for _, token := range strings.Fields(criteria) {
		if token == FilterToday {
			return true
		}
	}
	return false
}

// SummaryCriteria applies the summary command's semantic default: empty or
// "all" criteria mean workable, a different default than listing's.
func SummaryCriteria(criteria string) string {
	trimmed := strings.TrimSpace(criteria)
	if trimmed == "" || trimmed == FilterAll {
		return FilterWorkable
	}
	return trimmed
}
