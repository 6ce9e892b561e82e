package textab

import (
	"sort"
	"strconv"
	"strings"
)

// ParseRangeSpec parses a declarative 1-based range specification such as
// "1,3-5" into a sorted, deduplicated slice of 0-based indices.
//
// The spec is a comma-separated list of tokens. A token is either a single
// number ("3") or an inclusive range ("2-4"). Whitespace around tokens and
// range endpoints is ignored. Malformed tokens, non-positive numbers, and
// inverted ranges are silently dropped; an empty or blank spec yields an
// empty result.
func ParseRangeSpec(spec string) []int {
	indices, _ := parseRangeTokens(spec)
	return indices
}

// parseRangeTokens parses a range spec and additionally reports the tokens
// that were dropped, for use by model validation.
func parseRangeTokens(spec string) ([]int, []string) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}

	seen := make(map[int]struct{})
	var dropped []string

	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if strings.Contains(token, "-") {
			parts := strings.SplitN(token, "-", 2)
			start, errStart := strconv.Atoi(strings.TrimSpace(parts[0]))
			end, errEnd := strconv.Atoi(strings.TrimSpace(parts[1]))
			if errStart != nil || errEnd != nil || start < 1 || end < start {
				dropped = append(dropped, token)
				continue
			}
			for i := start; i <= end; i++ {
				seen[i-1] = struct{}{}
			}
			continue
		}

		n, err := strconv.Atoi(token)
		if err != nil || n < 1 {
			dropped = append(dropped, token)
			continue
		}
		seen[n-1] = struct{}{}
	}

	if len(seen) == 0 {
		return nil, dropped
	}
	indices := make([]int, 0, len(seen))
	for i := range seen {
		indices = append(indices, i)
	}
	sort.Ints(indices)
	return indices, dropped
}

// containsIndex reports whether idx appears in a slice produced by
// ParseRangeSpec.
func containsIndex(indices []int, idx int) bool {
	for _, i := range indices {
		if i == idx {
			return true
		}
	}
	return false
}
