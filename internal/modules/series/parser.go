package series

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a token that could not be read as a number.
type ParseError struct {
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid value: '%s' (not a number)", e.Token)
}

// Parse converts comma-separated free text like "80, 78, 76" into an
// ordered slice of floats. Whitespace around tokens is trimmed and empty
// tokens are skipped, so "80,, 76" parses to [80, 76]. Any other
// unparseable token fails the whole call with a *ParseError naming it.
func Parse(text string) ([]float64, error) {
	if strings.TrimSpace(text) == "" {
		return []float64{}, nil
	}

	tokens := strings.Split(text, ",")
	values := make([]float64, 0, len(tokens))

	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, &ParseError{Token: tok}
		}
		values = append(values, v)
	}

	return values, nil
}

// TruncateToCommon cuts every series in the map down to the length of the
// shortest non-empty one, so all derived tables stay index-aligned across
// profiles. Empty series stay empty. Returns the common length.
func TruncateToCommon(profiles map[string][]float64) int {
	shortest := -1
	for _, vals := range profiles {
		if len(vals) == 0 {
			continue
		}
		if shortest == -1 || len(vals) < shortest {
			shortest = len(vals)
		}
	}

	if shortest == -1 {
		return 0
	}

	for name, vals := range profiles {
		if len(vals) > shortest {
			profiles[name] = vals[:shortest]
		}
	}

	return shortest
}
