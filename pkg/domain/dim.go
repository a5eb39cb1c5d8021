package domain

import "fmt"

// Dim identifies a single labelable dimension (axis ruler) of a plotting
// surface.
type Dim string

const (
	DimX Dim = "x"
	DimY Dim = "y"
	DimZ Dim = "z"
)

// ParseDims expands a dimension selector into the individual dimensions it
// denotes. A selector is a string of dimension runes, e.g. "x", "y", "xy" or
// "xyz". Duplicates are collapsed, order is preserved.
func ParseDims(selector string) ([]Dim, error) {
	if selector == "" {
		return nil, fmt.Errorf("%w: empty selector", ErrUnknownDimension)
	}

	seen := make(map[Dim]bool, len(selector))
	dims := make([]Dim, 0, len(selector))
	for _, r := range selector {
		d := Dim(r)
		switch d {
		case DimX, DimY, DimZ:
			// ok
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownDimension, string(r))
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		dims = append(dims, d)
	}
	return dims, nil
}
