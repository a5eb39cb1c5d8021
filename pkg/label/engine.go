package label

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/raaperrotta/offsetticks/pkg/domain"
	"github.com/raaperrotta/offsetticks/pkg/ports"
)

// Option configures a single Compute call. Options are resolved per call on
// purpose: the availability of an optional collaborator (like a grouped
// formatter) can change between calls in the host environment.
type Option func(*config)

type config struct {
	grouped ports.GroupedFormatter
}

// WithGroupedFormatter makes Compute prefer the given digit-grouping
// formatter over plain numeric conversion, for both the absolute and the
// relative labels. Passing nil is the same as omitting the option.
func WithGroupedFormatter(f ports.GroupedFormatter) Option {
	return func(c *config) {
		c.grouped = f
	}
}

// Relative reports whether the ticks qualify for relative labeling: all
// uniformly positive or uniformly negative. A set containing both a value
// >= 0 and a value <= 0 straddles the origin (a tick exactly at 0 satisfies
// both sides), and an offset that itself crosses zero is considered too
// confusing to show. Empty input never qualifies.
func Relative(ticks []float64) bool {
	if len(ticks) == 0 {
		return false
	}
	var hasNonNeg, hasNonPos bool
	for _, v := range ticks {
		if v >= 0 {
			hasNonNeg = true
		}
		if v <= 0 {
			hasNonPos = true
		}
	}
	return !(hasNonNeg && hasNonPos)
}

// Compute derives one display string per tick.
//
// In relative mode the first label is the first tick formatted with the full
// spec (prefix included); every later label is the delta from the first
// tick, formatted with the directive and suffix only and prefixed with a
// literal "+". The "+" marks "this is an offset" and is unconditional: a
// negative delta renders as e.g. "+-3". This is a fixed convention, not
// configurable.
//
// In absolute mode (range straddles zero) every tick is formatted
// independently with the full spec and no "+" is added.
//
// Trailing-zero trimming, when spec.Trim is set, runs last in either mode.
//
// len(result) == len(ticks) always holds on success; empty input yields an
// empty result and no error.
func Compute(ticks []float64, spec Spec, opts ...Option) ([]string, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	labels := make([]string, len(ticks))
	if len(ticks) == 0 {
		return labels, nil
	}

	if !Relative(ticks) {
		for i, v := range ticks {
			s, err := formatValue(v, spec.Verb, cfg.grouped)
			if err != nil {
				return nil, err
			}
			labels[i] = spec.Prefix + s + spec.Suffix
		}
	} else {
		first, err := formatValue(ticks[0], spec.Verb, cfg.grouped)
		if err != nil {
			return nil, err
		}
		labels[0] = spec.Prefix + first + spec.Suffix

		for i := 1; i < len(ticks); i++ {
			s, err := formatValue(ticks[i]-ticks[0], spec.Verb, cfg.grouped)
			if err != nil {
				return nil, err
			}
			// Prefix text already appeared on the absolute first label;
			// repeating it on a delta would be misleading.
			labels[i] = "+" + s + spec.Suffix
		}
	}

	if spec.Trim {
		for i := range labels {
			labels[i] = trimZeros(labels[i])
		}
	}
	return labels, nil
}

// formatValue renders a single number with the directive, preferring the
// grouped formatter when one is available for this call.
func formatValue(v float64, verb string, grouped ports.GroupedFormatter) (string, error) {
	if grouped != nil {
		return grouped(v, verb)
	}
	if verb == "" {
		return defaultFormat(v), nil
	}

	var s string
	if isIntegerVerb(verb) {
		// Host ticks are floats even on integer-formatted axes.
		s = fmt.Sprintf(verb, int64(math.Round(v)))
	} else {
		s = fmt.Sprintf(verb, v)
	}
	if strings.Contains(s, "%!") {
		return "", fmt.Errorf("%w: directive %q rejected for value %v", domain.ErrBadFormat, verb, v)
	}
	return s, nil
}

func isIntegerVerb(verb string) bool {
	switch verb[len(verb)-1] {
	case 'b', 'c', 'd', 'o', 'x', 'X':
		return true
	}
	return false
}

// defaultFormat is the host-default numeric conversion: plain decimal
// notation for ordinary magnitudes ("1000123", "0.3"), scientific only for
// extremes where decimal notation stops being readable.
func defaultFormat(v float64) string {
	if v != 0 && (math.Abs(v) >= 1e15 || math.Abs(v) < 1e-4) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
