package label

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/raaperrotta/offsetticks/pkg/domain"
)

// Spec is a parsed format spec: a single printf-style numeric directive,
// optionally surrounded by literal prefix and suffix text, plus the
// trailing-zero trim flag.
//
// A zero Verb means "no directive": values go through the default numeric
// conversion instead.
type Spec struct {
	Prefix string
	Verb   string
	Suffix string
	Trim   bool
}

// IsZero reports whether the spec carries no formatting at all, i.e. the raw
// format string was empty. On the reactive path this is the "restore
// automatic labeling" sentinel.
func (s Spec) IsZero() bool {
	return s.Prefix == "" && s.Verb == "" && s.Suffix == ""
}

// verbRe matches a single printf-style numeric directive: flags, optional
// width, optional precision, and an integer or float verb.
var verbRe = regexp.MustCompile(`%[-+ #0]*\d*(?:\.\d+)?[bcdeEfgGovxX]`)

// Parse splits a raw format string into prefix, directive and suffix.
//
// Line breaks (raw, or the two-character escape "\n") are replaced with a
// space and reported as a warning; a "+" flag on the directive is kept as
// given but also reported, since it collides with the engine's own "+"
// prefix on relative labels. Warnings are advisory: a non-nil warning slice
// never accompanies a failed parse being usable.
//
// An empty raw string parses to the zero Spec (default numeric conversion).
// Anything else must contain exactly one directive and no stray "%";
// violations return an error wrapping domain.ErrBadFormat.
func Parse(raw string, trim bool) (Spec, []domain.Warning, error) {
	if raw == "" {
		return Spec{Trim: trim}, nil, nil
	}

	var warns []domain.Warning

	sanitized := raw
	if strings.Contains(sanitized, "\n") || strings.Contains(sanitized, `\n`) {
		sanitized = strings.ReplaceAll(sanitized, "\n", " ")
		sanitized = strings.ReplaceAll(sanitized, `\n`, " ")
		warns = append(warns, domain.Warning{
			Cause:  domain.WarnNewlineInFormat,
			Detail: fmt.Sprintf("line break in format %q replaced with a space", raw),
		})
	}

	matches := verbRe.FindAllStringIndex(sanitized, -1)
	switch {
	case len(matches) == 0:
		return Spec{}, warns, fmt.Errorf("%w: no numeric %%-directive in %q", domain.ErrBadFormat, raw)
	case len(matches) > 1:
		return Spec{}, warns, fmt.Errorf("%w: multiple %%-directives in %q", domain.ErrBadFormat, raw)
	}

	start, end := matches[0][0], matches[0][1]
	spec := Spec{
		Prefix: sanitized[:start],
		Verb:   sanitized[start:end],
		Suffix: sanitized[end:],
		Trim:   trim,
	}

	if strings.Contains(spec.Prefix, "%") || strings.Contains(spec.Suffix, "%") {
		return Spec{}, warns, fmt.Errorf("%w: stray %% outside directive in %q", domain.ErrBadFormat, raw)
	}

	if strings.Contains(spec.Verb, "+") {
		warns = append(warns, domain.Warning{
			Cause:  domain.WarnPlusFlagInFormat,
			Detail: fmt.Sprintf("explicit sign flag in %q conflicts with the relative-label %q prefix", raw, "+"),
		})
	}

	return spec, warns, nil
}
