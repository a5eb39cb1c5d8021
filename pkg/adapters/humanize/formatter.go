// Package humanize adapts github.com/dustin/go-humanize into a
// ports.GroupedFormatter, giving the optional digit-grouping collaborator a
// ready-made implementation with comma thousands separators.
package humanize

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	gohumanize "github.com/dustin/go-humanize"

	"github.com/raaperrotta/offsetticks/pkg/ports"
)

var precisionRe = regexp.MustCompile(`\.(\d+)`)

// Formatter returns a grouped formatter backed by go-humanize.
//
// An empty verb groups the default conversion ("1000123" -> "1,000,123").
// Integer verbs group the rounded value; fixed-point float verbs keep the
// verb's precision. Scientific verbs (%e, %E, %g, %G) and width/flag
// decorations fall back to plain fmt formatting, since grouped scientific
// notation is not a thing.
func Formatter() ports.GroupedFormatter {
	return func(value float64, verb string) (string, error) {
		switch {
		case verb == "":
			return gohumanize.Commaf(value), nil
		case isIntegerVerb(verb):
			return gohumanize.Comma(int64(math.Round(value))), nil
		case strings.HasSuffix(verb, "f"):
			// humanize render formats: "#,###.##" is two fixed decimals,
			// a bare trailing "." means none.
			format := "#,###."
			if m := precisionRe.FindStringSubmatch(verb); m != nil {
				prec, _ := strconv.Atoi(m[1])
				format += strings.Repeat("#", prec)
			} else {
				// printf default precision for %f
				format += strings.Repeat("#", 6)
			}
			return gohumanize.FormatFloat(format, value), nil
		default:
			return fmt.Sprintf(verb, value), nil
		}
	}
}

func isIntegerVerb(verb string) bool {
	switch verb[len(verb)-1] {
	case 'b', 'c', 'd', 'o', 'x', 'X':
		return true
	}
	return false
}
