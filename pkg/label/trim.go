package label

import (
	"regexp"
	"strings"
)

// fractionRe matches a literal decimal point followed by a digit run. The
// dot must be literal so the matcher can never bind inside exponent
// notation: in "-3.050e+02" it matches ".050", never anything in "e+02".
var fractionRe = regexp.MustCompile(`\.\d+`)

// trimZeros strips redundant trailing zeros from the first decimal fraction
// in the label, removing the decimal point too when nothing remains after
// it. Text around the matched fraction (sign prefix, units suffix,
// exponent) is preserved unchanged. A label without a decimal fraction
// passes through untouched.
//
//	"+1.2300 V"  -> "+1.23 V"
//	"+1.000"     -> "+1"
//	"-3.050e+02" -> "-3.05e+02"
//	"+12"        -> "+12"
func trimZeros(label string) string {
	loc := fractionRe.FindStringIndex(label)
	if loc == nil {
		return label
	}
	frac := strings.TrimRight(label[loc[0]:loc[1]], "0")
	if frac == "." {
		frac = ""
	}
	return label[:loc[0]] + frac + label[loc[1]:]
}
