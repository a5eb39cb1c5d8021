package label

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raaperrotta/offsetticks/pkg/domain"
)

func TestCompute_EmptyTicks(t *testing.T) {
	labels, err := Compute(nil, Spec{Trim: true})
	require.NoError(t, err)
	assert.Empty(t, labels)
}

func TestCompute_LengthMatchesTicks(t *testing.T) {
	cases := [][]float64{
		{1},
		{1, 2, 3},
		{-4, -3, -2, -1},
		{0, 1, 2, 3, 4},
	}
	for _, ticks := range cases {
		labels, err := Compute(ticks, Spec{})
		require.NoError(t, err)
		assert.Len(t, labels, len(ticks))
	}
}

func TestRelative_ModeDecision(t *testing.T) {
	cases := []struct {
		name     string
		ticks    []float64
		relative bool
	}{
		{"empty", nil, false},
		{"all positive", []float64{1, 2, 3}, true},
		{"all negative", []float64{-3, -2, -1}, true},
		{"straddles zero", []float64{-5, 3}, false},
		{"zero plus positive", []float64{0, 1}, false},
		{"zero plus negative", []float64{-1, 0}, false},
		{"single zero", []float64{0}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.relative, Relative(tc.ticks))
		})
	}
}

// Large-magnitude ticks with small spread is the motivating scenario: the
// shared digits collapse into the first label and the spread becomes visible.
func TestCompute_OffsetScenario(t *testing.T) {
	labels, err := Compute([]float64{1000123, 1000125, 1000130}, Spec{Trim: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"1000123", "+2", "+7"}, labels)
}

func TestCompute_StraddleFallsBackToAbsolute(t *testing.T) {
	labels, err := Compute([]float64{-5, 3}, Spec{Trim: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"-5", "3"}, labels)
	for _, l := range labels {
		assert.NotContains(t, l, "+")
	}
}

func TestCompute_FormattedWithUnitSuffix(t *testing.T) {
	spec, _, err := Parse("%.3f V", true)
	require.NoError(t, err)

	labels, err := Compute([]float64{10.0, 10.3}, spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"10 V", "+0.3 V"}, labels)

	// Without trimming the formatted zeros survive.
	spec.Trim = false
	labels, err = Compute([]float64{10.0, 10.3}, spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"10.000 V", "+0.300 V"}, labels)
}

// Prefix text belongs to the absolute first label only; repeating it on the
// deltas would misattribute it.
func TestCompute_PrefixOnlyOnFirstLabel(t *testing.T) {
	spec, _, err := Parse("≈%.1f s", false)
	require.NoError(t, err)

	labels, err := Compute([]float64{5, 6, 7}, spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"≈5.0 s", "+1.0 s", "+2.0 s"}, labels)
}

// The "+" marks "this is an offset", not the arithmetic sign: a tick below
// the first still gets it, with the number's own sign after.
func TestCompute_NegativeDeltaKeepsPlusPrefix(t *testing.T) {
	labels, err := Compute([]float64{-2, -5, -1}, Spec{})
	require.NoError(t, err)
	assert.Equal(t, []string{"-2", "+-3", "+1"}, labels)
}

func TestCompute_UniformlyNegative(t *testing.T) {
	labels, err := Compute([]float64{-100, -90, -80}, Spec{})
	require.NoError(t, err)
	assert.Equal(t, []string{"-100", "+10", "+20"}, labels)
}

func TestCompute_IntegerVerbRoundsFloatTicks(t *testing.T) {
	spec, _, err := Parse("%d ms", false)
	require.NoError(t, err)

	labels, err := Compute([]float64{100.4, 102.6}, spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"100 ms", "+2 ms"}, labels)
}

func TestCompute_Idempotent(t *testing.T) {
	ticks := []float64{3.25, 3.5, 3.75}
	spec, _, err := Parse("%.2f", true)
	require.NoError(t, err)

	first, err := Compute(ticks, spec)
	require.NoError(t, err)
	second, err := Compute(ticks, spec)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCompute_GroupedFormatterPreferred(t *testing.T) {
	grouped := func(v float64, verb string) (string, error) {
		return fmt.Sprintf("<%v|%s>", v, verb), nil
	}

	labels, err := Compute([]float64{1000, 2000}, Spec{}, WithGroupedFormatter(grouped))
	require.NoError(t, err)
	assert.Equal(t, []string{"<1000|>", "+<1000|>"}, labels)

	// Resolution is per call: the next call without the option falls back
	// to plain conversion.
	labels, err = Compute([]float64{1000, 2000}, Spec{})
	require.NoError(t, err)
	assert.Equal(t, []string{"1000", "+1000"}, labels)
}

func TestCompute_GroupedFormatterErrorPropagates(t *testing.T) {
	grouped := func(v float64, verb string) (string, error) {
		return "", fmt.Errorf("%w: grouping unavailable for %q", domain.ErrBadFormat, verb)
	}

	_, err := Compute([]float64{1, 2}, Spec{}, WithGroupedFormatter(grouped))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadFormat)
}

func TestDefaultFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1000123, "1000123"},
		{0.3, "0.3"},
		{-5, "-5"},
		{0, "0"},
		{1e18, "1e+18"},
		{2.5e-7, "2.5e-07"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, defaultFormat(tc.in), "defaultFormat(%v)", tc.in)
	}
}
