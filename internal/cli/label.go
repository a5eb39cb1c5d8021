// Package cli implements the offsetticks command-line behavior behind the
// cobra commands in cmd/offsetticks.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/raaperrotta/offsetticks"
	"github.com/raaperrotta/offsetticks/internal/logging"
	"github.com/raaperrotta/offsetticks/pkg/adapters/humanize"
	"github.com/raaperrotta/offsetticks/pkg/adapters/memory"
	"github.com/raaperrotta/offsetticks/pkg/domain"
)

// LabelOptions contains all the configuration for the label command.
type LabelOptions struct {
	Ticks  []float64
	Format string
	Trim   bool
	Commas bool
	Debug  bool
}

// RunLabel computes offset labels for one set of tick positions and writes
// them to out, one per line.
func RunLabel(out io.Writer, opts LabelOptions) error {
	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}

	labOpts := []offsetticks.Option{offsetticks.WithLogger(logging.New(level))}
	if opts.Commas {
		labOpts = append(labOpts, offsetticks.WithGroupedFormatter(humanize.Formatter()))
	}
	lab := offsetticks.New(labOpts...)

	surface := memory.New()
	surface.SetTicks(domain.DimX, opts.Ticks)
	if err := lab.Apply(surface, "x", opts.Format, opts.Trim); err != nil {
		return err
	}

	for _, l := range surface.Labels(domain.DimX) {
		fmt.Fprintln(out, l)
	}
	return nil
}

// ParseTicks parses a comma-separated list of numbers, e.g. "1,2.5,3".
func ParseTicks(raw string) ([]float64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ticks := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid tick %q: %w", p, err)
		}
		ticks = append(ticks, v)
	}
	return ticks, nil
}
