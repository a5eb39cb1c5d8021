package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/raaperrotta/offsetticks"
	"github.com/raaperrotta/offsetticks/pkg/adapters/humanize"
	"github.com/raaperrotta/offsetticks/pkg/adapters/memory"
	"github.com/raaperrotta/offsetticks/pkg/domain"
)

// AxisConfig describes one labeled axis in an axes file.
// It uses "mapstructure" tags so loosely-typed YAML decodes into it cleanly.
type AxisConfig struct {
	// Dims is a dimension selector: "x", "y", "z" or a combination ("xy").
	Dims   string    `json:"dims" mapstructure:"dims"`
	Ticks  []float64 `json:"ticks" mapstructure:"ticks"`
	Format string    `json:"format" mapstructure:"format"`
	Trim   *bool     `json:"trim" mapstructure:"trim"`
	Commas bool      `json:"commas" mapstructure:"commas"`
}

// AxesConfig is the root of an axes YAML file.
type AxesConfig struct {
	Axes []AxisConfig `json:"axes" mapstructure:"axes"`
}

// LoadAxesConfig reads and decodes an axes YAML file.
func LoadAxesConfig(path string) (*AxesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read axes config: %w", err)
	}

	// Decode YAML loosely first, then map into the typed config, so YAML
	// key handling stays in one place and the struct keeps mapstructure
	// semantics (unknown keys tolerated, "1" vs 1 coerced).
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse axes config: %w", err)
	}

	var cfg AxesConfig
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode axes config: %w", err)
	}
	return &cfg, nil
}

// RunFromConfig labels every axis in the config file and writes the labels
// to out, grouped per dimension.
func RunFromConfig(out io.Writer, path string) error {
	cfg, err := LoadAxesConfig(path)
	if err != nil {
		return err
	}

	for i, axis := range cfg.Axes {
		if axis.Dims == "" {
			axis.Dims = "x"
		}
		trim := true
		if axis.Trim != nil {
			trim = *axis.Trim
		}

		var labOpts []offsetticks.Option
		if axis.Commas {
			labOpts = append(labOpts, offsetticks.WithGroupedFormatter(humanize.Formatter()))
		}
		lab := offsetticks.New(labOpts...)

		dims, err := domain.ParseDims(axis.Dims)
		if err != nil {
			return fmt.Errorf("axes[%d]: %w", i, err)
		}

		surface := memory.New()
		for _, dim := range dims {
			surface.SetTicks(dim, axis.Ticks)
		}
		if err := lab.Apply(surface, axis.Dims, axis.Format, trim); err != nil {
			return fmt.Errorf("axes[%d]: %w", i, err)
		}

		for _, dim := range dims {
			fmt.Fprintf(out, "%s: %s\n", dim, strings.Join(surface.Labels(dim), "  "))
		}
	}
	return nil
}
