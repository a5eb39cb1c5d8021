// Package binder owns the reactive labeling lifecycle: an explicit registry
// of recompute handlers keyed by (surface identity, dimension), with
// install, atomic replace and remove as the only mutating operations. The
// registry guarantees at most one live handler per slot ever observes a
// host redraw.
package binder

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/raaperrotta/offsetticks/internal/logging"
	"github.com/raaperrotta/offsetticks/pkg/domain"
	"github.com/raaperrotta/offsetticks/pkg/label"
	"github.com/raaperrotta/offsetticks/pkg/ports"
)

type slotKey struct {
	surface ports.Surface
	dim     domain.Dim
}

type binding struct {
	cancel func()
	spec   label.Spec
}

// Binder manages recompute handler slots across surfaces.
// Safe for concurrent use, though hosts typically drive it from a single
// redraw loop.
type Binder struct {
	mu       sync.Mutex
	slots    map[slotKey]*binding
	logger   *slog.Logger
	warnings *logging.WarnLog
	hooks    domain.Hooks
	resolver ports.FormatterResolver
}

// Option defines a functional option for configuring the Binder.
type Option func(*Binder)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Binder) {
		b.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(b *Binder) {
		b.hooks = hooks
	}
}

// WithFormatterResolver sets the lookup for the optional grouped-digit
// formatter. It is consulted once per recompute, never cached.
func WithFormatterResolver(r ports.FormatterResolver) Option {
	return func(b *Binder) {
		b.resolver = r
	}
}

// New creates an empty Binder.
func New(opts ...Option) *Binder {
	b := &Binder{
		slots:  make(map[slotKey]*binding),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.warnings = logging.NewWarnLog(b.logger)
	return b
}

// Bind installs (or atomically replaces) the recompute handler for every
// dimension the selector denotes and fires each one synchronously so the
// current ticks are labeled without waiting for the next host redraw.
//
// An empty rawFormat is equivalent to Unbind: existing handlers are torn
// down and the host's automatic tick/label behavior is restored.
//
// Dimensions are bound independently; one dimension's failure does not
// prevent attempting the others (errors are joined).
func (b *Binder) Bind(surface ports.Surface, selector, rawFormat string, trim bool) error {
	dims, err := domain.ParseDims(selector)
	if err != nil {
		return err
	}

	if rawFormat == "" {
		b.unbindDims(surface, dims)
		return nil
	}

	spec, warns, err := label.Parse(rawFormat, trim)
	if err != nil {
		return err
	}
	b.warnings.Report(warns...)

	var errs []error
	for _, dim := range dims {
		if err := b.bindOne(surface, dim, spec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Unbind removes the handlers for the selected dimensions and restores the
// host's automatic behavior. Unbinding a dimension that was never bound is a
// no-op apart from the auto-mode restore.
func (b *Binder) Unbind(surface ports.Surface, selector string) error {
	dims, err := domain.ParseDims(selector)
	if err != nil {
		return err
	}
	b.unbindDims(surface, dims)
	return nil
}

// Once computes and writes labels a single time, installing no handler and
// leaving the host's automatic mode untouched.
func (b *Binder) Once(surface ports.Surface, selector, rawFormat string, trim bool) error {
	dims, err := domain.ParseDims(selector)
	if err != nil {
		return err
	}

	spec, warns, err := label.Parse(rawFormat, trim)
	if err != nil {
		return err
	}
	b.warnings.Report(warns...)

	var errs []error
	for _, dim := range dims {
		if err := b.recompute(surface, dim, spec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Bound reports whether a handler is currently installed for the dimension.
func (b *Binder) Bound(surface ports.Surface, dim domain.Dim) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.slots[slotKey{surface, dim}]
	return ok
}

func (b *Binder) bindOne(surface ports.Surface, dim domain.Dim, spec label.Spec) error {
	b.mu.Lock()
	k := slotKey{surface, dim}

	// Detach must complete before the replacement attaches, so no redraw
	// can ever reach two live handlers for the same slot.
	if old, ok := b.slots[k]; ok {
		old.cancel()
		delete(b.slots, k)
	}

	handler := func() error {
		return b.recompute(surface, dim, spec)
	}

	surface.SetAutomatic(dim, false)
	cancel := surface.Subscribe(dim, handler)
	b.slots[k] = &binding{cancel: cancel, spec: spec}
	b.mu.Unlock()

	b.logger.Debug("offset labeling bound", "dim", dim, "format", spec.Verb)

	// First labeling happens now, not on the next host-triggered redraw.
	return handler()
}

func (b *Binder) unbindDims(surface ports.Surface, dims []domain.Dim) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, dim := range dims {
		k := slotKey{surface, dim}
		if bnd, ok := b.slots[k]; ok {
			bnd.cancel()
			delete(b.slots, k)
			b.logger.Debug("offset labeling unbound", "dim", dim)
		}
		surface.SetAutomatic(dim, true)
	}
}

// recompute is the handler body: read ticks, compute labels, write them
// back. Failures are reported through hooks and the logger but still
// propagate to the host's redraw loop; they are never swallowed, and a later
// successful recompute is never masked by an earlier failure.
func (b *Binder) recompute(surface ports.Surface, dim domain.Dim, spec label.Spec) error {
	ticks := surface.Ticks(dim)

	var opts []label.Option
	if b.resolver != nil {
		if f := b.resolver(); f != nil {
			opts = append(opts, label.WithGroupedFormatter(f))
		}
	}

	labels, err := label.Compute(ticks, spec, opts...)
	b.hooks.Emit(&domain.RecomputeEvent{
		Timestamp: time.Now(),
		Dim:       dim,
		TickCount: len(ticks),
		Relative:  label.Relative(ticks),
		Err:       err,
	})
	if err != nil {
		b.logger.Error("tick label recompute failed", "dim", dim, "error", err)
		return fmt.Errorf("recompute %q labels: %w", dim, err)
	}

	surface.SetLabels(dim, labels)
	return nil
}
