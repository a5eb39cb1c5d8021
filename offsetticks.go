package offsetticks

import (
	"log/slog"

	"github.com/raaperrotta/offsetticks/internal/binder"
	"github.com/raaperrotta/offsetticks/pkg/domain"
	"github.com/raaperrotta/offsetticks/pkg/ports"
)

// Version is the library version, surfaced by the CLI.
const Version = "0.2.0"

// Labeler is the high-level entry point for the offsetticks library.
// It wraps the internal binder and provides a simplified API for consumers.
type Labeler struct {
	binder   *binder.Binder
	logger   *slog.Logger
	hooks    domain.Hooks
	resolver ports.FormatterResolver
}

// Option defines a functional option for configuring the Labeler.
type Option func(*Labeler)

// WithLogger sets a custom structured logger. Warnings about questionable
// format specs (line breaks, explicit sign flags) are emitted here, once per
// distinct cause.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Labeler) {
		l.logger = logger
	}
}

// WithHooks registers observability hooks, fired on every label recompute.
func WithHooks(hooks domain.Hooks) Option {
	return func(l *Labeler) {
		l.hooks = hooks
	}
}

// WithGroupedFormatter makes every labeling call prefer the given
// digit-grouping formatter over plain numeric conversion.
func WithGroupedFormatter(f ports.GroupedFormatter) Option {
	return WithFormatterResolver(func() ports.GroupedFormatter { return f })
}

// WithFormatterResolver is the dynamic variant of WithGroupedFormatter for
// hosts where the grouped formatter can come and go: the resolver is
// consulted once per labeling call, never cached.
func WithFormatterResolver(r ports.FormatterResolver) Option {
	return func(l *Labeler) {
		l.resolver = r
	}
}

// New initializes a Labeler.
func New(opts ...Option) *Labeler {
	l := &Labeler{}
	for _, opt := range opts {
		opt(l)
	}

	bopts := []binder.Option{}
	if l.logger != nil {
		bopts = append(bopts, binder.WithLogger(l.logger))
	}
	bopts = append(bopts, binder.WithHooks(l.hooks))
	if l.resolver != nil {
		bopts = append(bopts, binder.WithFormatterResolver(l.resolver))
	}
	l.binder = binder.New(bopts...)
	return l
}

// Apply computes and writes offset labels once for the selected dimensions.
// No handler is installed and the host's automatic mode is left untouched,
// so the host may overwrite the labels on its next own redraw; use Bind to
// keep them current.
func (l *Labeler) Apply(surface ports.Surface, dims, format string, trim bool) error {
	return l.binder.Once(surface, dims, format, trim)
}

// Bind installs (or atomically replaces) a recompute handler for each
// selected dimension and labels the current ticks immediately. The handler
// refreshes the labels on every host-signaled tick change until Unbind.
//
// An empty format is equivalent to Unbind.
func (l *Labeler) Bind(surface ports.Surface, dims, format string, trim bool) error {
	return l.binder.Bind(surface, dims, format, trim)
}

// Unbind removes the handlers for the selected dimensions and restores the
// host's automatic tick labeling.
func (l *Labeler) Unbind(surface ports.Surface, dims string) error {
	return l.binder.Unbind(surface, dims)
}

// Bound reports whether a recompute handler is installed for the dimension.
func (l *Labeler) Bound(surface ports.Surface, dim domain.Dim) bool {
	return l.binder.Bound(surface, dim)
}
