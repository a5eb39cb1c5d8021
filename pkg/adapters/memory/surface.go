// Package memory provides an in-memory ports.Surface implementation.
// It is useful for testing, headless label computation, and as a reference
// for adapting a real plotting toolkit.
package memory

import (
	"errors"
	"sync"

	"github.com/raaperrotta/offsetticks/pkg/domain"
)

// Surface implements ports.Surface in memory.
// Safe for concurrent use.
type Surface struct {
	mu     sync.RWMutex
	ticks  map[domain.Dim][]float64
	labels map[domain.Dim][]string
	auto   map[domain.Dim]bool
	subs   map[domain.Dim]map[int]func() error
	nextID int
}

// New creates an empty surface with automatic labeling enabled on every
// dimension, mirroring a freshly created axes.
func New() *Surface {
	return &Surface{
		ticks:  make(map[domain.Dim][]float64),
		labels: make(map[domain.Dim][]string),
		auto:   map[domain.Dim]bool{domain.DimX: true, domain.DimY: true, domain.DimZ: true},
		subs:   make(map[domain.Dim]map[int]func() error),
	}
}

// Ticks returns a copy of the current tick positions for the dimension.
func (s *Surface) Ticks(dim domain.Dim) []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]float64, len(s.ticks[dim]))
	copy(out, s.ticks[dim])
	return out
}

// SetLabels stores the display strings for the dimension.
func (s *Surface) SetLabels(dim domain.Dim, labels []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(labels))
	copy(out, labels)
	s.labels[dim] = out
}

// SetAutomatic toggles the surface's own tick/label regeneration.
func (s *Surface) SetAutomatic(dim domain.Dim, auto bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auto[dim] = auto
}

// Subscribe registers a tick-change handler and returns its cancel func.
// Cancel is idempotent.
func (s *Surface) Subscribe(dim domain.Dim, handler func() error) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subs[dim] == nil {
		s.subs[dim] = make(map[int]func() error)
	}
	id := s.nextID
	s.nextID++
	s.subs[dim][id] = handler

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs[dim], id)
	}
}

// SetTicks replaces the tick positions for the dimension without notifying
// subscribers; pair it with FireTickChange to emulate a host redraw.
func (s *Surface) SetTicks(dim domain.Dim, ticks []float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]float64, len(ticks))
	copy(out, ticks)
	s.ticks[dim] = out
}

// FireTickChange invokes every subscribed handler for the dimension, the
// way a host redraw loop would after re-ticking. Handler errors are joined
// and returned; a failing handler does not stop the others.
func (s *Surface) FireTickChange(dim domain.Dim) error {
	s.mu.RLock()
	handlers := make([]func() error, 0, len(s.subs[dim]))
	for _, h := range s.subs[dim] {
		handlers = append(handlers, h)
	}
	s.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := h(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Labels returns a copy of the display strings last written for the
// dimension.
func (s *Surface) Labels(dim domain.Dim) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.labels[dim]))
	copy(out, s.labels[dim])
	return out
}

// Automatic reports whether the surface would regenerate its own labels for
// the dimension.
func (s *Surface) Automatic(dim domain.Dim) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.auto[dim]
}

// Subscribers reports how many handlers are attached to the dimension.
func (s *Surface) Subscribers(dim domain.Dim) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs[dim])
}
