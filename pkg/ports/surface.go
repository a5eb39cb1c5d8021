package ports

import "github.com/raaperrotta/offsetticks/pkg/domain"

// Surface is the host plotting surface seen from the labeling side.
//
// Implementations must be usable as map keys (pointer receivers are the
// common case): the subscription manager keys its handler registry on the
// surface identity plus the dimension name.
//
// The host drives all invocations from its own redraw loop; none of these
// methods are expected to be called concurrently for the same dimension.
type Surface interface {
	// Ticks returns the current ordered tick positions for the dimension,
	// as the host reports them. The engine never re-sorts. An empty slice
	// is valid and means "nothing to label".
	Ticks(dim domain.Dim) []float64

	// SetLabels writes the display strings for the dimension, positionally
	// aligned with the slice last returned by Ticks.
	SetLabels(dim domain.Dim, labels []string)

	// SetAutomatic toggles the host's own tick/label regeneration for the
	// dimension. While a custom handler is attached this must be off, or
	// the host would overwrite the custom labels on its own schedule.
	SetAutomatic(dim domain.Dim, auto bool)

	// Subscribe registers a handler the host invokes synchronously every
	// time tick geometry for the dimension is finalized. The returned
	// cancel func detaches the handler; it must be safe to call once and
	// must guarantee the handler observes no redraw after it returns.
	//
	// A handler error is the host's to surface; it must not be swallowed
	// and must not prevent future invocations.
	Subscribe(dim domain.Dim, handler func() error) (cancel func())
}
