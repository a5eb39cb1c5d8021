package domain

import "time"

// RecomputeEvent describes one firing of a recompute handler: labels were
// (re)derived for a dimension, successfully or not.
type RecomputeEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Dim       Dim       `json:"dim"`
	TickCount int       `json:"tick_count"`
	// Relative reports which labeling mode was chosen: true when labels are
	// offsets from the first tick, false for absolute mode.
	Relative bool `json:"relative"`
	// Err carries the formatting or surface failure when the recompute did
	// not produce labels. Nil on success.
	Err error `json:"-"`
}

// Hooks defines callbacks for labeling lifecycle observability.
// All hooks are optional and invoked synchronously from the recompute path,
// so they must be cheap and must not block.
type Hooks struct {
	OnRecompute func(*RecomputeEvent)
}

// Emit invokes the OnRecompute hook if one is set.
func (h Hooks) Emit(ev *RecomputeEvent) {
	if h.OnRecompute != nil {
		h.OnRecompute(ev)
	}
}
