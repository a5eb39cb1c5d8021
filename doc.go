/*
Package offsetticks relabels the ticks of a plotted axis as offsets from the
first tick: the first label keeps its absolute value and every later label
shows the signed distance from it, prefixed with "+".

This keeps small variations in large-magnitude data legible. An axis ticked
at 1000123, 1000125 and 1000130 normally spends almost all of its label ink
on digits that never change; with offset labeling it reads "1000123", "+2",
"+7".

# Modes

When the tick range straddles zero an offset would itself have to cross
zero, which reads worse than the plain values, so the library falls back to
labeling every tick absolutely. Ranges that are uniformly positive or
uniformly negative get relative labels.

# Usage

The host plotting surface is abstracted behind ports.Surface. Bind installs
a recompute handler that refreshes the labels every time the host re-ticks
(zoom, pan, resize), Apply labels once without any persistent state:

	lab := offsetticks.New()

	// Reactive: relabel the x axis on every redraw.
	if err := lab.Bind(surface, "x", "%.3f V", true); err != nil {
		log.Fatal(err)
	}

	// Later: restore the host's automatic labeling.
	_ = lab.Unbind(surface, "x")

The label computation itself lives in pkg/label and can be used standalone:

	labels, err := label.Compute(ticks, spec)

# Format specs

A format spec is a single printf-style numeric directive with optional
literal prefix and suffix text, e.g. "%.3f V" or "t=%d ms". The prefix is
attached to the absolute first label only; the suffix to every label. An
empty spec means the host-default numeric conversion. Passing an empty spec
to Bind restores the host's automatic tick labeling.
*/
package offsetticks
