/*
Package label implements the offset label engine.

Given the tick positions of an axis and a format spec, Compute decides
whether relative labeling applies and produces one display string per tick:
the first tick keeps its absolute value, every later tick becomes a "+"
prefixed offset from the first. When the tick range straddles zero the
engine falls back to labeling every tick absolutely, because an offset that
itself crosses zero reads worse than the plain values.

The engine is a pure function with no hidden state: it performs no I/O, is
safe to call concurrently, and yields identical output for identical input.
It can be used standalone, without the reactive machinery in the root
package.
*/
package label
