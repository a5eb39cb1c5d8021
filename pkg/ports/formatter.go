package ports

// GroupedFormatter formats a numeric value with the given printf-style verb
// while additionally inserting digit-group separators (e.g. thousands
// commas). An empty verb means "use the default numeric conversion".
//
// It is a pure function: same inputs, same output, no side effects.
type GroupedFormatter func(value float64, verb string) (string, error)

// FormatterResolver reports the grouped formatter currently available in the
// host environment, or nil when there is none. It is consulted once per
// labeling call, never cached, because availability can change between calls.
type FormatterResolver func() GroupedFormatter
