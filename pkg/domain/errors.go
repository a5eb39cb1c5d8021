package domain

import "errors"

// ErrBadFormat is returned when a format spec cannot be applied: no numeric
// percent-directive, more than one, a stray "%", or a directive the numeric
// formatter rejects.
var ErrBadFormat = errors.New("bad format spec")

// ErrUnknownDimension is returned when a dimension selector names a dimension
// the surface does not expose.
var ErrUnknownDimension = errors.New("unknown dimension")
