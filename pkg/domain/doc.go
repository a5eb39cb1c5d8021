/*
Package domain contains the core value types shared across offsetticks.

It defines the vocabulary of the library: dimensions, format warnings,
recompute lifecycle events, and the sentinel errors callers are expected to
match with errors.Is. This package is kept pure and free of external
dependencies like I/O or rendering, following Hexagonal Architecture
principles.

# Key Entities

  - Dim: Identifies one labelable axis ruler ("x", "y", "z").
  - Warning: An advisory, non-fatal finding about a format spec.
  - RecomputeEvent / Hooks: Observability callbacks fired every time tick
    labels are recomputed, letting the host meter or log the lifecycle
    without coupling the library to a metrics stack.
*/
package domain
