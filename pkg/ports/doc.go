/*
Package ports defines the driven ports (interfaces) for offsetticks.

These interfaces decouple the label engine and the subscription manager from
the concrete plotting toolkit, allowing the library to label any host that can
expose tick geometry.

# Key Interfaces

  - Surface: The host plotting surface (read ticks, write labels, toggle
    automatic labeling, subscribe to tick-geometry changes).
  - GroupedFormatter: An optional digit-grouping numeric formatter, used
    opportunistically when the host environment provides one.
*/
package ports
