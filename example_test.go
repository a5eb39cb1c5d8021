package offsetticks_test

import (
	"fmt"
	"log"

	"github.com/raaperrotta/offsetticks"
	"github.com/raaperrotta/offsetticks/pkg/adapters/memory"
	"github.com/raaperrotta/offsetticks/pkg/domain"
)

// ExampleLabeler_Apply demonstrates one-shot labeling against the in-memory
// surface. This is useful for testing, headless rendering, or hosts without
// a redraw loop.
func ExampleLabeler_Apply() {
	surface := memory.New()
	surface.SetTicks(domain.DimX, []float64{1000123, 1000125, 1000130})

	lab := offsetticks.New()
	if err := lab.Apply(surface, "x", "", true); err != nil {
		log.Fatal(err)
	}

	for _, l := range surface.Labels(domain.DimX) {
		fmt.Println(l)
	}
	// Output:
	// 1000123
	// +2
	// +7
}

// ExampleLabeler_Bind demonstrates the reactive lifecycle: labels follow the
// host's tick changes until the binding is removed.
func ExampleLabeler_Bind() {
	surface := memory.New()
	surface.SetTicks(domain.DimY, []float64{10.0, 10.3})

	lab := offsetticks.New()
	if err := lab.Bind(surface, "y", "%.3f V", true); err != nil {
		log.Fatal(err)
	}
	fmt.Println(surface.Labels(domain.DimY))

	// The host re-ticks (zoom); the handler relabels.
	surface.SetTicks(domain.DimY, []float64{10.1, 10.2, 10.3})
	if err := surface.FireTickChange(domain.DimY); err != nil {
		log.Fatal(err)
	}
	fmt.Println(surface.Labels(domain.DimY))

	// Restore automatic labeling.
	if err := lab.Unbind(surface, "y"); err != nil {
		log.Fatal(err)
	}
	fmt.Println(surface.Automatic(domain.DimY))
	// Output:
	// [10 V +0.3 V]
	// [10.1 V +0.1 V +0.2 V]
	// true
}
