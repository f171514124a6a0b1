package layout_test

import (
	"fmt"

	"github.com/matzehuels/growplan/pkg/layout"
)

func ExamplePackStripes() {
	// Five 1.2 m beds with 0.5 m aisles fit an 8.4 m span.
	fmt.Println(layout.PackStripes(8.4, 1.2, 0.5))
	// A negative gap is an invalid configuration.
	fmt.Println(layout.PackStripes(8.4, 1.2, -0.5))
	// Output:
	// 5
	// 0
}

func ExampleBuild() {
	plan := layout.Build(layout.DefaultParams())

	m := plan.Metrics
	fmt.Printf("%d beds\n", m.Beds)
	fmt.Printf("%.1f m2 cultivable (%.1f%%)\n", m.BedArea, 100*m.CultivableFraction)
	fmt.Printf("%.1f m2 headhouse\n", m.HeadhouseArea)
	// Output:
	// 5 beds
	// 128.4 m2 cultivable (59.4%)
	// 18.0 m2 headhouse
}
