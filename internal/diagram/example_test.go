package diagram_test

import (
	"fmt"

	"github.com/alexiusacademia/gobeam/internal/diagram"
)

func ExampleDrawSummaryBox() {
	fmt.Print(diagram.DrawSummaryBox("SUPPORT REACTIONS", []string{
		"R1 = 20.00 kN",
		"R2 = 20.00 kN",
	}))
	// Output:
	//   ╔═════════════════════╗
	//   ║  SUPPORT REACTIONS  ║
	//   ╠═════════════════════╣
	//   ║  R1 = 20.00 kN      ║
	//   ║  R2 = 20.00 kN      ║
	//   ╚═════════════════════╝
}
