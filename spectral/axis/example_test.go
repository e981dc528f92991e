package axis_test

import (
	"fmt"

	"github.com/cwbudde/algo-gamma/quantity"
	"github.com/cwbudde/algo-gamma/spectral/axis"
)

func ExampleLogEnergy_WorldToPix() {
	a, _ := axis.NewLogEnergy(quantity.NewArray([]float64{1, 10, 100}, quantity.TeV))
	pix, _ := a.WorldToPix(quantity.NewArray([]float64{10}, quantity.TeV))
	fmt.Printf("%.2f\n", pix[0])
	// Output:
	// 1.00
}

func ExampleLogEnergy_BinEdges() {
	a, _ := axis.NewLogEnergy(quantity.NewArray([]float64{1, 2, 4, 8}, quantity.TeV))
	b, _ := a.BinEdges(quantity.New(3, quantity.TeV))
	fmt.Printf("bin %d-%d: %s to %s\n", b.Lo, b.Hi, b.ELo, b.EHi)
	// Output:
	// bin 1-2: 2 TeV to 4 TeV
}
