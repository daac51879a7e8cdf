package coursegrid_test

import (
	"fmt"

	"github.com/katalvlaran/fairway/coursegrid"
	"github.com/katalvlaran/fairway/geom"
)

// ExampleBuild rasterizes a small course with one water hazard bridged in
// the middle.
func ExampleBuild() {
	level := &coursegrid.Level{
		Water:   []geom.Shape{geom.RectShape(geom.Rect{X: 0, Y: 0, W: 200, H: 200})},
		Bridges: []geom.Rect{{X: 80, Y: 0, W: 40, H: 200}},
	}
	grid, err := coursegrid.Build(level, geom.Rect{W: 200, H: 200}, 20)
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}
	fmt.Printf("%d×%d cells\n", grid.Width, grid.Height)
	fmt.Println("water blocked:", grid.At(0, 0).Blocked)
	fmt.Println("bridge blocked:", grid.At(4, 0).Blocked)
	// Output:
	// 10×10 cells
	// water blocked: true
	// bridge blocked: false
}
