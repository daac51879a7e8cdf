package placement_test

import (
	"fmt"

	"github.com/katalvlaran/fairway/coursegrid"
	"github.com/katalvlaran/fairway/geom"
	"github.com/katalvlaran/fairway/par"
	"github.com/katalvlaran/fairway/placement"
)

// ExampleLintGoal lints a cup sealed off behind a full-height wall.
func ExampleLintGoal() {
	level := &coursegrid.Level{
		Tee: geom.Point{X: 60, Y: 300},
		Cup: geom.Point{X: 740, Y: 300},
		Obstacles: []geom.Shape{
			geom.RectShape(geom.Rect{X: 400, Y: 0, W: 20, H: 600}),
		},
	}
	warnings, err := placement.LintGoal(level, geom.Rect{W: 800, H: 600}, 20, par.DefaultConfig())
	if err != nil {
		fmt.Println("lint failed:", err)
		return
	}
	for _, w := range warnings {
		fmt.Println(w)
	}
	// Output:
	// cup is unreachable from the tee
}
