package matchview

import "github.com/OpenTraceLab/netmatch/pkg/netlist"

const (
	boxWidth   = 140.0
	boxHeight  = 36.0
	rowSpacing = 56.0
	colGap     = 260.0
	marginTop  = 40.0
	marginLeft = 40.0
)

// point is a screen position in pixels.
type point struct{ X, Y float64 }

// layoutGrid pins each cell in a column to a fixed grid position, top to
// bottom in the order the cells were passed in. There is no pan/zoom
// camera: a match's neighborhood is small enough to fit directly.
type layoutGrid struct {
	positions map[netlist.Cell]point
}

func buildLayout(patternCells, designCells []netlist.Cell) *layoutGrid {
	g := &layoutGrid{positions: make(map[netlist.Cell]point, len(patternCells)+len(designCells))}
	for i, c := range patternCells {
		g.positions[c] = point{X: marginLeft, Y: marginTop + float64(i)*rowSpacing}
	}
	for i, c := range designCells {
		g.positions[c] = point{X: marginLeft + boxWidth + colGap, Y: marginTop + float64(i)*rowSpacing}
	}
	return g
}

func (g *layoutGrid) at(c netlist.Cell) (point, bool) {
	p, ok := g.positions[c]
	return p, ok
}
