package matchview

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/widget/material"

	"github.com/OpenTraceLab/netmatch/pkg/netlist"
	"github.com/OpenTraceLab/netmatch/pkg/submatch"
)

var shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

// RenderMatch draws one match's pattern-gate and design-gate neighborhood
// side by side, with a line joining each pattern gate to the design gate
// it mapped to. Boxes are filled by whether the cell is a gate or a
// declared boundary (input/output) cell.
func RenderMatch(gtx layout.Context, match *submatch.Match, patternCells, designCells []netlist.Cell, colors *Colors) layout.Dimensions {
	paint.Fill(gtx.Ops, colors.Background)

	grid := buildLayout(patternCells, designCells)
	mapping := match.CellMapping()

	for pat, design := range mapping {
		from, ok1 := grid.at(pat)
		to, ok2 := grid.at(design)
		if !ok1 || !ok2 {
			continue
		}
		drawLine(gtx, centerOf(from), centerOf(to), colors.MappingLine)
	}

	for _, c := range patternCells {
		drawBox(gtx, grid, c, colors)
	}
	for _, c := range designCells {
		drawBox(gtx, grid, c, colors)
	}

	width := int(marginLeft*2 + boxWidth*2 + colGap)
	height := int(marginTop*2 + rowSpacing*float64(maxInt(len(patternCells), len(designCells))))
	return layout.Dimensions{Size: image.Pt(width, height)}
}

func centerOf(p point) point {
	return point{X: p.X + boxWidth/2, Y: p.Y + boxHeight/2}
}

func drawBox(gtx layout.Context, grid *layoutGrid, c netlist.Cell, colors *Colors) {
	p, ok := grid.at(c)
	if !ok {
		return
	}

	fill := colors.GateFill
	if !netlist.IsGate(netlist.Classify(c)) {
		fill = colors.BoundaryFill
	}

	rect := image.Rect(int(p.X), int(p.Y), int(p.X+boxWidth), int(p.Y+boxHeight))
	paint.FillShape(gtx.Ops, fill, clip.Rect(rect).Op())

	var outline clip.Path
	outline.Begin(gtx.Ops)
	outline.MoveTo(f32.Pt(float32(rect.Min.X), float32(rect.Min.Y)))
	outline.LineTo(f32.Pt(float32(rect.Max.X), float32(rect.Min.Y)))
	outline.LineTo(f32.Pt(float32(rect.Max.X), float32(rect.Max.Y)))
	outline.LineTo(f32.Pt(float32(rect.Min.X), float32(rect.Max.Y)))
	outline.Close()
	paint.FillShape(gtx.Ops, colors.BoxOutline, clip.Stroke{Path: outline.End(), Width: 1.5}.Op())

	label := c.Name()
	if label == "" {
		label = netlist.Classify(c).String()
	}

	defer op.Offset(image.Pt(rect.Min.X+8, rect.Min.Y+8)).Push(gtx.Ops).Pop()
	th := material.NewTheme()
	th.Shaper = shaper
	th.Palette.Fg = colors.BoxText
	material.Body2(th, label).Layout(gtx)
}

func drawLine(gtx layout.Context, from, to point, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Pt(float32(from.X), float32(from.Y)))
	path.LineTo(f32.Pt(float32(to.X), float32(to.Y)))
	paint.FillShape(gtx.Ops, col, clip.Stroke{Path: path.End(), Width: 2}.Op())
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
