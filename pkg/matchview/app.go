package matchview

import (
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/OpenTraceLab/netmatch/pkg/netlist"
	"github.com/OpenTraceLab/netmatch/pkg/submatch"
)

// Show opens a window listing every match in result, one scrollable panel
// per match, each rendering the matched pattern/design gate neighborhood
// side by side. It returns an error only when result has no matches;
// otherwise it blocks until the window is closed and then exits the process.
func Show(title string, pattern []netlist.Cell, result *submatch.Result, theme Theme) error {
	if len(result.Matches) == 0 {
		return fmt.Errorf("matchview: result has no matches to show")
	}

	go func() {
		w := new(app.Window)
		w.Option(app.Title(title))
		w.Option(app.Size(unit.Dp(900), unit.Dp(700)))

		if err := run(w, pattern, result, theme); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}

func run(w *app.Window, pattern []netlist.Cell, result *submatch.Result, theme Theme) error {
	colors := GetColors(theme)
	var ops op.Ops
	var list widget.List
	list.Axis = layout.Vertical

	th := material.NewTheme()

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			ops.Reset()
			gtx := layout.Context{
				Ops:         &ops,
				Constraints: layout.Exact(e.Size),
				Metric:      e.Metric,
				Now:         e.Now,
				Source:      e.Source,
			}

			heading := material.H6(th, fmt.Sprintf("%d match(es)", len(result.Matches)))
			layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return layout.Inset{Top: 8, Left: 8, Bottom: 8}.Layout(gtx, heading.Layout)
				}),
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return material.List(th, &list).Layout(gtx, len(result.Matches), func(gtx layout.Context, i int) layout.Dimensions {
						match := result.Matches[i]
						gtx.Constraints.Min = gtx.Constraints.Max
						return RenderMatch(gtx, &match, pattern, result.Design, colors)
					})
				}),
			)

			e.Frame(gtx.Ops)
		}
	}
}
