package render

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"git.sr.ht/~sbinet/gg"
	svg "github.com/ajstarks/svgo"
	"golang.org/x/image/font/basicfont"

	"residualmap/domain/residual"
)

// HeatmapOptions controls the residual tile-grid rendering. All theme inputs
// are explicit configuration; there is no package-level default state baked
// into the renderer itself.
type HeatmapOptions struct {
	Title       string
	ThemeSize   float64 // base font size for axis text
	LabelSize   float64 // font size for significance annotations
	ColorLow    color.RGBA
	ColorHigh   color.RGBA
	ColorLabels color.RGBA
}

// DefaultHeatmapOptions returns the standard diverging blue/red theme
func DefaultHeatmapOptions() HeatmapOptions {
	return HeatmapOptions{
		ThemeSize:   13,
		LabelSize:   11,
		ColorLow:    color.RGBA{0x21, 0x66, 0xac, 0xff},
		ColorHigh:   color.RGBA{0xb2, 0x18, 0x2b, 0xff},
		ColorLabels: color.RGBA{0x11, 0x11, 0x11, 0xff},
	}
}

const (
	heatCellW    = 96
	heatCellH    = 64
	heatLeftPad  = 120
	heatTopPad   = 56
	heatBotPad   = 48
	heatRightPad = 24
)

type heatmapLayout struct {
	Cats1  []string // x axis, one column per var1 category
	Cats2  []string // y axis, one row per var2 category
	Cells  []heatCell
	Width  int
	Height int
	Lo, Hi float64
}

type heatCell struct {
	X, Y  int
	Label string
	Value float64
}

// SaveHeatmap renders the heatmap to path, inferring SVG or PNG from the
// extension (SVG when absent).
func SaveHeatmap(path string, set *residual.RecordSet, opts HeatmapOptions) error {
	if err := set.Validate(); err != nil {
		return err
	}

	layout := buildHeatmapLayout(set)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return renderHeatmapPNG(path, layout, opts)
	default:
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create heatmap file: %w", err)
		}
		defer f.Close()
		return renderHeatmapSVG(f, layout, opts)
	}
}

// RenderHeatmapSVG writes the heatmap as SVG to w
func RenderHeatmapSVG(w io.Writer, set *residual.RecordSet, opts HeatmapOptions) error {
	if err := set.Validate(); err != nil {
		return err
	}
	return renderHeatmapSVG(w, buildHeatmapLayout(set), opts)
}

func buildHeatmapLayout(set *residual.RecordSet) heatmapLayout {
	cats1 := set.Categories1()
	cats2 := set.Categories2()
	lo, hi := residual.DivergingDomain(set)

	idx1 := make(map[string]int, len(cats1))
	for i, c := range cats1 {
		idx1[c] = i
	}
	idx2 := make(map[string]int, len(cats2))
	for i, c := range cats2 {
		idx2[c] = i
	}

	layout := heatmapLayout{
		Cats1:  cats1,
		Cats2:  cats2,
		Width:  heatLeftPad + len(cats1)*heatCellW + heatRightPad,
		Height: heatTopPad + len(cats2)*heatCellH + heatBotPad,
		Lo:     lo,
		Hi:     hi,
	}

	for _, r := range set.Records {
		layout.Cells = append(layout.Cells, heatCell{
			X:     heatLeftPad + idx1[r.Category1]*heatCellW,
			Y:     heatTopPad + idx2[r.Category2]*heatCellH,
			Label: r.Label,
			Value: r.Residual,
		})
	}
	return layout
}

func renderHeatmapSVG(w io.Writer, layout heatmapLayout, opts HeatmapOptions) error {
	canvas := svg.New(w)
	canvas.Start(layout.Width, layout.Height)
	canvas.Rect(0, 0, layout.Width, layout.Height, "fill:#ffffff")

	if opts.Title != "" {
		canvas.Text(layout.Width/2, 28, opts.Title,
			fmt.Sprintf("fill:#111111;font-size:%.0fpx;font-family:sans-serif;font-weight:bold;text-anchor:middle", opts.ThemeSize+3))
	}

	for _, cell := range layout.Cells {
		fill := Diverging(cell.Value, layout.Lo, layout.Hi, opts.ColorLow, opts.ColorHigh)
		canvas.Rect(cell.X, cell.Y, heatCellW, heatCellH,
			fmt.Sprintf("fill:%s;stroke:#ffffff;stroke-width:1", css(fill)))

		if cell.Label == "" {
			continue
		}
		cx := cell.X + heatCellW/2
		cy := cell.Y + heatCellH/2
		for li, line := range strings.Split(cell.Label, "\n") {
			dy := int(opts.LabelSize) * (li*2 - 1) / 2
			canvas.Text(cx, cy+dy+int(opts.LabelSize)/2, line,
				fmt.Sprintf("fill:%s;font-size:%.0fpx;font-family:sans-serif;text-anchor:middle", css(opts.ColorLabels), opts.LabelSize))
		}
	}

	// axis labels
	for i, cat := range layout.Cats1 {
		x := heatLeftPad + i*heatCellW + heatCellW/2
		y := heatTopPad + len(layout.Cats2)*heatCellH + 24
		canvas.Text(x, y, cat,
			fmt.Sprintf("fill:#333333;font-size:%.0fpx;font-family:sans-serif;text-anchor:middle", opts.ThemeSize))
	}
	for j, cat := range layout.Cats2 {
		x := heatLeftPad - 10
		y := heatTopPad + j*heatCellH + heatCellH/2 + int(opts.ThemeSize)/2
		canvas.Text(x, y, cat,
			fmt.Sprintf("fill:#333333;font-size:%.0fpx;font-family:sans-serif;text-anchor:end", opts.ThemeSize))
	}

	canvas.End()
	return nil
}

func renderHeatmapPNG(path string, layout heatmapLayout, opts HeatmapOptions) error {
	dc := gg.NewContext(layout.Width, layout.Height)
	dc.SetColor(color.RGBA{0xff, 0xff, 0xff, 0xff})
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	if opts.Title != "" {
		dc.SetColor(color.RGBA{0x11, 0x11, 0x11, 0xff})
		dc.DrawStringAnchored(opts.Title, float64(layout.Width)/2, 28, 0.5, 0.5)
	}

	for _, cell := range layout.Cells {
		fill := Diverging(cell.Value, layout.Lo, layout.Hi, opts.ColorLow, opts.ColorHigh)
		dc.SetColor(fill)
		dc.DrawRectangle(float64(cell.X), float64(cell.Y), heatCellW, heatCellH)
		dc.Fill()

		if cell.Label == "" {
			continue
		}
		dc.SetColor(opts.ColorLabels)
		cx := float64(cell.X) + heatCellW/2
		cy := float64(cell.Y) + heatCellH/2
		for li, line := range strings.Split(cell.Label, "\n") {
			dc.DrawStringAnchored(line, cx, cy+float64(li*14-7), 0.5, 0.5)
		}
	}

	dc.SetColor(color.RGBA{0x33, 0x33, 0x33, 0xff})
	for i, cat := range layout.Cats1 {
		x := float64(heatLeftPad + i*heatCellW + heatCellW/2)
		y := float64(heatTopPad + len(layout.Cats2)*heatCellH + 24)
		dc.DrawStringAnchored(cat, x, y, 0.5, 0.5)
	}
	for j, cat := range layout.Cats2 {
		x := float64(heatLeftPad - 10)
		y := float64(heatTopPad + j*heatCellH + heatCellH/2)
		dc.DrawStringAnchored(cat, x, y, 1, 0.5)
	}

	return dc.SavePNG(path)
}
