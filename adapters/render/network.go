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

	"residualmap/domain/core"
	"residualmap/domain/residual"
)

// EdgeClass is the three-way significance classification of an edge
type EdgeClass string

const (
	EdgePositive       EdgeClass = "positive"
	EdgeNegative       EdgeClass = "negative"
	EdgeNonsignificant EdgeClass = "nonsignificant"
)

// ClassifyEdge assigns an edge class from a record's residual sign and
// significance.
func ClassifyEdge(r residual.Record) EdgeClass {
	switch {
	case r.Significant() && r.Residual > 0:
		return EdgePositive
	case r.Significant() && r.Residual < 0:
		return EdgeNegative
	default:
		return EdgeNonsignificant
	}
}

// EdgeColors holds one color per edge class
type EdgeColors struct {
	Positive       color.RGBA
	Negative       color.RGBA
	Nonsignificant color.RGBA
}

func (c EdgeColors) of(class EdgeClass) color.RGBA {
	switch class {
	case EdgePositive:
		return c.Positive
	case EdgeNegative:
		return c.Negative
	default:
		return c.Nonsignificant
	}
}

// NetworkOptions controls the bipartite category-relation graph rendering.
// NodeColors is keyed by variable name, one entry per variable.
type NetworkOptions struct {
	Title      string
	NodeColors map[string]color.RGBA
	EdgeColors EdgeColors
	MinWidth   float64
	MaxWidth   float64
}

// DefaultNetworkOptions returns the standard palette for a variable pair
func DefaultNetworkOptions(var1, var2 string) NetworkOptions {
	return NetworkOptions{
		NodeColors: map[string]color.RGBA{
			var1: {0x4c, 0x72, 0xb0, 0xff},
			var2: {0xdd, 0x84, 0x52, 0xff},
		},
		EdgeColors: EdgeColors{
			Positive:       color.RGBA{0xb2, 0x18, 0x2b, 0xff},
			Negative:       color.RGBA{0x21, 0x66, 0xac, 0xff},
			Nonsignificant: color.RGBA{0xc8, 0xc8, 0xc8, 0xff},
		},
		MinWidth: 1,
		MaxWidth: 5,
	}
}

const (
	netWidth     = 720
	netTopPad    = 64
	netRowGap    = 72
	netNodeR     = 16
	netLeftColX  = 160
	netRightColX = netWidth - 160
	netLegendH   = 118
)

type netNode struct {
	Label    string
	Variable string
	X, Y     int
}

type netEdge struct {
	From, To int // node indices
	Class    EdgeClass
	Width    float64
}

type networkLayout struct {
	Nodes  []netNode
	Edges  []netEdge
	Width  int
	Height int
	Var1   string
	Var2   string
}

// SaveNetwork renders the bipartite graph to path, inferring SVG or PNG from
// the extension (SVG when absent).
func SaveNetwork(path string, set *residual.RecordSet, opts NetworkOptions) error {
	if err := validateNetworkInput(set, opts); err != nil {
		return err
	}

	layout := buildNetworkLayout(set, opts)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return renderNetworkPNG(path, layout, opts)
	default:
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create network file: %w", err)
		}
		defer f.Close()
		return renderNetworkSVG(f, layout, opts)
	}
}

// RenderNetworkSVG writes the bipartite graph as SVG to w
func RenderNetworkSVG(w io.Writer, set *residual.RecordSet, opts NetworkOptions) error {
	if err := validateNetworkInput(set, opts); err != nil {
		return err
	}
	return renderNetworkSVG(w, buildNetworkLayout(set, opts), opts)
}

func validateNetworkInput(set *residual.RecordSet, opts NetworkOptions) error {
	if err := set.Validate(); err != nil {
		return err
	}
	if _, ok := opts.NodeColors[set.Var1]; !ok {
		return core.NewSchemaError(fmt.Sprintf("no node color for variable %q", set.Var1))
	}
	if _, ok := opts.NodeColors[set.Var2]; !ok {
		return core.NewSchemaError(fmt.Sprintf("no node color for variable %q", set.Var2))
	}
	return nil
}

// buildNetworkLayout places the two variables' categories in two facing
// columns. The bipartite structure makes a plain column layout readable and
// deterministic; the exact placement algorithm is not part of the contract.
func buildNetworkLayout(set *residual.RecordSet, opts NetworkOptions) networkLayout {
	cats1 := set.Categories1()
	cats2 := set.Categories2()

	layout := networkLayout{Var1: set.Var1, Var2: set.Var2, Width: netWidth}

	nodeIdx := make(map[[2]string]int)
	for i, c := range cats1 {
		nodeIdx[[2]string{set.Var1, c}] = len(layout.Nodes)
		layout.Nodes = append(layout.Nodes, netNode{
			Label:    c,
			Variable: set.Var1,
			X:        netLeftColX,
			Y:        netTopPad + i*netRowGap,
		})
	}
	for i, c := range cats2 {
		nodeIdx[[2]string{set.Var2, c}] = len(layout.Nodes)
		layout.Nodes = append(layout.Nodes, netNode{
			Label:    c,
			Variable: set.Var2,
			X:        netRightColX,
			Y:        netTopPad + i*netRowGap,
		})
	}

	widths := residual.RescaleWidths(residual.Magnitudes(set), opts.MinWidth, opts.MaxWidth)
	for i, r := range set.Records {
		layout.Edges = append(layout.Edges, netEdge{
			From:  nodeIdx[[2]string{set.Var1, r.Category1}],
			To:    nodeIdx[[2]string{set.Var2, r.Category2}],
			Class: ClassifyEdge(r),
			Width: widths[i],
		})
	}

	rows := len(cats1)
	if len(cats2) > rows {
		rows = len(cats2)
	}
	layout.Height = netTopPad + rows*netRowGap + netLegendH
	return layout
}

func renderNetworkSVG(w io.Writer, layout networkLayout, opts NetworkOptions) error {
	canvas := svg.New(w)
	canvas.Start(layout.Width, layout.Height)
	canvas.Rect(0, 0, layout.Width, layout.Height, "fill:#ffffff")

	if opts.Title != "" {
		canvas.Text(layout.Width/2, 30, opts.Title,
			"fill:#111111;font-size:16px;font-family:sans-serif;font-weight:bold;text-anchor:middle")
	}

	// edges behind nodes
	for _, e := range layout.Edges {
		from := layout.Nodes[e.From]
		to := layout.Nodes[e.To]
		canvas.Line(from.X, from.Y, to.X, to.Y,
			fmt.Sprintf("stroke:%s;stroke-width:%.2f", css(opts.EdgeColors.of(e.Class)), e.Width))
	}

	for _, n := range layout.Nodes {
		canvas.Circle(n.X, n.Y, netNodeR,
			fmt.Sprintf("fill:%s;stroke:#222222;stroke-width:1", css(opts.NodeColors[n.Variable])))
		anchor := "end"
		dx := -netNodeR - 8
		if n.X > layout.Width/2 {
			anchor = "start"
			dx = netNodeR + 8
		}
		canvas.Text(n.X+dx, n.Y+5, n.Label,
			fmt.Sprintf("fill:#222222;font-size:13px;font-family:sans-serif;text-anchor:%s", anchor))
	}

	drawNetworkLegendSVG(canvas, layout, opts)
	canvas.End()
	return nil
}

func drawNetworkLegendSVG(canvas *svg.SVG, layout networkLayout, opts NetworkOptions) {
	x := 24
	y := layout.Height - netLegendH + 16
	canvas.Text(x, y, "Legend", "fill:#111111;font-size:13px;font-family:sans-serif;font-weight:bold")

	entries := []struct {
		c    color.RGBA
		text string
	}{
		{opts.NodeColors[layout.Var1], layout.Var1},
		{opts.NodeColors[layout.Var2], layout.Var2},
		{opts.EdgeColors.Positive, "positive (p < 0.05)"},
		{opts.EdgeColors.Negative, "negative (p < 0.05)"},
		{opts.EdgeColors.Nonsignificant, "nonsignificant"},
	}
	for i, e := range entries {
		ey := y + 18 + i*16
		canvas.Rect(x, ey-10, 12, 12, fmt.Sprintf("fill:%s;stroke:#222222;stroke-width:1", css(e.c)))
		canvas.Text(x+18, ey, e.text, "fill:#444444;font-size:12px;font-family:sans-serif")
	}
}

func renderNetworkPNG(path string, layout networkLayout, opts NetworkOptions) error {
	dc := gg.NewContext(layout.Width, layout.Height)
	dc.SetColor(color.RGBA{0xff, 0xff, 0xff, 0xff})
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)

	if opts.Title != "" {
		dc.SetColor(color.RGBA{0x11, 0x11, 0x11, 0xff})
		dc.DrawStringAnchored(opts.Title, float64(layout.Width)/2, 30, 0.5, 0.5)
	}

	for _, e := range layout.Edges {
		from := layout.Nodes[e.From]
		to := layout.Nodes[e.To]
		dc.SetColor(opts.EdgeColors.of(e.Class))
		dc.SetLineWidth(e.Width)
		dc.DrawLine(float64(from.X), float64(from.Y), float64(to.X), float64(to.Y))
		dc.Stroke()
	}

	for _, n := range layout.Nodes {
		dc.SetColor(opts.NodeColors[n.Variable])
		dc.DrawCircle(float64(n.X), float64(n.Y), netNodeR)
		dc.Fill()
		dc.SetColor(color.RGBA{0x22, 0x22, 0x22, 0xff})
		dc.SetLineWidth(1)
		dc.DrawCircle(float64(n.X), float64(n.Y), netNodeR)
		dc.Stroke()

		if n.X > layout.Width/2 {
			dc.DrawStringAnchored(n.Label, float64(n.X+netNodeR+8), float64(n.Y), 0, 0.5)
		} else {
			dc.DrawStringAnchored(n.Label, float64(n.X-netNodeR-8), float64(n.Y), 1, 0.5)
		}
	}

	drawNetworkLegendPNG(dc, layout, opts)
	return dc.SavePNG(path)
}

func drawNetworkLegendPNG(dc *gg.Context, layout networkLayout, opts NetworkOptions) {
	x := 24.0
	y := float64(layout.Height - netLegendH + 16)
	dc.SetColor(color.RGBA{0x11, 0x11, 0x11, 0xff})
	dc.DrawStringAnchored("Legend", x, y, 0, 0.5)

	entries := []struct {
		c    color.RGBA
		text string
	}{
		{opts.NodeColors[layout.Var1], layout.Var1},
		{opts.NodeColors[layout.Var2], layout.Var2},
		{opts.EdgeColors.Positive, "positive (p < 0.05)"},
		{opts.EdgeColors.Negative, "negative (p < 0.05)"},
		{opts.EdgeColors.Nonsignificant, "nonsignificant"},
	}
	for i, e := range entries {
		ey := y + 18 + float64(i*16)
		dc.SetColor(e.c)
		dc.DrawRectangle(x, ey-6, 12, 12)
		dc.Fill()
		dc.SetColor(color.RGBA{0x44, 0x44, 0x44, 0xff})
		dc.DrawStringAnchored(e.text, x+18, ey, 0, 0.5)
	}
}
