package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"time"

	"flowboard/diagram"
	"flowboard/layout"
)

// NodeHeight is the rendered height of a node box, in model units.
const NodeHeight = 60

// headerHeight is the rendered height of a column header band.
const headerHeight = 40

// canvasMargin pads the rendered region on every side, in model units.
const canvasMargin = 40

// ImageOptions controls rasterization.
type ImageOptions struct {
	Scale      float64     // Pixels per model unit
	Background color.Color // nil renders a transparent background
	MaxPixels  int         // Upper bound on output size
}

// DefaultImageOptions is the first-attempt option set.
func DefaultImageOptions() ImageOptions {
	return ImageOptions{
		Scale:      2,
		Background: color.White,
		MaxPixels:  32 << 20,
	}
}

// ReducedOptions is the bounded fallback used after a failed export:
// unit scale, no background fill.
func ReducedOptions() ImageOptions {
	return ImageOptions{
		Scale:     1,
		MaxPixels: 32 << 20,
	}
}

// ImageError wraps both attempt failures of an image export.
type ImageError struct {
	First  error
	Second error
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("image export failed twice: %v; retry: %v", e.First, e.Second)
}

func (e *ImageError) Unwrap() error {
	return e.Second
}

var kindFills = map[diagram.NodeKind]color.RGBA{
	diagram.KindGeneric:    {R: 0xdb, G: 0xea, B: 0xfe, A: 0xff},
	diagram.KindTerminator: {R: 0xdc, G: 0xfc, B: 0xe7, A: 0xff},
	diagram.KindDecision:   {R: 0xfe, G: 0xf3, B: 0xc7, A: 0xff},
	diagram.KindDocument:   {R: 0xfc, G: 0xe7, B: 0xf3, A: 0xff},
	diagram.KindHeader:     {R: 0xe5, G: 0xe7, B: 0xeb, A: 0xff},
}

var (
	laneFill   = color.RGBA{R: 0xf8, G: 0xfa, B: 0xfc, A: 0xff}
	borderGray = color.RGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff}
	edgeGray   = color.RGBA{R: 0x37, G: 0x41, B: 0x51, A: 0xff}
)

// PNGExporter rasterizes the canvas region of the diagram. Overlay layers
// (controls, minimap, panels, toasts) exist only in the interactive UI and
// are never part of the model, so the raster contains the canvas alone.
type PNGExporter struct {
	opts ImageOptions
	now  func() time.Time
}

// NewPNGExporter creates a PNG exporter with the given options.
func NewPNGExporter(opts ImageOptions) *PNGExporter {
	return &PNGExporter{opts: opts, now: time.Now}
}

// Export rasterizes the diagram to an encoded PNG.
func (e *PNGExporter) Export(d *diagram.Diagram) ([]byte, error) {
	if e.opts.Scale <= 0 {
		return nil, fmt.Errorf("invalid scale %v", e.opts.Scale)
	}

	minX, minY, maxX, maxY := contentBounds(d)
	w := int((maxX - minX + 2*canvasMargin) * e.opts.Scale)
	h := int((maxY - minY + 2*canvasMargin) * e.opts.Scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if e.opts.MaxPixels > 0 && w*h > e.opts.MaxPixels {
		return nil, fmt.Errorf("canvas %dx%d exceeds pixel budget", w, h)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if e.opts.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(e.opts.Background), image.Point{}, draw.Src)
	}

	// Model coordinates to pixels.
	px := func(x float64) int { return int((x - minX + canvasMargin) * e.opts.Scale) }
	py := func(y float64) int { return int((y - minY + canvasMargin) * e.opts.Scale) }

	// Lane backgrounds, one per column slot.
	for i := range d.Columns {
		x0 := px(float64(i * (layout.ColumnWidth + layout.Gap)))
		x1 := px(float64(i*(layout.ColumnWidth+layout.Gap) + layout.ColumnWidth))
		fillRect(img, x0, 0, x1, h, laneFill)
	}

	// Edges under nodes.
	for _, edge := range d.Edges {
		src := d.FindNode(edge.Source)
		dst := d.FindNode(edge.Target)
		if src == nil || dst == nil {
			continue
		}
		x0 := px(src.Position.X + layout.NodeWidth/2)
		y0 := py(src.Position.Y + nodeBoxHeight(src)/2)
		x1 := px(dst.Position.X + layout.NodeWidth/2)
		y1 := py(dst.Position.Y + nodeBoxHeight(dst)/2)
		drawLine(img, x0, y0, x1, y1, edgeGray)
		if edge.Arrow {
			drawArrowhead(img, x1, y1, edgeGray)
		}
	}

	for _, node := range d.Nodes {
		fill, ok := kindFills[node.Kind]
		if !ok {
			fill = kindFills[diagram.KindGeneric]
		}
		x0 := px(node.Position.X)
		y0 := py(node.Position.Y)
		x1 := px(node.Position.X + layout.NodeWidth)
		y1 := py(node.Position.Y + nodeBoxHeight(&node))
		fillRect(img, x0, y0, x1, y1, fill)
		strokeRect(img, x0, y0, x1, y1, borderGray)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename returns the dated download name, e.g. flowchart-2026-08-30.png.
func (e *PNGExporter) Filename() string {
	return fmt.Sprintf("flowchart-%s.png", e.now().Format("2006-01-02"))
}

// AltFilename is the download name used by the fallback attempt.
func (e *PNGExporter) AltFilename() string {
	return fmt.Sprintf("flowchart-%s-alt.png", e.now().Format("2006-01-02"))
}

// FormatName returns the format name.
func (e *PNGExporter) FormatName() string {
	return "PNG"
}

// SaveImage rasterizes the diagram and writes it through w. On failure it
// makes exactly one more attempt with ReducedOptions under the -alt name;
// a second failure surfaces an ImageError. Returns the written filename.
func SaveImage(d *diagram.Diagram, w FileWriter) (string, error) {
	exp := NewPNGExporter(DefaultImageOptions())
	name, err := exportTo(exp, exp.Filename(), d, w)
	if err == nil {
		return name, nil
	}

	retry := NewPNGExporter(ReducedOptions())
	name, rerr := exportTo(retry, retry.AltFilename(), d, w)
	if rerr == nil {
		return name, nil
	}
	return "", &ImageError{First: err, Second: rerr}
}

func exportTo(exp Exporter, name string, d *diagram.Diagram, w FileWriter) (string, error) {
	data, err := exp.Export(d)
	if err != nil {
		return "", err
	}
	if err := w.WriteFile(name, data); err != nil {
		return "", err
	}
	return name, nil
}

// SaveJSON serializes the diagram with its viewport and writes it through w.
func SaveJSON(d *diagram.Diagram, viewport diagram.Viewport, w FileWriter) (string, error) {
	exp := NewJSONExporter(viewport)
	data, err := exp.Export(d)
	if err != nil {
		return "", err
	}
	if err := w.WriteFile(exp.Filename(), data); err != nil {
		return "", err
	}
	return exp.Filename(), nil
}

func nodeBoxHeight(n *diagram.Node) float64 {
	if n.IsHeader {
		return headerHeight
	}
	return NodeHeight
}

func contentBounds(d *diagram.Diagram) (minX, minY, maxX, maxY float64) {
	maxX, maxY = layout.ColumnWidth, layout.FirstRowY
	for _, n := range d.Nodes {
		if n.Position.X < minX {
			minX = n.Position.X
		}
		if n.Position.Y < minY {
			minY = n.Position.Y
		}
		if x := n.Position.X + layout.NodeWidth; x > maxX {
			maxX = x
		}
		if y := n.Position.Y + nodeBoxHeight(&n); y > maxY {
			maxY = y
		}
	}
	if cols := len(d.Columns); cols > 0 {
		if x := float64((cols-1)*(layout.ColumnWidth+layout.Gap) + layout.ColumnWidth); x > maxX {
			maxX = x
		}
	}
	return minX, minY, maxX, maxY
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	r := image.Rect(x0, y0, x1, y1).Intersect(img.Bounds())
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func strokeRect(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	drawLine(img, x0, y0, x1, y0, c)
	drawLine(img, x1, y0, x1, y1, c)
	drawLine(img, x1, y1, x0, y1, c)
	drawLine(img, x0, y1, x0, y0, c)
}

// drawLine is a basic Bresenham rasterizer.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		if (image.Point{X: x0, Y: y0}).In(img.Bounds()) {
			img.Set(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawArrowhead marks the target end of an edge with a small solid square.
func drawArrowhead(img *image.RGBA, x, y int, c color.Color) {
	const size = 3
	fillRect(img, x-size, y-size, x+size+1, y+size+1, c)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
