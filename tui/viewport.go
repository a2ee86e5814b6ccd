package tui

import (
	"flowboard/diagram"
	"flowboard/layout"
)

// Model units per terminal cell at zoom 1. Terminal cells are roughly
// twice as tall as wide, so the vertical scale is coarser.
const (
	cellW = 12.0
	cellH = 28.0
)

const (
	minZoom  = 0.25
	maxZoom  = 4.0
	zoomStep = 1.25
)

// Viewport maps model coordinates onto screen cells.
type Viewport struct {
	OffsetX float64 // Model-space origin of the top-left cell
	OffsetY float64
	Zoom    float64
}

// NewViewport returns a viewport at the origin, zoom 1.
func NewViewport() *Viewport {
	return &Viewport{Zoom: 1}
}

// ZoomIn increases magnification one step, clamped.
func (v *Viewport) ZoomIn() {
	v.Zoom *= zoomStep
	if v.Zoom > maxZoom {
		v.Zoom = maxZoom
	}
}

// ZoomOut decreases magnification one step, clamped.
func (v *Viewport) ZoomOut() {
	v.Zoom /= zoomStep
	if v.Zoom < minZoom {
		v.Zoom = minZoom
	}
}

// FitView positions and scales the viewport so the whole diagram is
// visible in a width x height cell area.
func (v *Viewport) FitView(d *diagram.Diagram, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	minX, minY := 0.0, 0.0
	maxX := float64(layout.ColumnWidth)
	maxY := float64(layout.FirstRowY + layout.RowStep)
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
		if y := n.Position.Y + layout.RowStep; y > maxY {
			maxY = y
		}
	}

	zx := float64(width) * cellW / (maxX - minX)
	zy := float64(height) * cellH / (maxY - minY)
	v.Zoom = zx
	if zy < zx {
		v.Zoom = zy
	}
	if v.Zoom > maxZoom {
		v.Zoom = maxZoom
	}
	if v.Zoom < minZoom {
		v.Zoom = minZoom
	}
	v.OffsetX = minX
	v.OffsetY = minY
}

// Project converts a model point to a screen cell.
func (v *Viewport) Project(p diagram.Point) (int, int) {
	return int((p.X - v.OffsetX) * v.Zoom / cellW), int((p.Y - v.OffsetY) * v.Zoom / cellH)
}

// Unproject converts a screen cell back to a model point.
func (v *Viewport) Unproject(x, y int) diagram.Point {
	return diagram.Point{
		X: float64(x)*cellW/v.Zoom + v.OffsetX,
		Y: float64(y)*cellH/v.Zoom + v.OffsetY,
	}
}

// Export returns the viewport in the serialized diagram form.
func (v *Viewport) Export() diagram.Viewport {
	return diagram.Viewport{X: v.OffsetX, Y: v.OffsetY, Zoom: v.Zoom}
}
