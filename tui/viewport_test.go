package tui

import (
	"testing"

	"flowboard/diagram"
)

func TestZoomClamps(t *testing.T) {
	v := NewViewport()

	for i := 0; i < 50; i++ {
		v.ZoomIn()
	}
	if v.Zoom > maxZoom {
		t.Errorf("Zoom exceeded max: %v", v.Zoom)
	}

	for i := 0; i < 50; i++ {
		v.ZoomOut()
	}
	if v.Zoom < minZoom {
		t.Errorf("Zoom fell below min: %v", v.Zoom)
	}
}

func TestProjectUnprojectRoundTrip(t *testing.T) {
	v := NewViewport()
	v.OffsetX = 40
	v.OffsetY = 80
	v.Zoom = 2

	p := diagram.Point{X: 400, Y: 360}
	x, y := v.Project(p)
	back := v.Unproject(x, y)

	// Cell quantization loses at most one cell's worth of model units.
	if back.X < p.X-cellW || back.X > p.X+cellW {
		t.Errorf("Unproject x drifted: %v -> %v", p.X, back.X)
	}
	if back.Y < p.Y-cellH || back.Y > p.Y+cellH {
		t.Errorf("Unproject y drifted: %v -> %v", p.Y, back.Y)
	}
}

func TestFitViewCoversContent(t *testing.T) {
	v := NewViewport()
	d := &diagram.Diagram{
		Nodes: []diagram.Node{
			{ID: "n1", Position: diagram.Point{X: 10, Y: 100}},
			{ID: "n2", Position: diagram.Point{X: 1200, Y: 900}},
		},
	}

	v.FitView(d, 120, 40)

	// Both corners must project inside the cell area.
	for _, n := range d.Nodes {
		x, y := v.Project(n.Position)
		if x < 0 || y < 0 || x > 120 || y > 40 {
			t.Errorf("Node %s projected outside the view: (%d,%d)", n.ID, x, y)
		}
	}
}

func TestFitViewIgnoresDegenerateSize(t *testing.T) {
	v := NewViewport()
	before := *v
	v.FitView(&diagram.Diagram{}, 0, 0)
	if *v != before {
		t.Error("FitView with a zero-sized screen should not move the viewport")
	}
}
