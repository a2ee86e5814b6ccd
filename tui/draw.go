package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"flowboard/diagram"
	"flowboard/export"
	"flowboard/layout"
)

var (
	styleDefault  = tcell.StyleDefault
	styleHeader   = tcell.StyleDefault.Bold(true).Foreground(tcell.ColorTeal)
	styleSelected = tcell.StyleDefault.Bold(true).Foreground(tcell.ColorYellow)
	styleEdge     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus   = tcell.StyleDefault.Reverse(true)
)

// nodeCellHeight is the drawn box height in cells.
const nodeCellHeight = 3

func (u *UI) draw() {
	u.screen.Clear()
	w, h := u.screen.Size()

	if u.helpVisible {
		u.drawHelp(w, h)
		u.screen.Show()
		return
	}

	d := u.session.Diagram()

	u.drawLanes(d, w, h)
	u.drawEdges(d)
	for i := range d.Nodes {
		u.drawNode(&d.Nodes[i])
	}
	u.drawStatus(w, h)

	u.screen.Show()
}

// drawLanes marks each column slot with a faint separator on both sides.
func (u *UI) drawLanes(d *diagram.Diagram, w, h int) {
	for i := range d.Columns {
		left, _ := u.viewport.Project(diagram.Point{X: float64(i * (layout.ColumnWidth + layout.Gap))})
		right, _ := u.viewport.Project(diagram.Point{X: float64(i*(layout.ColumnWidth+layout.Gap) + layout.ColumnWidth)})
		for y := 0; y < h-2; y++ {
			u.setCell(left, y, '┊', styleEdge, w, h)
			u.setCell(right, y, '┊', styleEdge, w, h)
		}
	}
}

// drawEdges steps along each edge between node centers.
func (u *UI) drawEdges(d *diagram.Diagram) {
	w, h := u.screen.Size()
	for _, e := range d.Edges {
		src := d.FindNode(e.Source)
		dst := d.FindNode(e.Target)
		if src == nil || dst == nil {
			continue
		}
		x0, y0 := u.viewport.Project(nodeCenter(src))
		x1, y1 := u.viewport.Project(nodeCenter(dst))

		steps := abs(x1-x0) + abs(y1-y0)
		if steps == 0 {
			continue
		}
		for s := 0; s <= steps; s++ {
			x := x0 + (x1-x0)*s/steps
			y := y0 + (y1-y0)*s/steps
			u.setCell(x, y, '·', styleEdge, w, h)
		}
		u.setCell(x1, y1, '▸', styleEdge, w, h)
	}
}

// drawNode renders a node as a bordered box with its label inside.
func (u *UI) drawNode(n *diagram.Node) {
	w, h := u.screen.Size()
	x0, y0 := u.viewport.Project(n.Position)
	boxW := int(layout.NodeWidth * u.viewport.Zoom / cellW)
	if boxW < 6 {
		boxW = 6
	}

	style := styleDefault
	if n.IsHeader {
		style = styleHeader
	}
	if n.ID == u.session.SelectedNode() {
		style = styleSelected
	}

	u.setCell(x0, y0, '╭', style, w, h)
	u.setCell(x0+boxW-1, y0, '╮', style, w, h)
	u.setCell(x0, y0+nodeCellHeight-1, '╰', style, w, h)
	u.setCell(x0+boxW-1, y0+nodeCellHeight-1, '╯', style, w, h)
	for x := x0 + 1; x < x0+boxW-1; x++ {
		u.setCell(x, y0, '─', style, w, h)
		u.setCell(x, y0+nodeCellHeight-1, '─', style, w, h)
	}
	for y := y0 + 1; y < y0+nodeCellHeight-1; y++ {
		u.setCell(x0, y, '│', style, w, h)
		u.setCell(x0+boxW-1, y, '│', style, w, h)
	}

	label := n.Data.Label
	if len(label) > boxW-2 {
		label = label[:boxW-2]
	}
	lx := x0 + (boxW-len(label))/2
	for i, r := range label {
		u.setCell(lx+i, y0+1, r, style, w, h)
	}
}

// drawStatus renders the bottom bar and, above it, any open prompt line.
func (u *UI) drawStatus(w, h int) {
	undo, redo := u.session.HistoryStats()
	left := fmt.Sprintf(" undo:%d redo:%d  zoom:%.2f", undo, redo, u.viewport.Zoom)
	if sel := u.session.SelectedNode(); sel != "" {
		left += "  selected:" + sel
	}
	if u.status != "" {
		left += "  " + u.status
	}
	for x := 0; x < w; x++ {
		u.setCell(x, h-1, ' ', styleStatus, w, h)
	}
	for i, r := range left {
		u.setCell(i, h-1, r, styleStatus, w, h)
	}

	if u.prompt != promptNone {
		title := "node label: "
		if u.prompt == promptColumn {
			title = "column title: "
		}
		line := title + string(u.promptBuffer) + "▌"
		for x := 0; x < w; x++ {
			u.setCell(x, h-2, ' ', styleDefault, w, h)
		}
		for i, r := range line {
			u.setCell(i, h-2, r, styleDefault, w, h)
		}
	}
}

func (u *UI) drawHelp(w, h int) {
	for i, line := range helpLines {
		for j, r := range line {
			u.setCell(2+j, 1+i, r, styleDefault, w, h)
		}
	}
}

func (u *UI) setCell(x, y int, r rune, style tcell.Style, w, h int) {
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	u.screen.SetContent(x, y, r, nil, style)
}

// hitTest returns the id of the topmost node whose box covers the cell.
func (u *UI) hitTest(x, y int) string {
	d := u.session.Diagram()
	for i := len(d.Nodes) - 1; i >= 0; i-- {
		n := &d.Nodes[i]
		x0, y0 := u.viewport.Project(n.Position)
		boxW := int(layout.NodeWidth * u.viewport.Zoom / cellW)
		if boxW < 6 {
			boxW = 6
		}
		if x >= x0 && x < x0+boxW && y >= y0 && y < y0+nodeCellHeight {
			return n.ID
		}
	}
	return ""
}

func nodeCenter(n *diagram.Node) diagram.Point {
	return diagram.Point{
		X: n.Position.X + layout.NodeWidth/2,
		Y: n.Position.Y + export.NodeHeight/2,
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
