// Package tui is the rendering collaborator: a tcell-based view that
// re-reads the session's diagram after every dispatched intent and feeds
// key and mouse events back into the session controller.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"flowboard/diagram"
	"flowboard/editor"
	"flowboard/export"
)

// promptKind identifies which modal text input is open.
type promptKind int

const (
	promptNone promptKind = iota
	promptNode
	promptColumn
)

// UI drives one editing session on a tcell screen.
type UI struct {
	screen   tcell.Screen
	session  *editor.Session
	viewport *Viewport
	store    editor.Store
	writer   export.FileWriter
	logger   *slog.Logger

	prompt       promptKind
	promptBuffer []rune
	helpVisible  bool
	status       string

	dragging bool
}

// New creates a UI for the session. The store may be nil (no persistence);
// the screen is created on Run.
func New(session *editor.Session, store editor.Store, writer export.FileWriter, logger *slog.Logger) *UI {
	if logger == nil {
		logger = slog.Default()
	}
	return &UI{
		session:  session,
		viewport: NewViewport(),
		store:    store,
		writer:   writer,
		logger:   logger,
	}
}

// Run starts the interactive loop: render, read an event, handle it.
func (u *UI) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	u.screen = screen
	defer screen.Fini()

	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault)

	for {
		u.draw()

		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if u.handleKey(ev) {
				return nil
			}
		case *tcell.EventMouse:
			u.handleMouse(ev)
		}
	}
}

// handleKey processes one key event; returns true to exit.
func (u *UI) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}

	if u.helpVisible {
		u.helpVisible = false
		return false
	}

	if u.prompt != promptNone {
		u.handlePromptKey(ev)
		return false
	}

	if ev.Key() == tcell.KeyEscape {
		u.session.ClearSelection()
		return false
	}
	if ev.Key() == tcell.KeyRune && ev.Rune() == 'q' && ev.Modifiers() == 0 {
		return true
	}

	intent := editor.Dispatch(translateKey(ev), false)
	u.dispatch(intent)
	return false
}

// dispatch executes a high-level intent against the session.
func (u *UI) dispatch(intent editor.Intent) {
	switch intent {
	case editor.IntentNewNode:
		u.prompt = promptNode
		u.promptBuffer = u.promptBuffer[:0]

	case editor.IntentNewColumn:
		u.prompt = promptColumn
		u.promptBuffer = u.promptBuffer[:0]

	case editor.IntentUndo:
		u.session.Undo()

	case editor.IntentRedo:
		u.session.Redo()

	case editor.IntentDeleteSelection:
		u.session.DeleteSelection()

	case editor.IntentExportImage:
		u.exportImage()

	case editor.IntentExportFile:
		u.exportFile()

	case editor.IntentZoomIn:
		if u.screen == nil {
			return
		}
		u.viewport.ZoomIn()

	case editor.IntentZoomOut:
		if u.screen == nil {
			return
		}
		u.viewport.ZoomOut()

	case editor.IntentFitView:
		if u.screen == nil {
			return
		}
		w, h := u.screen.Size()
		u.viewport.FitView(u.session.Diagram(), w, h-2)

	case editor.IntentHelp:
		u.helpVisible = true
	}
}

// handlePromptKey edits the modal text input. Enter commits, ESC cancels.
func (u *UI) handlePromptKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		u.prompt = promptNone

	case tcell.KeyEnter:
		u.commitPrompt()

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(u.promptBuffer) > 0 {
			u.promptBuffer = u.promptBuffer[:len(u.promptBuffer)-1]
		}

	case tcell.KeyRune:
		u.promptBuffer = append(u.promptBuffer, ev.Rune())
	}
}

// commitPrompt turns the prompt text into a create intent. Nodes land in
// the column of the current selection, falling back to the first column.
func (u *UI) commitPrompt() {
	label := string(u.promptBuffer)
	kind := u.prompt
	u.prompt = promptNone
	if label == "" {
		return
	}

	d := u.session.Diagram()
	switch kind {
	case promptNode:
		column := ""
		if sel := d.FindNode(u.session.SelectedNode()); sel != nil {
			column = sel.Column
		}
		if column == "" && len(d.Columns) > 0 {
			column = d.Columns[0].ID
		}
		id, err := u.session.CreateNode(diagram.KindGeneric, diagram.NodeData{Label: label}, column)
		if err != nil {
			u.status = fmt.Sprintf("create node: %v", err)
			return
		}
		u.session.SelectNode(id)
		u.status = "node added"

	case promptColumn:
		col := diagram.Column{
			ID:    fmt.Sprintf("col-%d", time.Now().UnixNano()),
			Title: label,
		}
		if err := u.session.CreateColumn(col); err != nil {
			u.status = fmt.Sprintf("create column: %v", err)
			return
		}
		u.status = "column added"
	}
}

// handleMouse maps clicks to selection and button-held motion to drag
// gestures, so a full drag collapses to one undoable step in the session.
func (u *UI) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()

	if ev.Buttons()&tcell.Button1 == 0 {
		if u.dragging {
			u.session.EndDrag()
			u.dragging = false
		}
		return
	}

	if u.dragging {
		u.session.DragTo(u.viewport.Unproject(x, y))
		return
	}

	if id := u.hitTest(x, y); id != "" {
		u.session.SelectNode(id)
		if u.session.BeginDrag(id) {
			u.dragging = true
		}
		return
	}

	// Pane click: selection-only change, never history-worthy.
	u.session.ClearSelection()
}

// exportImage rasterizes a value snapshot of the diagram. One retry with
// reduced options happens inside SaveImage.
func (u *UI) exportImage() {
	if u.writer == nil {
		return
	}
	name, err := export.SaveImage(u.session.ExportClone(), u.writer)
	if err != nil {
		u.logger.Error("image export failed", "error", err)
		u.status = fmt.Sprintf("export failed: %v", err)
		return
	}
	u.logger.Info("image exported", "file", name)
	u.status = "exported " + name
}

// exportFile writes the full serialized diagram, including viewport.
func (u *UI) exportFile() {
	if u.writer == nil {
		return
	}
	name, err := export.SaveJSON(u.session.ExportClone(), u.viewport.Export(), u.writer)
	if err != nil {
		u.logger.Error("file export failed", "error", err)
		u.status = fmt.Sprintf("export failed: %v", err)
		return
	}
	u.logger.Info("file exported", "file", name)
	u.status = "exported " + name
}

// SaveSession persists the current diagram through the configured store.
func (u *UI) SaveSession(ctx context.Context) error {
	if u.store == nil {
		return nil
	}
	return u.session.Save(ctx, u.store)
}
