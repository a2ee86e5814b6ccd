// Package editor owns the editing-session state core: the live diagram,
// the undo/redo history and the policies deciding which mutations are
// history-worthy. Rendering is a collaborator that re-reads the diagram
// after each mutation; it never observes a half-applied state because every
// operation completes synchronously before observers run.
package editor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"flowboard/diagram"
	"flowboard/layout"
)

// Store is the persistence collaborator the session saves through.
type Store interface {
	Save(ctx context.Context, d *diagram.Diagram) error
}

// Observer is notified once per completed mutation with the live diagram.
type Observer func(*diagram.Diagram)

// dragState tracks an in-progress drag gesture. The pre-drag snapshot is
// captured at gesture start and committed to history once at gesture end,
// so an entire drag collapses to a single undoable step.
type dragState struct {
	nodeID string
	origin *diagram.Diagram
	moved  bool
}

// Session orchestrates all mutations of one editing session's diagram
// through the history manager. Sessions are explicit objects, not ambient
// singletons; multiple independent sessions can coexist in one process.
type Session struct {
	d       *diagram.Diagram
	history *History

	selectedNode string
	selectedEdge string
	drag         *dragState

	observers []Observer
	logger    *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithHistoryLimit caps undo depth.
func WithHistoryLimit(limit int) Option {
	return func(s *Session) {
		s.history = NewHistory(limit)
	}
}

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithDiagram seeds the session with initial data.
func WithDiagram(d *diagram.Diagram) Option {
	return func(s *Session) {
		s.d = d
	}
}

// NewSession creates an editing session.
func NewSession(opts ...Option) *Session {
	s := &Session{
		d:       &diagram.Diagram{},
		history: NewHistory(0),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Diagram returns the live diagram. Callers must treat it as read-only;
// all mutations go through session operations.
func (s *Session) Diagram() *diagram.Diagram {
	return s.d
}

// Observe registers an observer called after every completed mutation.
func (s *Session) Observe(fn Observer) {
	s.observers = append(s.observers, fn)
}

func (s *Session) notify() {
	for _, fn := range s.observers {
		fn(s.d)
	}
}

// Load replaces the session state with a freshly loaded diagram. History
// is cleared: a fresh load supersedes the previous session's timeline.
func (s *Session) Load(d *diagram.Diagram) {
	s.d = d
	s.history.Clear()
	s.clearSelection()
	s.notify()
}

// NewNodeID derives a node id from the current time. Uniqueness within a
// session follows from nanosecond resolution.
func NewNodeID() string {
	return fmt.Sprintf("node-%d", time.Now().UnixNano())
}

// CreateNode adds a node to a column, placed by the layout policy. An empty
// columnID creates a free node at the origin; the caller positions it.
func (s *Session) CreateNode(kind diagram.NodeKind, data diagram.NodeData, columnID string) (string, error) {
	node := diagram.Node{
		ID:     NewNodeID(),
		Kind:   kind,
		Column: columnID,
		Data:   data,
	}
	if columnID != "" {
		if s.d.ColumnIndex(columnID) < 0 {
			return "", fmt.Errorf("column %q: %w", columnID, diagram.ErrNotFound)
		}
		node.Position = layout.NodePosition(s.d, columnID)
	}

	pre := s.d.Clone()
	if err := s.d.AddNode(node); err != nil {
		return "", err
	}
	s.commit(pre)
	s.logger.Debug("node created", "id", node.ID, "kind", kind, "column", columnID)
	return node.ID, nil
}

// CreateColumn appends a column and its header node. The header lands in
// the next free slot to the right, at the fixed header row.
func (s *Session) CreateColumn(col diagram.Column) error {
	pre := s.d.Clone()
	if err := s.d.AddColumn(col, layout.HeaderPosition(s.d)); err != nil {
		return err
	}
	s.commit(pre)
	s.logger.Debug("column created", "id", col.ID, "title", col.Title)
	return nil
}

// Connect creates a directed edge with default presentation between two
// existing nodes.
func (s *Session) Connect(source, target, label string) (diagram.Edge, error) {
	e := diagram.DefaultEdge(source, target)
	e.Label = label

	pre := s.d.Clone()
	added, err := s.d.AddEdge(e)
	if err != nil {
		return diagram.Edge{}, err
	}
	s.commit(pre)
	s.logger.Debug("edge connected", "id", added.ID, "source", source, "target", target)
	return added, nil
}

// UpdateNodeData replaces a node's payload. Reported to the user as a
// failure when the node is gone.
func (s *Session) UpdateNodeData(id string, data diagram.NodeData) error {
	pre := s.d.Clone()
	if err := s.d.UpdateNodeData(id, data); err != nil {
		return err
	}
	s.commit(pre)
	return nil
}

// DeleteNode removes a node and its incident edges. Deleting an absent node
// is a successful no-op and records no history entry, keeping deletion
// idempotent at the history level too.
func (s *Session) DeleteNode(id string) {
	if !s.d.HasNode(id) {
		return
	}
	pre := s.d.Clone()
	s.d.RemoveNode(id)
	if s.selectedNode == id {
		s.selectedNode = ""
	}
	s.commit(pre)
	s.logger.Debug("node deleted", "id", id)
}

// DeleteEdge removes an edge by id; absent edges are a no-op.
func (s *Session) DeleteEdge(id string) {
	found := false
	for _, e := range s.d.Edges {
		if e.ID == id {
			found = true
			break
		}
	}
	if !found {
		return
	}
	pre := s.d.Clone()
	s.d.RemoveEdge(id)
	if s.selectedEdge == id {
		s.selectedEdge = ""
	}
	s.commit(pre)
}

// DeleteSelection deletes the currently selected node or edge. No-op when
// nothing is selected.
func (s *Session) DeleteSelection() {
	switch {
	case s.selectedNode != "":
		s.DeleteNode(s.selectedNode)
	case s.selectedEdge != "":
		s.DeleteEdge(s.selectedEdge)
	}
}

// commit records the pre-mutation snapshot and runs observers. Called only
// after a mutation succeeded, so failed operations leave no history entry.
func (s *Session) commit(pre *diagram.Diagram) {
	s.history.RecordSnapshot(pre)
	s.notify()
}

// Undo restores the previous state. A no-op when the undo stack is empty.
func (s *Session) Undo() {
	if restored := s.history.Undo(s.d); restored != nil {
		s.d = restored
		s.clearSelection()
		s.notify()
	}
}

// Redo restores the next state. A no-op when the redo stack is empty.
func (s *Session) Redo() {
	if restored := s.history.Redo(s.d); restored != nil {
		s.d = restored
		s.clearSelection()
		s.notify()
	}
}

// CanUndo reports whether undo would change state.
func (s *Session) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether redo would change state.
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// HistoryStats returns undo/redo stack depths for the status line.
func (s *Session) HistoryStats() (undo, redo int) {
	return s.history.Stats()
}

// SelectNode marks a node as selected. Selection-only changes are never
// history-worthy.
func (s *Session) SelectNode(id string) {
	s.selectedNode = id
	s.selectedEdge = ""
}

// SelectEdge marks an edge as selected.
func (s *Session) SelectEdge(id string) {
	s.selectedEdge = id
	s.selectedNode = ""
}

// ClearSelection deselects everything (pane click).
func (s *Session) ClearSelection() {
	s.clearSelection()
}

func (s *Session) clearSelection() {
	s.selectedNode = ""
	s.selectedEdge = ""
}

// SelectedNode returns the selected node id, empty for none.
func (s *Session) SelectedNode() string { return s.selectedNode }

// SelectedEdge returns the selected edge id, empty for none.
func (s *Session) SelectedEdge() string { return s.selectedEdge }

// BeginDrag starts a drag gesture on a node. Header nodes refuse drags.
// The pre-drag state is captured here; position micro-updates during the
// gesture record nothing.
func (s *Session) BeginDrag(nodeID string) bool {
	node := s.d.FindNode(nodeID)
	if node == nil || node.IsHeader {
		return false
	}
	s.drag = &dragState{
		nodeID: nodeID,
		origin: s.d.Clone(),
	}
	return true
}

// DragTo applies a position micro-update for the dragged node. Not
// history-worthy per individual update.
func (s *Session) DragTo(pos diagram.Point) {
	if s.drag == nil {
		return
	}
	if node := s.d.FindNode(s.drag.nodeID); node != nil {
		if node.Position != pos {
			node.Position = pos
			s.drag.moved = true
		}
	}
	s.notify()
}

// EndDrag commits the gesture: exactly one history entry for the whole
// drag, and none at all if the node never moved.
func (s *Session) EndDrag() {
	drag := s.drag
	s.drag = nil
	if drag == nil || !drag.moved {
		return
	}
	s.history.RecordSnapshot(drag.origin)
	s.notify()
}

// Dragging reports whether a drag gesture is in progress.
func (s *Session) Dragging() bool { return s.drag != nil }

// Save persists the diagram through the store. Failures are logged and
// returned, never fatal to the session.
func (s *Session) Save(ctx context.Context, store Store) error {
	if err := store.Save(ctx, s.d); err != nil {
		s.logger.Error("save failed", "error", err)
		return err
	}
	s.logger.Info("diagram saved",
		"nodes", len(s.d.Nodes), "edges", len(s.d.Edges), "columns", len(s.d.Columns))
	return nil
}

// ExportClone returns a value snapshot for export side effects, decoupled
// from subsequent mutations so an in-flight export cannot be corrupted.
func (s *Session) ExportClone() *diagram.Diagram {
	return s.d.Clone()
}
