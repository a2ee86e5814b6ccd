package export

import (
	"encoding/json"

	"flowboard/diagram"
)

// JSONFilename is the fixed download name for file exports.
const JSONFilename = "flowchart-export.json"

// Document is the serialized shape of a file export: the full diagram plus
// the viewport at export time.
type Document struct {
	Nodes    []diagram.Node   `json:"nodes"`
	Edges    []diagram.Edge   `json:"edges"`
	Columns  []diagram.Column `json:"columns"`
	Viewport diagram.Viewport `json:"viewport"`
}

// JSONExporter exports the full serialized diagram as an indented JSON
// document.
type JSONExporter struct {
	viewport diagram.Viewport
}

// NewJSONExporter creates a JSON exporter carrying the viewport to embed.
func NewJSONExporter(viewport diagram.Viewport) *JSONExporter {
	return &JSONExporter{viewport: viewport}
}

// Export converts a diagram to JSON.
func (e *JSONExporter) Export(d *diagram.Diagram) ([]byte, error) {
	doc := Document{
		Nodes:    d.Nodes,
		Edges:    d.Edges,
		Columns:  d.Columns,
		Viewport: e.viewport,
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Filename returns the download name for file exports.
func (e *JSONExporter) Filename() string {
	return JSONFilename
}

// FormatName returns the format name.
func (e *JSONExporter) FormatName() string {
	return "JSON"
}
