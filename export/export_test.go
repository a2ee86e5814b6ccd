package export_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowboard/diagram"
	"flowboard/export"
	"flowboard/layout"
)

func sample(t *testing.T) *diagram.Diagram {
	t.Helper()
	d := &diagram.Diagram{}
	require.NoError(t, d.AddColumn(diagram.Column{ID: "a", Title: "A"}, layout.HeaderPosition(d)))
	require.NoError(t, d.AddColumn(diagram.Column{ID: "b", Title: "B"}, layout.HeaderPosition(d)))
	require.NoError(t, d.AddNode(diagram.Node{
		ID: "n1", Kind: diagram.KindDecision, Column: "a",
		Position: layout.NodePosition(d, "a"),
		Data:     diagram.NodeData{Label: "check"},
	}))
	require.NoError(t, d.AddNode(diagram.Node{
		ID: "n2", Kind: diagram.KindTerminator, Column: "b",
		Position: layout.NodePosition(d, "b"),
	}))
	_, err := d.AddEdge(diagram.DefaultEdge("n1", "n2"))
	require.NoError(t, err)
	return d
}

// memWriter collects written files; failing names simulate a download
// target rejecting the artifact.
type memWriter struct {
	files map[string][]byte
	fail  map[string]bool
}

func newMemWriter() *memWriter {
	return &memWriter{files: map[string][]byte{}, fail: map[string]bool{}}
}

func (w *memWriter) WriteFile(name string, data []byte) error {
	if w.fail[name] {
		return fmt.Errorf("refused %s", name)
	}
	w.files[name] = data
	return nil
}

func TestJSONExportDocument(t *testing.T) {
	viewport := diagram.Viewport{X: 12, Y: 34, Zoom: 1.5}
	exp := export.NewJSONExporter(viewport)

	assert.Equal(t, "flowchart-export.json", exp.Filename())

	data, err := exp.Export(sample(t))
	require.NoError(t, err)

	var doc export.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, viewport, doc.Viewport)
	assert.Len(t, doc.Columns, 2)
	assert.Len(t, doc.Edges, 1)
	// Full serialization keeps header nodes, unlike persistence.
	assert.Len(t, doc.Nodes, 4)
}

func TestPNGExportDecodes(t *testing.T) {
	exp := export.NewPNGExporter(export.DefaultImageOptions())

	data, err := exp.Export(sample(t))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), 0)
	assert.Greater(t, img.Bounds().Dy(), 0)
}

func TestPNGFilenameIsDated(t *testing.T) {
	exp := export.NewPNGExporter(export.DefaultImageOptions())
	date := time.Now().Format("2006-01-02")
	assert.Equal(t, "flowchart-"+date+".png", exp.Filename())
	assert.Equal(t, "flowchart-"+date+"-alt.png", exp.AltFilename())
}

func TestPNGExportRejectsOversizedCanvas(t *testing.T) {
	opts := export.DefaultImageOptions()
	opts.MaxPixels = 100
	exp := export.NewPNGExporter(opts)

	_, err := exp.Export(sample(t))
	assert.Error(t, err)
}

func TestSaveImageFirstAttempt(t *testing.T) {
	w := newMemWriter()
	name, err := export.SaveImage(sample(t), w)
	require.NoError(t, err)
	assert.Contains(t, name, ".png")
	assert.NotContains(t, name, "-alt")
	assert.Len(t, w.files, 1)
}

func TestSaveImageFallsBackOnce(t *testing.T) {
	exp := export.NewPNGExporter(export.DefaultImageOptions())
	w := newMemWriter()
	w.fail[exp.Filename()] = true

	name, err := export.SaveImage(sample(t), w)
	require.NoError(t, err)
	assert.Contains(t, name, "-alt.png")
	assert.Len(t, w.files, 1)
}

func TestSaveImageSurfacesDoubleFailure(t *testing.T) {
	exp := export.NewPNGExporter(export.DefaultImageOptions())
	w := newMemWriter()
	w.fail[exp.Filename()] = true
	w.fail[exp.AltFilename()] = true

	_, err := export.SaveImage(sample(t), w)
	require.Error(t, err)

	var imgErr *export.ImageError
	assert.True(t, errors.As(err, &imgErr))
	assert.Empty(t, w.files)
}

func TestSaveJSON(t *testing.T) {
	w := newMemWriter()
	name, err := export.SaveJSON(sample(t), diagram.Viewport{Zoom: 1}, w)
	require.NoError(t, err)
	assert.Equal(t, "flowchart-export.json", name)
	assert.NotEmpty(t, w.files[name])
}

func TestParseFormat(t *testing.T) {
	f, err := export.ParseFormat("png")
	require.NoError(t, err)
	assert.Equal(t, export.FormatPNG, f)

	_, err = export.ParseFormat("svg")
	assert.Error(t, err)
}
