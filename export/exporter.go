// Package export produces downloadable artifacts from a diagram: the full
// serialized document as JSON, and a rasterized PNG of the canvas region.
// Exporters operate on a value snapshot taken at request time, so later
// session mutations cannot corrupt an in-flight export.
package export

import (
	"fmt"

	"flowboard/diagram"
)

// Format represents an export format.
type Format string

const (
	// FormatJSON exports the full serialized diagram, including viewport.
	FormatJSON Format = "json"
	// FormatPNG rasterizes the canvas region to a PNG image.
	FormatPNG Format = "png"
)

// Exporter converts a diagram into a downloadable artifact.
type Exporter interface {
	// Export converts a diagram to the target format.
	Export(d *diagram.Diagram) ([]byte, error)
	// Filename returns the download name for the artifact.
	Filename() string
	// FormatName returns a human-readable name for this format.
	FormatName() string
}

// FileWriter receives the finished artifact; implementations decide where
// downloads land.
type FileWriter interface {
	WriteFile(name string, data []byte) error
}

// NewExporter creates an exporter for the specified format.
func NewExporter(format Format, viewport diagram.Viewport) (Exporter, error) {
	switch format {
	case FormatJSON:
		return NewJSONExporter(viewport), nil
	case FormatPNG:
		return NewPNGExporter(DefaultImageOptions()), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "json":
		return FormatJSON, nil
	case "png", "image":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}
