// Package output renders resolved revision dates for the command line.
package output

import (
	"io"

	"github.com/PegasisForever/mkdocs-git-revision-date-localized-plugin/internal/dates"
)

// Entry holds the resolved dates of one file.
type Entry struct {
	Path     string
	Revision dates.Formats
	// Creation is nil unless creation dates were requested.
	Creation *dates.Formats
}

// Report is the input of every renderer.
type Report struct {
	// Type selects the date rendering shown by the text renderer.
	Type     string
	Locale   string
	TimeZone string
	Entries  []*Entry
}

// Renderer defines the interface for output renderers
type Renderer interface {
	// Render writes the report to the writer
	Render(w io.Writer, report *Report) error
}

// Format represents an output format
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ValidFormats returns the accepted --format values.
func ValidFormats() []string {
	return []string{string(FormatText), string(FormatJSON)}
}

// NewRenderer creates a renderer for the given format
func NewRenderer(format Format, colorEnabled bool) Renderer {
	switch format {
	case FormatJSON:
		return &JSONRenderer{}
	default:
		return &TextRenderer{ColorEnabled: colorEnabled}
	}
}
