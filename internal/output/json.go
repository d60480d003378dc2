package output

import (
	"encoding/json"
	"io"

	"github.com/PegasisForever/mkdocs-git-revision-date-localized-plugin/internal/dates"
)

// JSONRenderer renders output in JSON format
type JSONRenderer struct{}

// jsonOutput is the structure for JSON output
type jsonOutput struct {
	Version  string      `json:"version"`
	Locale   string      `json:"locale"`
	TimeZone string      `json:"time_zone"`
	Files    []jsonEntry `json:"files"`
}

type jsonEntry struct {
	Path     string         `json:"path"`
	Revision dates.Formats  `json:"revision"`
	Creation *dates.Formats `json:"creation,omitempty"`
}

// Render writes the report in JSON format. Every date type is included.
func (r *JSONRenderer) Render(w io.Writer, report *Report) error {
	output := jsonOutput{
		Version:  "1.0",
		Locale:   report.Locale,
		TimeZone: report.TimeZone,
		Files:    make([]jsonEntry, 0, len(report.Entries)),
	}
	for _, e := range report.Entries {
		output.Files = append(output.Files, jsonEntry{
			Path:     e.Path,
			Revision: e.Revision,
			Creation: e.Creation,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	// timeago values are HTML fragments and must stay readable
	encoder.SetEscapeHTML(false)
	return encoder.Encode(output)
}
