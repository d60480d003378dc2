package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// TextRenderer renders one line per file with the selected date type
type TextRenderer struct {
	ColorEnabled bool
}

// Render writes the report in text format
func (r *TextRenderer) Render(w io.Writer, report *Report) error {
	pathColor := color.New(color.Bold)
	dateColor := color.New(color.FgGreen)
	createdColor := color.New(color.FgCyan)
	for _, c := range []*color.Color{pathColor, dateColor, createdColor} {
		if r.ColorEnabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	width := 0
	for _, e := range report.Entries {
		if len(e.Path) > width {
			width = len(e.Path)
		}
	}

	for _, e := range report.Entries {
		revised, err := e.Revision.Get(report.Type)
		if err != nil {
			return err
		}

		padding := fmt.Sprintf("%*s", width-len(e.Path), "")
		fmt.Fprintf(w, "%s%s  %s\n", pathColor.Sprint(e.Path), padding, dateColor.Sprint(revised))

		if e.Creation != nil {
			created, err := e.Creation.Get(report.Type)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%*s  created: %s\n", width, "", createdColor.Sprint(created))
		}
	}

	return nil
}
