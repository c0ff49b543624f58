// Package render turns structured notification fields into a displayable
// data: URL payload. It is pure and keeps no state.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/url"

	"github.com/bnema/webnotify/internal/domain/entity"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// templateData is the substitution set shared by the three layouts. Field
// escaping is handled by html/template.
type templateData struct {
	IconURL   string
	Title     string
	Body      string
	LineName  string
	Line      string
	IconFloat string
	Dir       string
}

// DataURL renders notification fields into a data:text/html URL.
//
// Layout selection: an icon+text layout when iconURL is non-empty, a
// single-line layout when exactly one of title/body is non-empty, and a
// two-line layout otherwise. The text direction flag picks rtl/ltr (and the
// icon float side) independently of the layout branch.
func DataURL(iconURL, title, body string, dir entity.TextDirection) (string, error) {
	data := templateData{
		IconURL: iconURL,
		Title:   title,
		Body:    body,
		Dir:     "ltr",
	}
	if dir == entity.DirectionRightToLeft {
		data.Dir = "rtl"
	}

	var name string
	switch {
	case iconURL != "":
		name = "icon.html"
		data.IconFloat = "left"
		if dir == entity.DirectionRightToLeft {
			data.IconFloat = "right"
		}
	case (title == "") != (body == ""):
		name = "one_line.html"
		// The line name doubles as the div class in the template.
		data.LineName = "title"
		data.Line = title
		if title == "" {
			data.LineName = "description"
			data.Line = body
		}
	default:
		name = "two_line.html"
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render notification template %s: %w", name, err)
	}

	return "data:text/html;charset=utf-8," + url.PathEscape(buf.String()), nil
}
