// Package views holds the embedded HTML templates and the Fiber view engine
// configured with them.
package views

import (
	"embed"
	"net/http"
	"time"

	"github.com/gofiber/template/html/v2"
)

//go:embed layouts/*.html *.html
var FS embed.FS

//go:embed static
var Static embed.FS

// Engine builds the html/template engine over the embedded templates.
func Engine() *html.Engine {
	engine := html.NewFileSystem(http.FS(FS), ".html")

	// Backend timestamps arrive as RFC 3339 strings; show the raw value if
	// one ever doesn't parse.
	engine.AddFunc("formatDate", func(ts string) string {
		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return ts
		}
		return t.Format("Jan 2, 2006")
	})

	engine.AddFunc("truncate", func(s string, n int) string {
		runes := []rune(s)
		if len(runes) <= n {
			return s
		}
		return string(runes[:n]) + "..."
	})

	return engine
}
