package frontend

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
)

// FS embeds the dashboard shell and its assets
//
//go:embed all:dist
var FS embed.FS

const pageFile = "index.html"

// GetHTTPFS returns the embedded shell filesystem for HTTP serving
func GetHTTPFS() (http.FileSystem, error) {
	sub, err := fs.Sub(FS, "dist")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open embedded dist")
	}

	if _, err := fs.Stat(sub, pageFile); err != nil {
		return nil, goerr.Wrap(err, "embedded shell page is missing", goerr.V("file", pageFile))
	}

	return http.FS(sub), nil
}

// PageTemplate parses the dashboard shell page
func PageTemplate() (*template.Template, error) {
	tmpl, err := template.ParseFS(FS, "dist/"+pageFile)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse shell page template")
	}
	return tmpl, nil
}
