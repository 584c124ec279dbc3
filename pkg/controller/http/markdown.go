package http

import (
	"bytes"
	"html/template"

	"github.com/m-mizutani/goerr/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.Linkify))

// renderMarkdown converts configured markdown to HTML. Raw HTML in the
// source is omitted by goldmark's default renderer.
func renderMarkdown(src string) (template.HTML, error) {
	if src == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", goerr.Wrap(err, "failed to render markdown")
	}
	return template.HTML(buf.String()), nil
}
