package main

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// renderFunc converts Markdown source to an HTML fragment. The CLI
// depends on this signature rather than on goldmark directly so the
// engine can be swapped without touching the argument or path logic.
type renderFunc func(src []byte) ([]byte, error)

// engine carries the fixed extension configuration used on every
// invocation: pipe tables, smart typography, attribute lists, and
// stable heading anchors. Fenced code blocks are part of goldmark's
// CommonMark core. The engine is stateless and safe to share.
var engine = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Typographer,
	),
	goldmark.WithParserOptions(
		parser.WithAttribute(),
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		// Raw HTML in the source passes through to the output.
		html.WithUnsafe(),
	),
)

// renderHTML converts Markdown to an HTML5 fragment (no <html>/<body>
// wrapper). Output is deterministic for a given input.
func renderHTML(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := engine.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("%w: %v", errConvert, err)
	}
	return buf.Bytes(), nil
}
