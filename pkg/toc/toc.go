// Package toc extracts a table of contents from the markdown headings of a
// product description.
package toc

import (
	"bytes"
	"strings"

	"Shelf/pkg/slug"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var markdown = goldmark.New()

type Entry struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	ID    string `json:"id"`
}

// Build returns one entry per heading in document order. Code blocks are
// parsed as code, so '#' lines inside them never become entries.
func Build(source string) []Entry {
	entries := make([]Entry, 0)
	src := []byte(source)
	doc := markdown.Parser().Parse(text.NewReader(src))
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if title := strings.TrimSpace(inlineText(h, src)); title != "" {
			entries = append(entries, Entry{
				Level: h.Level,
				Text:  title,
				ID:    slug.Make(title),
			})
		}
		return ast.WalkSkipChildren, nil
	})
	return entries
}

// inlineText 拼接标题内的纯文本，忽略强调、链接等标记
func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}
