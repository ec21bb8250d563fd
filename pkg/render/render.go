// Package render converts the restricted Markdown dialect into HTML fragments.
//
// Each line goes through the inline stage (hash markers, then strip markers),
// is trimmed, and is classified in a fixed order: heading, unordered item,
// ordered item, blank, paragraph. A Renderer tracks which list block, if any,
// is open so that list items are wrapped in a single <ul> or <ol> pair that
// is closed before any other content and at the end of the document.
package render

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/yaklabco/gomd2html/pkg/document"
)

// ListKind identifies the list block currently open.
type ListKind int

const (
	// ListNone means no list block is open.
	ListNone ListKind = iota
	// ListUnordered means a <ul> block is open.
	ListUnordered
	// ListOrdered means an <ol> block is open.
	ListOrdered
)

// String returns the name of the list kind.
func (k ListKind) String() string {
	switch k {
	case ListUnordered:
		return "unordered"
	case ListOrdered:
		return "ordered"
	default:
		return "none"
	}
}

func (k ListKind) openTag() string {
	if k == ListOrdered {
		return "<ol>"
	}
	return "<ul>"
}

func (k ListKind) closeTag() string {
	if k == ListOrdered {
		return "</ol>"
	}
	return "</ul>"
}

const (
	unorderedPrefix = "- "
	itemIndent      = "    "
	fragmentSep     = "\n"
)

// Stats counts what a Renderer has seen and emitted.
type Stats struct {
	Lines        int
	Headings     int
	Paragraphs   int
	Lists        int
	ListItems    int
	BlankLines   int
	HashMarkers  int
	StripMarkers int
}

// Renderer is a single-pass line transducer. The zero value is ready to use.
// A Renderer is not safe for concurrent use.
type Renderer struct {
	kind      ListKind
	fragments []string
	stats     Stats
}

// NewRenderer returns an empty Renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Line processes one raw source line.
func (r *Renderer) Line(raw string) {
	r.stats.Lines++
	line := strings.TrimSpace(r.inline(raw))

	switch {
	case strings.HasPrefix(line, "#"):
		r.heading(line)
	case strings.HasPrefix(line, unorderedPrefix):
		r.item(ListUnordered, line[len(unorderedPrefix):])
	case isOrderedItem(line):
		r.item(ListOrdered, line[strings.IndexByte(line, '.')+1:])
	case line == "":
		r.stats.BlankLines++
	default:
		r.closeList()
		r.stats.Paragraphs++
		r.emit("<p>" + line + "</p>")
	}
}

// Finish closes any open list block and returns the fragments emitted so far.
// Calling Finish more than once is harmless.
func (r *Renderer) Finish() []string {
	r.closeList()
	out := make([]string, len(r.fragments))
	copy(out, r.fragments)
	return out
}

// Open reports the list block currently open.
func (r *Renderer) Open() ListKind {
	return r.kind
}

// Stats returns the counters collected so far.
func (r *Renderer) Stats() Stats {
	return r.stats
}

func (r *Renderer) inline(raw string) string {
	line, hashes := replaceMarkers(raw, hashOpen, hashClose, md5Hex)
	line, strips := replaceMarkers(line, stripOpen, stripClose, stripC)
	r.stats.HashMarkers += hashes
	r.stats.StripMarkers += strips
	return line
}

func (r *Renderer) heading(line string) {
	r.closeList()

	level := len(line) - len(strings.TrimLeft(line, "#"))
	tag := strconv.Itoa(level)
	text := strings.TrimSpace(line[level:])

	r.stats.Headings++
	r.emit("<h" + tag + ">" + text + "</h" + tag + ">")
}

func (r *Renderer) item(kind ListKind, rest string) {
	if r.kind != kind {
		r.closeList()
		r.kind = kind
		r.stats.Lists++
		r.emit(kind.openTag())
	}

	r.stats.ListItems++
	r.emit(itemIndent + "<li>" + strings.TrimSpace(rest) + "</li>")
}

func (r *Renderer) closeList() {
	if r.kind == ListNone {
		return
	}
	r.emit(r.kind.closeTag())
	r.kind = ListNone
}

func (r *Renderer) emit(fragment string) {
	r.fragments = append(r.fragments, fragment)
}

// isOrderedItem reports whether line starts with one or more decimal digits,
// a '.', and a whitespace character.
func isOrderedItem(line string) bool {
	digits := strings.IndexFunc(line, func(r rune) bool { return !unicode.IsDigit(r) })
	if digits <= 0 || line[digits] != '.' {
		return false
	}

	next, size := utf8.DecodeRuneInString(line[digits+1:])
	return size > 0 && unicode.IsSpace(next)
}

// Render is the pure core: it converts source lines into HTML fragments.
func Render(lines []string) []string {
	r := NewRenderer()
	for _, line := range lines {
		r.Line(line)
	}
	return r.Finish()
}

// Join concatenates fragments one per line with no trailing newline.
func Join(fragments []string) string {
	return strings.Join(fragments, fragmentSep)
}

// RenderString splits content into lines, renders it and joins the result.
func RenderString(content string) string {
	return Join(Render(document.Split([]byte(content))))
}
