// Package document turns raw file content into the ordered line sequence
// consumed by the renderer.
package document

import (
	"bytes"
	"errors"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when input content is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

// byteOrderMark is stripped from the start of decoded content.
var byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

// LineInfo holds byte offsets for a single line.
type LineInfo struct {
	// StartOffset is the offset of the first byte of the line.
	StartOffset int

	// NewlineStart is the offset where the line terminator begins,
	// or the end of content for an unterminated last line.
	NewlineStart int

	// EndOffset is the offset just past the line terminator.
	EndOffset int
}

// BuildLines computes line boundaries using universal newlines:
// LF, CRLF and a lone CR all terminate a line. A terminator at the very end
// of content does not start an extra empty line.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx := 0; idx < len(content); idx++ {
		char := content[idx]
		if char != '\n' && char != '\r' {
			continue
		}

		end := idx + 1
		if char == '\r' && end < len(content) && content[end] == '\n' {
			end++
		}

		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: idx,
			EndOffset:    end,
		})
		lineStart = end
		idx = end - 1
	}

	// Handle last line (may not have trailing newline).
	if lineStart < len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return lines
}

// Split returns the lines of content with terminators removed.
func Split(content []byte) []string {
	infos := BuildLines(content)
	lines := make([]string, len(infos))
	for i, info := range infos {
		lines[i] = string(content[info.StartOffset:info.NewlineStart])
	}
	return lines
}

// Decode validates content as UTF-8, drops a leading byte order mark and
// splits it into lines.
func Decode(content []byte) ([]string, error) {
	if !utf8.Valid(content) {
		return nil, ErrInvalidUTF8
	}
	return Split(bytes.TrimPrefix(content, byteOrderMark)), nil
}
