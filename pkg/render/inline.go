package render

import (
	"crypto/md5" //nolint:gosec // MD5 is the marker output format, not a security primitive
	"encoding/hex"
	"strings"
)

// Inline marker delimiters.
const (
	hashOpen   = "[["
	hashClose  = "]]"
	stripOpen  = "(("
	stripClose = "))"
)

// ApplyHashMarker replaces every [[text]] span, delimiters included, with the
// lowercase hex MD5 digest of text's UTF-8 bytes.
func ApplyHashMarker(line string) string {
	out, _ := replaceMarkers(line, hashOpen, hashClose, md5Hex)
	return out
}

// ApplyStripC replaces every ((text)) span, delimiters included, with text
// after removing all 'c' and 'C' characters.
func ApplyStripC(line string) string {
	out, _ := replaceMarkers(line, stripOpen, stripClose, stripC)
	return out
}

// ApplyInline runs hash markers over the whole line, then strip markers over
// the result.
func ApplyInline(line string) string {
	return ApplyStripC(ApplyHashMarker(line))
}

// replaceMarkers scans line left to right for open ... closing spans and
// substitutes each one with replace(inner). The inner text ends at the first
// closing delimiter after the opener, spans never overlap, and replacements
// are not rescanned. An opener without a closing delimiter stays literal.
// It returns the rewritten line and the number of spans replaced.
func replaceMarkers(line, open, closing string, replace func(string) string) (string, int) {
	var (
		out   strings.Builder
		count int
	)

	rest := line
	for {
		start := strings.Index(rest, open)
		if start < 0 {
			break
		}

		innerStart := start + len(open)
		end := strings.Index(rest[innerStart:], closing)
		if end < 0 {
			// No later opener can find a closing delimiter either.
			break
		}

		out.WriteString(rest[:start])
		out.WriteString(replace(rest[innerStart : innerStart+end]))
		rest = rest[innerStart+end+len(closing):]
		count++
	}

	if count == 0 {
		return line, 0
	}

	out.WriteString(rest)
	return out.String(), count
}

func md5Hex(text string) string {
	sum := md5.Sum([]byte(text)) //nolint:gosec // see import
	return hex.EncodeToString(sum[:])
}

func stripC(text string) string {
	return strings.Map(func(r rune) rune {
		if r == 'c' || r == 'C' {
			return -1
		}
		return r
	}, text)
}
