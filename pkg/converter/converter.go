// Package converter is the file boundary around the renderer: it reads a
// Markdown file, renders it and writes the HTML fragments to the output path.
package converter

import (
	"context"
	"fmt"

	"github.com/yaklabco/gomd2html/internal/logging"
	"github.com/yaklabco/gomd2html/pkg/config"
	"github.com/yaklabco/gomd2html/pkg/document"
	"github.com/yaklabco/gomd2html/pkg/fsutil"
	"github.com/yaklabco/gomd2html/pkg/render"
)

// Result describes a completed conversion.
type Result struct {
	// Input is the Markdown file that was read.
	Input string

	// Output is the HTML file that was written.
	Output string

	// InputBytes is the size of the input file.
	InputBytes int64

	// OutputBytes is the size of the rendered HTML.
	OutputBytes int

	// Fragments is the number of HTML lines produced.
	Fragments int

	// Written is false when the output file already held identical content.
	Written bool

	// Stats holds the renderer counters.
	Stats render.Stats
}

// Converter converts Markdown files to HTML using a resolved configuration.
type Converter struct {
	cfg *config.Config
}

// New creates a Converter. A nil cfg means config.NewConfig().
func New(cfg *config.Config) *Converter {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Converter{cfg: cfg}
}

// Convert reads input, renders it and writes the result to output.
// A missing or non-regular input is reported with an error satisfying
// fsutil.IsMissing.
func (c *Converter) Convert(ctx context.Context, input, output string) (*Result, error) {
	logger := logging.FromContext(ctx)

	mode, err := c.cfg.Output.FileMode()
	if err != nil {
		return nil, err
	}

	content, info, err := fsutil.ReadFile(ctx, input)
	if err != nil {
		return nil, err
	}

	lines, err := document.Decode(content)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", input, err)
	}

	logger.Debug("read input",
		logging.FieldInput, input,
		logging.FieldBytes, info.Size,
		logging.FieldLines, len(lines),
	)

	html, fragments, stats := Transform(lines, c.cfg.Output.WantsFinalNewline())

	written, err := fsutil.Write(ctx, output, html, fsutil.WriteOptions{
		Mode:   mode,
		Atomic: c.cfg.Output.AtomicWrites(),
	})
	if err != nil {
		return nil, fmt.Errorf("write %s: %w", output, err)
	}

	result := &Result{
		Input:       input,
		Output:      output,
		InputBytes:  info.Size,
		OutputBytes: len(html),
		Fragments:   fragments,
		Written:     written,
		Stats:       stats,
	}

	logger.Debug("wrote output",
		logging.FieldOutput, output,
		logging.FieldBytes, result.OutputBytes,
		logging.FieldFragments, result.Fragments,
		logging.FieldWritten, written,
		logging.FieldAtomic, c.cfg.Output.AtomicWrites(),
	)

	return result, nil
}

// Transform renders lines into the bytes written to the output file.
func Transform(lines []string, finalNewline bool) ([]byte, int, render.Stats) {
	r := render.NewRenderer()
	for _, line := range lines {
		r.Line(line)
	}
	fragments := r.Finish()

	html := render.Join(fragments)
	if finalNewline && html != "" {
		html += "\n"
	}

	return []byte(html), len(fragments), r.Stats()
}
