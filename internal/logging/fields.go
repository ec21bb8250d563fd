package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError  = "error"
	FieldInput  = "input"
	FieldOutput = "output"
	FieldConfig = "config"
	FieldFiles  = "files"
	FieldLevel  = "level"

	// Conversion fields.
	FieldBytes        = "bytes"
	FieldLines        = "lines"
	FieldFragments    = "fragments"
	FieldHeadings     = "headings"
	FieldParagraphs   = "paragraphs"
	FieldLists        = "lists"
	FieldListItems    = "list_items"
	FieldHashMarkers  = "hash_markers"
	FieldStripMarkers = "strip_markers"
	FieldWritten      = "written"
	FieldAtomic       = "atomic"
)
