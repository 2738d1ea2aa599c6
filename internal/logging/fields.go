package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldFormat = "format"
	FieldOutput = "output"

	// Document fields.
	FieldOffset     = "offset"
	FieldLength     = "length"
	FieldRuns       = "runs"
	FieldParagraphs = "paragraphs"
	FieldVersion    = "version"

	// Layout fields.
	FieldWidth    = "width"
	FieldHeight   = "height"
	FieldCommands = "commands"
	FieldBackend  = "backend"

	// Build fields.
	FieldCommit = "commit"
	FieldBuilt  = "built"
)
