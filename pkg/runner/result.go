package runner

import "github.com/yaklabco/textengine/pkg/importer"

// FileOutcome is the layout summary of one file.
type FileOutcome struct {
	// Path is the file path that was processed.
	Path string

	// Format is the format the file was imported as.
	Format importer.Format

	// Length is the document length in bytes.
	Length int

	// Runs and Paragraphs count the document's elements.
	Runs       int
	Paragraphs int

	// Commands is the display list length and Height the laid out height.
	Commands int
	Height   int

	// Error is set if the file could not be imported or laid out.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int
	FilesErrored    int

	// Commands and Height are summed over every processed file.
	Commands int
	Height   int
}

// Result is the overall runner result.
type Result struct {
	// Files holds one outcome per discovered file, ordered by path.
	Files []FileOutcome

	Stats Stats
}

// HasErrors reports whether any file failed.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.Commands += outcome.Commands
	r.Stats.Height += outcome.Height
}
