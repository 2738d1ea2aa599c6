// Package runner lays out many documents concurrently.
package runner

import (
	"github.com/yaklabco/textengine/pkg/importer"
	"github.com/yaklabco/textengine/pkg/layout"
	"github.com/yaklabco/textengine/pkg/measure"
)

// Options controls a multi-file run.
type Options struct {
	// Paths are the files or directories to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// picked up while walking directories. Defaults to DefaultExtensions().
	// Files named directly in Paths are always processed.
	Extensions []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means runtime.NumCPU().
	Jobs int

	// Width is the viewport width every document is laid out at.
	Width int

	// Import selects how files are imported.
	Import importer.Options

	// Engine and Backend perform the layout. Engine defaults to the
	// standard box policy and Backend to the terminal backend.
	Engine  *layout.Engine
	Backend measure.WrappingBackend
}

// DefaultExtensions returns the file extensions discovered by default.
func DefaultExtensions() []string {
	return []string{".md", ".markdown", ".txt"}
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
