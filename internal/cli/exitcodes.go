package cli

import (
	"errors"

	"github.com/yaklabco/textengine/internal/configloader"
	"github.com/yaklabco/textengine/pkg/fsutil"
	"github.com/yaklabco/textengine/pkg/importer"
)

// Exit codes for textengine.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a command failed for a reason without a
	// more specific code.
	ExitFailure = 1

	// ExitFilesFailed indicates a batch run where some files failed.
	ExitFilesFailed = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitNoInput indicates the input document is missing or unreadable.
	ExitNoInput = 66

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrUsage marks errors caused by invalid flags or arguments.
	ErrUsage = errors.New("invalid usage")

	// ErrConfig marks errors raised while loading configuration.
	ErrConfig = errors.New("configuration error")

	// ErrOutput marks errors raised while writing output files.
	ErrOutput = errors.New("write output")
)

// ExitCodeFromError maps a command error to a process exit code.
func ExitCodeFromError(err error) int {
	var validation *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrFilesFailed):
		return ExitFilesFailed
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, ErrConfig), errors.As(err, &validation):
		return ExitConfigError
	case errors.Is(err, ErrOutput):
		return ExitIOError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, importer.ErrBinaryInput):
		return ExitNoInput
	default:
		return ExitFailure
	}
}
