package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownAsset is returned when a public asset or filter input
	// references a name that is not defined in the manifest.
	ErrUnknownAsset = zerr.New("unknown asset reference")

	// ErrDuplicateAsset is returned when two asset definitions share a name.
	ErrDuplicateAsset = zerr.New("duplicate asset definition")

	// ErrCycleDetected is returned when the asset dependency graph contains a cycle.
	ErrCycleDetected = zerr.New("cyclic dependency")

	// ErrSourceFileMissing is returned when a file-sourced asset points at a
	// path that does not exist.
	ErrSourceFileMissing = zerr.New("source file missing")

	// ErrUnknownFilter is returned when a filtered asset names a filter that
	// is not registered.
	ErrUnknownFilter = zerr.New("unknown filter")

	// ErrUnknownOption is returned when a filter is given an option key it
	// does not declare.
	ErrUnknownOption = zerr.New("unknown option")

	// ErrOptionTypeMismatch is returned when an option value has the wrong
	// variant for its key.
	ErrOptionTypeMismatch = zerr.New("option type mismatch")

	// ErrFilterExecutionFailed wraps errors reported by a filter's Apply.
	ErrFilterExecutionFailed = zerr.New("filter execution failed")

	// ErrOutputWriteFailed is returned when a versioned output file cannot be
	// written.
	ErrOutputWriteFailed = zerr.New("output write failed")

	// ErrInvalidOutputPath is returned when an asset's output path would
	// escape the output root.
	ErrInvalidOutputPath = zerr.New("invalid output path")
)
