package domain

// Layout holds the directory roots a pack run operates on.
type Layout struct {
	// SourceDir is where file-sourced asset paths are resolved.
	SourceDir string
	// OutputDir is where versioned output files are written.
	OutputDir string
}
