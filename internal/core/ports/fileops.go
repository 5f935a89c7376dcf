package ports

// FileOps abstracts the file-level side effects of executing a plan.
//
//go:generate go run go.uber.org/mock/mockgen -source=fileops.go -destination=mocks/mock_fileops.go -package=mocks
type FileOps interface {
	// CopyFile copies src to dst verbatim, truncating dst if it exists.
	CopyFile(src, dst string) error

	// EnsureDir creates dir and any missing parents.
	EnsureDir(dir string) error

	// Exists reports whether path exists as a regular file.
	Exists(path string) bool

	// ListFiles returns the relative paths of all regular files under root.
	// A missing root yields an empty list.
	ListFiles(root string) ([]string, error)

	// Remove deletes the file at path.
	Remove(path string) error
}
