package ports

// FileHasher defines the interface for hashing file content.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type FileHasher interface {
	// HashFile computes the content digest of the file at path.
	HashFile(path string) (uint64, error)
}
