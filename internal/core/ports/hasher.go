package ports

// Hasher defines the interface for computing content digests.
//
//go:generate mockgen -destination=mocks/mock_hasher.go -package=mocks -source=hasher.go
type Hasher interface {
	// ComputeFileHash computes the digest of a file's content.
	ComputeFileHash(path string) (uint64, error)
}
