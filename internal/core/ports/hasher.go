package ports

// Hasher defines the interface for computing file fingerprints.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type Hasher interface {
	// Fingerprint computes a stable content fingerprint for the file or
	// directory tree at path.
	Fingerprint(path string) (string, error)
}
