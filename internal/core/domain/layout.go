package domain

import "path/filepath"

const (
	// HaulDirName is the name of the internal workspace directory.
	HaulDirName = ".haul"

	// StoreDirName is the name of the artifact store directory.
	StoreDirName = "store"

	// StagingDirName is the name of the staging directory for in-flight fetches.
	StagingDirName = "staging"

	// ManifestFileName is the name of the dependency manifest file.
	ManifestFileName = "haul.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultHaulPath returns the default root directory for haul metadata.
func DefaultHaulPath() string {
	return HaulDirName
}

// DefaultStorePath returns the default path for the artifact store.
// It joins .haul and store.
func DefaultStorePath() string {
	return filepath.Join(HaulDirName, StoreDirName)
}

// DefaultStagingPath returns the default path for in-flight staging files.
// It joins .haul and staging.
func DefaultStagingPath() string {
	return filepath.Join(HaulDirName, StagingDirName)
}
