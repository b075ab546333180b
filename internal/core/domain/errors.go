package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownRepository is returned when an artifact references a repository
	// the manifest does not declare.
	ErrUnknownRepository = zerr.New("unknown repository")

	// ErrArtifactNotFound is returned when a repository has no object at the
	// declared path.
	ErrArtifactNotFound = zerr.New("artifact not found")

	// ErrDownloadFailed is returned when a repository request fails for any
	// reason other than a missing object.
	ErrDownloadFailed = zerr.New("download failed")

	// ErrChecksumMismatch is returned when a fetched file does not match the
	// checksum declared in the manifest.
	ErrChecksumMismatch = zerr.New("checksum mismatch")

	// ErrManifestNotFound is returned when no manifest file exists in the
	// working directory or any directory above it.
	ErrManifestNotFound = zerr.New("could not find haul.yaml")

	// ErrManifestReadFailed is returned when the manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestParseFailed is returned when the manifest file is not valid YAML.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrUnsupportedManifestVersion is returned when the manifest declares a
	// format version this build does not understand.
	ErrUnsupportedManifestVersion = zerr.New("unsupported manifest version")

	// ErrUnknownRepositoryKind is returned when a repository declares a kind
	// other than http or s3.
	ErrUnknownRepositoryKind = zerr.New("unknown repository kind, expected 'http' or 's3'")

	// ErrIncompleteRepository is returned when a repository declaration is
	// missing a required field for its kind.
	ErrIncompleteRepository = zerr.New("incomplete repository declaration")

	// ErrInvalidComponent is returned when a component coordinate does not parse.
	ErrInvalidComponent = zerr.New("invalid component coordinates, expected format: group:module:version")

	// ErrDuplicateComponent is returned when the manifest lists a component twice.
	ErrDuplicateComponent = zerr.New("duplicate component")

	// ErrMissingVariantName is returned when a variant has no name.
	ErrMissingVariantName = zerr.New("missing variant name")

	// ErrDuplicateVariant is returned when a component declares two variants
	// with the same name.
	ErrDuplicateVariant = zerr.New("duplicate variant name")

	// ErrIncompleteArtifact is returned when an artifact declaration is missing
	// its name, extension or path.
	ErrIncompleteArtifact = zerr.New("artifact needs a name, extension and path")

	// ErrInvalidTaskPath is returned when a builtBy task path does not parse.
	ErrInvalidTaskPath = zerr.New("invalid task path, expected format: [:project]:task")

	// ErrUnknownVariant is returned when a requested variant name matches no
	// variant of any module in the manifest.
	ErrUnknownVariant = zerr.New("unknown variant")

	// ErrFetchFailed is returned when one or more artifacts could not be
	// materialized during a fetch cycle.
	ErrFetchFailed = zerr.New("fetch completed with failures")
)
