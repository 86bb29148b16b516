package archive

import "errors"

// Sentinel errors.
var (
	// ErrNestedArchive is returned when the content of a nested archive entry
	// is opened as a byte stream. Nested archives are consumed structurally
	// through [ArchiveAsset.Archive].
	ErrNestedArchive = errors.New("archive: entry is a nested archive")

	// ErrDigestMismatch is returned when content does not match its expected digest.
	ErrDigestMismatch = errors.New("archive: digest verification failed")

	// ErrDecompression is returned when decompression fails.
	ErrDecompression = errors.New("archive: decompression failed")
)
