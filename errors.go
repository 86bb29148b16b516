package beanscan

import (
	"github.com/meigma/beanscan/archive"
	"github.com/meigma/beanscan/discovery"
)

// Errors re-exported from discovery.
var (
	// ErrDescriptorRegistration is returned when a descriptor location cannot be
	// built or is rejected by the registry.
	ErrDescriptorRegistration = discovery.ErrDescriptorRegistration

	// ErrClassScan is returned when a class file cannot be opened or indexed.
	ErrClassScan = discovery.ErrClassScan
)

// Errors re-exported from archive.
var (
	// ErrNestedArchive is returned when a nested archive entry is opened as a stream.
	ErrNestedArchive = archive.ErrNestedArchive

	// ErrDigestMismatch is returned when content does not match its expected digest.
	ErrDigestMismatch = archive.ErrDigestMismatch

	// ErrDecompression is returned when decompression fails.
	ErrDecompression = archive.ErrDecompression
)
