package discovery

import "errors"

// Sentinel errors.
var (
	// ErrDescriptorRegistration is returned when a descriptor location cannot
	// be built or is rejected by the registry. Registries may wrap it in their
	// own errors to have them propagated unchanged.
	ErrDescriptorRegistration = errors.New("discovery: descriptor registration failed")

	// ErrClassScan is returned when a class file cannot be opened or indexed.
	ErrClassScan = errors.New("discovery: could not scan class")
)
