package discovery

import "io"

// DescriptorRegistry receives the location of every discovered marker file.
//
// Implementations decide when, if ever, to read the location's content.
// Errors that wrap ErrDescriptorRegistration are propagated unchanged; any
// other error is wrapped with it.
type DescriptorRegistry interface {
	RegisterDescriptor(loc Location) error
}

// ClassIndexer consumes the bytes of one compiled class.
//
// The reader is only valid for the duration of the call; the scanner closes
// it afterwards. Errors are always wrapped with ErrClassScan.
type ClassIndexer interface {
	IndexClass(path string, r io.Reader) error
}

// DescriptorRegistryFunc adapts a function to DescriptorRegistry.
type DescriptorRegistryFunc func(loc Location) error

// RegisterDescriptor calls f(loc).
func (f DescriptorRegistryFunc) RegisterDescriptor(loc Location) error {
	return f(loc)
}

// ClassIndexerFunc adapts a function to ClassIndexer.
type ClassIndexerFunc func(path string, r io.Reader) error

// IndexClass calls f(path, r).
func (f ClassIndexerFunc) IndexClass(path string, r io.Reader) error {
	return f(path, r)
}

// Interface compliance.
var (
	_ DescriptorRegistry = DescriptorRegistryFunc(nil)
	_ DescriptorRegistry = (*Collector)(nil)
	_ ClassIndexer       = ClassIndexerFunc(nil)
)
