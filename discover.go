package beanscan

import (
	"github.com/meigma/beanscan/archive"
	"github.com/meigma/beanscan/discovery"
)

// Discover scans root once, registering descriptor locations with registry
// and feeding class files to indexer.
//
// It returns the scan statistics along with the first error encountered.
func Discover(root *archive.Archive, registry DescriptorRegistry, indexer ClassIndexer, opts ...Option) (Stats, error) {
	s, err := discovery.New(registry, indexer, opts...)
	if err != nil {
		return Stats{}, err
	}
	err = s.Scan(root)
	return s.Stats(), err
}
