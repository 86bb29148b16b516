package discovery

import (
	"errors"
	"fmt"
	"iter"

	"github.com/meigma/beanscan/archive"
)

// registerMarkers registers a location for every matched marker file.
//
// found reports whether any match was present, independent of err. The first
// failure stops registration of the remaining matches.
func (s *Scanner) registerMarkers(a *archive.Archive, matches iter.Seq2[string, *archive.Node]) (found bool, err error) {
	for path := range matches {
		found = true
		if err = s.registerMarker(a, path); err != nil {
			return found, err
		}
	}
	return found, nil
}

func (s *Scanner) registerMarker(a *archive.Archive, path string) error {
	loc := NewLocation(a.Name(), path, a.Opener(path))
	if err := s.registry.RegisterDescriptor(loc); err != nil {
		if errors.Is(err, ErrDescriptorRegistration) {
			return err
		}
		return fmt.Errorf("%w: error while parsing descriptor location %s: %w", ErrDescriptorRegistration, loc, err)
	}
	s.stats.Descriptors++
	s.report(StageDescriptor, a, path)
	s.log().Debug("descriptor registered", "location", loc.String())
	return nil
}
