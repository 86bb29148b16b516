package discovery

import (
	"fmt"

	"github.com/meigma/beanscan/archive"
)

// feedClasses hands every class file in a to the indexer, in archive order.
// The first failure stops the enumeration.
func (s *Scanner) feedClasses(a *archive.Archive) error {
	for path, node := range a.Content(s.classes) {
		if err := s.feedClass(a, path, node); err != nil {
			return fmt.Errorf("%w %s%s: %w", ErrClassScan, a.Name(), path, err)
		}
		s.stats.Classes++
		s.report(StageClass, a, path)
		s.log().Debug("class fed", "archive", a.Name(), "path", path)
	}
	return nil
}

func (s *Scanner) feedClass(a *archive.Archive, path string, node *archive.Node) error {
	rc, err := node.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	return s.indexer.IndexClass(path, rc)
}
