package discovery

import (
	"errors"
	"log/slog"

	"github.com/meigma/beanscan/archive"
)

// Conventional archive layout.
const (
	libraryMetaDir  = "/META-INF/"
	webInfDir       = "/WEB-INF/"
	webClassesMeta  = "/WEB-INF/classes/META-INF/"
	classSuffix     = ".class"
	nestedLibraries = `/WEB-INF/lib/.*\.jar`
)

// Scanner walks an archive tree and reports descriptors and classes to its
// collaborators.
//
// A Scanner is not safe for concurrent use.
type Scanner struct {
	registry   DescriptorRegistry
	indexer    ClassIndexer
	markerName string
	progress   ProgressFunc
	logger     *slog.Logger
	stats      Stats

	libraryMarker archive.Filter
	webMarker     archive.Filter
	classesMarker archive.Filter
	classes       archive.Filter
	libraries     archive.Filter
}

// New creates a Scanner that registers descriptors with registry and feeds
// classes to indexer.
func New(registry DescriptorRegistry, indexer ClassIndexer, opts ...Option) (*Scanner, error) {
	if registry == nil {
		return nil, errors.New("discovery: nil descriptor registry")
	}
	if indexer == nil {
		return nil, errors.New("discovery: nil class indexer")
	}
	s := &Scanner{
		registry:   registry,
		indexer:    indexer,
		markerName: DefaultMarkerName,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.libraryMarker = archive.Exact(libraryMetaDir + s.markerName)
	s.webMarker = archive.Exact(webInfDir + s.markerName)
	s.classesMarker = archive.Exact(webClassesMeta + s.markerName)
	s.classes = archive.Suffix(classSuffix)
	s.libraries = archive.Include(nestedLibraries)
	return s, nil
}

// log returns the logger, falling back to a discard logger if nil.
func (s *Scanner) log() *slog.Logger {
	if s.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.logger
}

// report sends a progress event if a callback is configured.
func (s *Scanner) report(stage Stage, a *archive.Archive, path string) {
	if s.progress == nil {
		return
	}
	s.progress(Event{Stage: stage, Archive: a.Name(), Kind: a.Kind(), Path: path})
}

// Stats returns the counts gathered by the most recent Scan.
func (s *Scanner) Stats() Stats {
	return s.stats
}

// Scan scans root and, for web archives, every nested library archive.
//
// Scan returns the first error reported while registering a descriptor
// (wrapping ErrDescriptorRegistration) or feeding a class (wrapping
// ErrClassScan). Descriptors registered and classes fed before the failure
// are not undone.
func (s *Scanner) Scan(root *archive.Archive) error {
	s.stats = Stats{}
	s.log().Info("scanning archive", "archive", root.Name(), "kind", root.Kind().String())
	if err := s.scan(root); err != nil {
		return err
	}
	s.log().Info("archive scanned",
		"archive", root.Name(),
		"archives", s.stats.Archives,
		"unsupported", s.stats.Unsupported,
		"descriptors", s.stats.Descriptors,
		"classes", s.stats.Classes,
	)
	return nil
}

func (s *Scanner) scan(a *archive.Archive) error {
	s.stats.Archives++
	s.report(StageArchive, a, "")

	switch a.Kind() {
	case archive.KindLibrary:
		return s.scanLibrary(a)
	case archive.KindWeb:
		return s.scanWeb(a)
	case archive.KindEnterprise:
		// Enterprise archives are not scanned, nor are the modules inside them.
		s.stats.Unsupported++
		s.log().Warn("skipping unsupported archive", "archive", a.Name(), "kind", a.Kind().String())
		return nil
	default:
		s.stats.Unsupported++
		s.log().Warn("skipping archive of unknown kind", "archive", a.Name(), "kind", uint8(a.Kind()))
		return nil
	}
}

func (s *Scanner) scanLibrary(a *archive.Archive) error {
	found, err := s.registerMarkers(a, a.Content(s.libraryMarker))
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	return s.feedClasses(a)
}

func (s *Scanner) scanWeb(a *archive.Archive) error {
	found, err := s.registerMarkers(a, a.Content(s.webMarker))
	if err != nil {
		return err
	}

	// The marker may also be placed directly under the classes root.
	foundInClasses, err := s.registerMarkers(a, a.Content(s.classesMarker))
	if err != nil {
		return err
	}

	if found || foundInClasses {
		// Feeds every class in the war, not only those under WEB-INF/classes.
		if err := s.feedClasses(a); err != nil {
			return err
		}
	}

	// Nested libraries are scanned regardless of the war's own marker.
	for path, node := range a.Content(s.libraries) {
		nested, ok := node.Nested()
		if !ok {
			s.log().Warn("skipping library entry that is not an archive", "archive", a.Name(), "path", path)
			continue
		}
		s.log().Debug("scanning nested archive", "archive", a.Name(), "path", path, "nested", nested.Name())
		if err := s.scan(nested); err != nil {
			return err
		}
	}
	return nil
}
