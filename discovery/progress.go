package discovery

import "github.com/meigma/beanscan/archive"

// Stage identifies what a progress event reports.
type Stage uint8

const (
	// StageArchive indicates an archive is about to be classified.
	StageArchive Stage = iota

	// StageDescriptor indicates a descriptor location was registered.
	StageDescriptor

	// StageClass indicates a class file was handed to the indexer.
	StageClass
)

// String returns the string representation of the stage.
func (s Stage) String() string {
	switch s {
	case StageArchive:
		return "archive"
	case StageDescriptor:
		return "descriptor"
	case StageClass:
		return "class"
	default:
		return "unknown"
	}
}

// Event is a progress update emitted during a scan.
type Event struct {
	// Stage identifies the kind of event.
	Stage Stage

	// Archive is the name of the archive being processed.
	Archive string

	// Kind is the kind of the archive being processed.
	Kind archive.Kind

	// Path is the entry path for descriptor and class events.
	Path string
}

// ProgressFunc receives progress updates during a scan.
type ProgressFunc func(Event)

// Stats summarizes the most recent scan.
type Stats struct {
	// Archives is the number of archives visited, including nested ones.
	Archives int

	// Unsupported is the number of archives skipped because of their kind.
	Unsupported int

	// Descriptors is the number of descriptor locations registered.
	Descriptors int

	// Classes is the number of class files handed to the indexer.
	Classes int
}
