package discovery

import (
	"errors"
	"io"
	"net/url"
)

// Scheme is the URL scheme of descriptor locations.
const Scheme = "archive"

// Location identifies a marker file inside an archive and opens its content
// on demand.
//
// Building a Location never reads the underlying entry. Each call to Open
// returns a fresh stream, so a Location may be read any number of times
// while its archive is alive.
type Location struct {
	archive string
	path    string
	open    func() (io.ReadCloser, error)
}

// NewLocation builds the location "archive://<archiveName><path>".
//
// Any archive name is accepted; the identity is the plain string form.
func NewLocation(archiveName, path string, open func() (io.ReadCloser, error)) Location {
	return Location{archive: archiveName, path: path, open: open}
}

// Archive returns the name of the archive holding the descriptor.
func (l Location) Archive() string {
	return l.archive
}

// Path returns the descriptor's path within its archive.
func (l Location) Path() string {
	return l.path
}

// URL returns the location as a URL with the archive name as host.
//
// The URL is assembled from its parts rather than parsed, so names that are
// not valid host names (e.g. "my app.war") are kept verbatim and escaped
// only when the URL is formatted.
func (l Location) URL() *url.URL {
	return &url.URL{Scheme: Scheme, Host: l.archive, Path: l.path}
}

// String returns the logical identity of the location.
func (l Location) String() string {
	return Scheme + "://" + l.archive + l.path
}

// Open opens a fresh stream over the descriptor's content.
func (l Location) Open() (io.ReadCloser, error) {
	if l.open == nil {
		return nil, errors.New("discovery: location has no content")
	}
	return l.open()
}
