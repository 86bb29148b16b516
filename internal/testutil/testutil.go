// Package testutil provides fakes and fixtures shared by tests.
package testutil

import (
	"io"

	"github.com/meigma/beanscan/archive"
	"github.com/meigma/beanscan/discovery"
)

// BeansXML is a minimal marker descriptor body.
var BeansXML = []byte(`<beans xmlns="https://jakarta.ee/xml/ns/jakartaee" bean-discovery-mode="all"/>`)

// ClassBytes returns fake class-file content for name.
func ClassBytes(name string) []byte {
	return append([]byte{0xCA, 0xFE, 0xBA, 0xBE}, name...)
}

// CountingAsset records how many times it was opened.
type CountingAsset struct {
	Data  []byte
	Opens int
}

// Open implements archive.Asset.
func (c *CountingAsset) Open() (io.ReadCloser, error) {
	c.Opens++
	return archive.BytesAsset(c.Data).Open()
}

// FailingAsset fails every Open with Err.
type FailingAsset struct {
	Err error
}

// Open implements archive.Asset.
func (f FailingAsset) Open() (io.ReadCloser, error) {
	return nil, f.Err
}

// RecordingRegistry records every location it receives.
// When Err is set, the call numbered FailAt (1-based) returns Err instead.
type RecordingRegistry struct {
	Locations []discovery.Location
	Calls     int
	FailAt    int
	Err       error
}

// RegisterDescriptor implements discovery.DescriptorRegistry.
func (r *RecordingRegistry) RegisterDescriptor(loc discovery.Location) error {
	r.Calls++
	if r.Err != nil && r.Calls == r.FailAt {
		return r.Err
	}
	r.Locations = append(r.Locations, loc)
	return nil
}

// URLs returns the string form of the recorded locations.
func (r *RecordingRegistry) URLs() []string {
	out := make([]string, 0, len(r.Locations))
	for _, loc := range r.Locations {
		out = append(out, loc.String())
	}
	return out
}

// RecordingIndexer records the path and content of every class it receives.
// When Err is set, the call numbered FailAt (1-based) returns Err instead.
type RecordingIndexer struct {
	Paths    []string
	Contents [][]byte
	Calls    int
	FailAt   int
	Err      error
}

// IndexClass implements discovery.ClassIndexer.
func (r *RecordingIndexer) IndexClass(path string, rd io.Reader) error {
	r.Calls++
	if r.Err != nil && r.Calls == r.FailAt {
		return r.Err
	}
	data, err := io.ReadAll(rd)
	if err != nil {
		return err
	}
	r.Paths = append(r.Paths, path)
	r.Contents = append(r.Contents, data)
	return nil
}

// Interface compliance.
var (
	_ archive.Asset                = (*CountingAsset)(nil)
	_ archive.Asset                = FailingAsset{}
	_ discovery.DescriptorRegistry = (*RecordingRegistry)(nil)
	_ discovery.ClassIndexer       = (*RecordingIndexer)(nil)
)

// NewJar returns a library archive with the given class paths and,
// when withMarker is set, a /META-INF/beans.xml marker.
func NewJar(name string, withMarker bool, classes ...string) *archive.Archive {
	a := archive.New(name, archive.KindLibrary)
	if withMarker {
		a.AddBytes("/META-INF/beans.xml", BeansXML)
	}
	for _, c := range classes {
		a.AddBytes(c, ClassBytes(c))
	}
	return a
}
