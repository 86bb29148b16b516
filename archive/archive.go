package archive

import (
	"fmt"
	"io"
	"io/fs"
	"iter"
)

// Node is a named entry within an archive.
type Node struct {
	path  string
	asset Asset
}

// Path returns the normalized path of the node within its archive.
func (n *Node) Path() string {
	return n.path
}

// Asset returns the content source of the node.
func (n *Node) Asset() Asset {
	return n.asset
}

// Open opens a fresh stream over the node's content.
func (n *Node) Open() (io.ReadCloser, error) {
	return n.asset.Open()
}

// Nested returns the nested archive when the node's asset is an ArchiveAsset.
func (n *Node) Nested() (*Archive, bool) {
	aa, ok := n.asset.(*ArchiveAsset)
	if !ok || aa.archive == nil {
		return nil, false
	}
	return aa.archive, true
}

// Archive is an insertion-ordered, in-memory collection of nodes.
//
// Archive is not safe for concurrent modification. Readers (including a
// discovery scan) assume the archive is not modified while they run.
type Archive struct {
	name  string
	kind  Kind
	nodes []*Node
	index map[string]int
}

// New creates an empty archive with the given name and kind.
func New(name string, kind Kind) *Archive {
	return &Archive{
		name:  name,
		kind:  kind,
		index: make(map[string]int),
	}
}

// Name returns the declared name of the archive (e.g. "app.war").
func (a *Archive) Name() string {
	return a.name
}

// Kind returns the layout of the archive.
func (a *Archive) Kind() Kind {
	return a.kind
}

// Len returns the number of nodes in the archive.
func (a *Archive) Len() int {
	return len(a.nodes)
}

// String implements fmt.Stringer.
func (a *Archive) String() string {
	return fmt.Sprintf("%s (%s, %d entries)", a.name, a.kind, len(a.nodes))
}

// Add stores asset at path and returns the resulting node.
//
// The path is normalized with NormalizePath. Adding a path that already
// exists replaces its node without changing its position. Add panics if
// asset is nil.
func (a *Archive) Add(path string, asset Asset) *Node {
	if asset == nil {
		panic("archive: nil asset for " + path)
	}
	p := NormalizePath(path)
	n := &Node{path: p, asset: asset}
	if i, ok := a.index[p]; ok {
		a.nodes[i] = n
		return n
	}
	a.index[p] = len(a.nodes)
	a.nodes = append(a.nodes, n)
	return n
}

// AddBytes stores data uncompressed at path.
func (a *Archive) AddBytes(path string, data []byte) *Node {
	return a.Add(path, BytesAsset(data))
}

// AddArchive stores nested as the content of path.
func (a *Archive) AddArchive(path string, nested *Archive) *Node {
	return a.Add(path, NewArchiveAsset(nested))
}

// AddCompressed compresses data with zstd and stores it at path.
func (a *Archive) AddCompressed(path string, data []byte, opts ...ZstdOption) (*Node, error) {
	compressed, err := CompressZstd(data)
	if err != nil {
		return nil, err
	}
	return a.Add(path, NewZstdAsset(compressed, opts...)), nil
}

// Lookup returns the node stored at path.
func (a *Archive) Lookup(path string) (*Node, bool) {
	i, ok := a.index[NormalizePath(path)]
	if !ok {
		return nil, false
	}
	return a.nodes[i], true
}

// Content returns an iterator over the nodes whose path matches filter,
// in insertion order. A nil filter matches every node.
func (a *Archive) Content(filter Filter) iter.Seq2[string, *Node] {
	if filter == nil {
		filter = All
	}
	return func(yield func(string, *Node) bool) {
		for _, n := range a.nodes {
			if !filter(n.path) {
				continue
			}
			if !yield(n.path, n) {
				return
			}
		}
	}
}

// Open opens the content stored at path.
func (a *Archive) Open(path string) (io.ReadCloser, error) {
	n, ok := a.Lookup(path)
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: a.name + NormalizePath(path), Err: fs.ErrNotExist}
	}
	return n.Open()
}

// ReadFile reads the entire content stored at path.
func (a *Archive) ReadFile(path string) ([]byte, error) {
	rc, err := a.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Opener returns a deferred accessor for the content stored at path.
//
// The accessor captures the archive and the path key rather than the node,
// so nothing is looked up or opened until it is called. Each call opens a
// fresh stream.
func (a *Archive) Opener(path string) func() (io.ReadCloser, error) {
	p := NormalizePath(path)
	return func() (io.ReadCloser, error) {
		return a.Open(p)
	}
}
