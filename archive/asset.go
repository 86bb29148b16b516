package archive

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/opencontainers/go-digest"
)

// Asset is the content source of a node.
//
// Open must return a fresh, independent stream on every call. The caller
// closes the stream.
type Asset interface {
	Open() (io.ReadCloser, error)
}

// Interface compliance.
var (
	_ Asset = BytesAsset(nil)
	_ Asset = (*ArchiveAsset)(nil)
	_ Asset = (*ZstdAsset)(nil)
	_ Asset = (*VerifiedAsset)(nil)
)

// BytesAsset is an uncompressed, in-memory asset.
type BytesAsset []byte

// Open returns a reader over the bytes.
func (b BytesAsset) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(b)), nil
}

// ArchiveAsset is an asset whose content is another archive.
type ArchiveAsset struct {
	archive *Archive
}

// NewArchiveAsset wraps a nested archive.
func NewArchiveAsset(a *Archive) *ArchiveAsset {
	return &ArchiveAsset{archive: a}
}

// Archive returns the nested archive.
func (a *ArchiveAsset) Archive() *Archive {
	return a.archive
}

// Open always fails with ErrNestedArchive.
func (a *ArchiveAsset) Open() (io.ReadCloser, error) {
	if a.archive == nil {
		return nil, fmt.Errorf("open nil archive: %w", ErrNestedArchive)
	}
	return nil, fmt.Errorf("open %s: %w", a.archive.Name(), ErrNestedArchive)
}

// ZstdAsset is an in-memory asset stored zstd-compressed.
// Every Open decompresses from the start with a dedicated decoder.
type ZstdAsset struct {
	data                  []byte
	maxDecoderMemory      uint64
	decoderConcurrencySet bool
	decoderConcurrency    int
	decoderLowmem         bool
}

// ZstdOption configures a ZstdAsset.
type ZstdOption func(*ZstdAsset)

// DefaultMaxDecoderMemory is the default maximum decoder memory (256MB).
const DefaultMaxDecoderMemory = 256 << 20

// WithDecoderMaxMemory limits the maximum memory used by the zstd decoder.
// Set limit to 0 to disable the limit.
func WithDecoderMaxMemory(limit uint64) ZstdOption {
	return func(z *ZstdAsset) {
		z.maxDecoderMemory = limit
	}
}

// WithDecoderConcurrency sets the zstd decoder concurrency (default: 1).
// Values < 0 are treated as 0 (use GOMAXPROCS).
func WithDecoderConcurrency(n int) ZstdOption {
	return func(z *ZstdAsset) {
		if n < 0 {
			n = 0
		}
		z.decoderConcurrency = n
		z.decoderConcurrencySet = true
	}
}

// WithDecoderLowmem sets whether the zstd decoder should use low-memory mode (default: false).
func WithDecoderLowmem(enabled bool) ZstdOption {
	return func(z *ZstdAsset) {
		z.decoderLowmem = enabled
	}
}

// NewZstdAsset returns an asset over already-compressed data.
func NewZstdAsset(compressed []byte, opts ...ZstdOption) *ZstdAsset {
	z := &ZstdAsset{
		data:             compressed,
		maxDecoderMemory: DefaultMaxDecoderMemory,
	}
	for _, opt := range opts {
		opt(z)
	}
	return z
}

// CompressZstd compresses data into a single zstd frame.
func CompressZstd(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1), zstd.WithLowerEncoderMem(true))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(data, make([]byte, 0, len(data))), nil
}

// Open returns a decompressing reader. Close releases the decoder.
func (z *ZstdAsset) Open() (io.ReadCloser, error) {
	concurrency := 1
	if z.decoderConcurrencySet {
		concurrency = z.decoderConcurrency
	}
	opts := []zstd.DOption{
		zstd.WithDecoderConcurrency(concurrency),
		zstd.WithDecoderLowmem(z.decoderLowmem),
	}
	if z.maxDecoderMemory > 0 {
		opts = append(opts, zstd.WithDecoderMaxMemory(z.maxDecoderMemory))
	}
	dec, err := zstd.NewReader(bytes.NewReader(z.data), opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompression, err)
	}
	return &zstdReader{dec: dec}, nil
}

// zstdReader adapts a decoder to io.ReadCloser and tags read failures.
type zstdReader struct {
	dec *zstd.Decoder
}

func (r *zstdReader) Read(p []byte) (int, error) {
	n, err := r.dec.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		return n, fmt.Errorf("%w: %v", ErrDecompression, err)
	}
	return n, err
}

func (r *zstdReader) Close() error {
	r.dec.Close()
	return nil
}

// VerifiedAsset wraps an asset and checks its content against a digest.
//
// Verification happens when the stream reaches EOF; a mismatch turns the
// final read into ErrDigestMismatch. Callers must read to EOF to get the
// guarantee; partial reads return unverified data.
type VerifiedAsset struct {
	asset    Asset
	expected digest.Digest
}

// NewVerifiedAsset returns an asset that verifies content against expected.
func NewVerifiedAsset(asset Asset, expected digest.Digest) (*VerifiedAsset, error) {
	if err := expected.Validate(); err != nil {
		return nil, fmt.Errorf("invalid digest %q: %w", expected, err)
	}
	return &VerifiedAsset{asset: asset, expected: expected}, nil
}

// Digest returns the expected digest.
func (v *VerifiedAsset) Digest() digest.Digest {
	return v.expected
}

// Open returns a verifying reader over the wrapped asset.
func (v *VerifiedAsset) Open() (io.ReadCloser, error) {
	rc, err := v.asset.Open()
	if err != nil {
		return nil, err
	}
	return &verifyingReader{rc: rc, verifier: v.expected.Verifier(), expected: v.expected}, nil
}

type verifyingReader struct {
	rc       io.ReadCloser
	verifier digest.Verifier
	expected digest.Digest
}

func (r *verifyingReader) Read(p []byte) (int, error) {
	n, err := r.rc.Read(p)
	if n > 0 {
		_, _ = r.verifier.Write(p[:n]) // hash writes do not fail
	}
	if errors.Is(err, io.EOF) && !r.verifier.Verified() {
		return n, fmt.Errorf("%w: expected %s", ErrDigestMismatch, r.expected)
	}
	return n, err
}

func (r *verifyingReader) Close() error {
	return r.rc.Close()
}

// Digest computes the canonical digest of an asset's content.
func Digest(asset Asset) (digest.Digest, error) {
	rc, err := asset.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()
	d, err := digest.Canonical.FromReader(rc)
	if err != nil {
		return "", fmt.Errorf("digest content: %w", err)
	}
	return d, nil
}
