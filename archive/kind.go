package archive

// Kind identifies the layout of an archive.
type Kind uint8

const (
	// KindLibrary is a flat archive with classes and metadata at its root (a jar).
	KindLibrary Kind = iota

	// KindWeb is an archive with the reserved WEB-INF layout (a war).
	KindWeb

	// KindEnterprise is an aggregate of other archives (an ear).
	KindEnterprise
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindLibrary:
		return "library"
	case KindWeb:
		return "web"
	case KindEnterprise:
		return "enterprise"
	default:
		return "unknown"
	}
}
