package archive

import (
	"regexp"
	"strings"
)

// Filter reports whether a normalized archive path should be included.
type Filter func(path string) bool

// Include returns a Filter that matches paths against pattern as a whole.
//
// The pattern is anchored at both ends, so "/META-INF/beans.xml" matches only
// that exact path and ".*\.class" matches every path ending in ".class".
// Include panics if pattern does not compile, like regexp.MustCompile.
func Include(pattern string) Filter {
	re := regexp.MustCompile(`^(?:` + pattern + `)$`)
	return re.MatchString
}

// Exact returns a Filter that matches a single path.
func Exact(path string) Filter {
	want := NormalizePath(path)
	return func(p string) bool {
		return p == want
	}
}

// Suffix returns a Filter that matches paths ending in suffix.
// The comparison is case-sensitive.
func Suffix(suffix string) Filter {
	return func(p string) bool {
		return strings.HasSuffix(p, suffix)
	}
}

// All is a Filter that matches every path.
func All(string) bool { return true }
