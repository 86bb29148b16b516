package archive

import "strings"

// NormalizePath converts a user-provided path to the absolute form used as
// archive keys.
//
// It performs the following transformations:
//   - Adds a leading slash: "etc/nginx" → "/etc/nginx"
//   - Strips trailing slashes: "/etc/nginx/" → "/etc/nginx"
//   - Collapses consecutive slashes: "/etc//nginx" → "/etc/nginx"
//   - Converts empty string to root: "" → "/"
//
// Paths containing "." or ".." elements are preserved as-is.
func NormalizePath(p string) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return "/"
	}

	parts := strings.Split(p, "/")
	result := parts[:0] // reuse backing array
	for _, part := range parts {
		if part != "" {
			result = append(result, part)
		}
	}
	if len(result) == 0 {
		return "/"
	}
	return "/" + strings.Join(result, "/")
}
