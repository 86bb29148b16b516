package discovery

import "log/slog"

// DefaultMarkerName is the name of the marker descriptor file.
const DefaultMarkerName = "beans.xml"

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger sets the logger used during scans.
// If not set, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// WithMarkerName overrides the marker file name (default "beans.xml").
// An empty name keeps the default.
func WithMarkerName(name string) Option {
	return func(s *Scanner) {
		if name != "" {
			s.markerName = name
		}
	}
}

// WithProgress sets a callback that receives scan events.
func WithProgress(fn ProgressFunc) Option {
	return func(s *Scanner) {
		s.progress = fn
	}
}
