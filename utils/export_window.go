package utils

import (
	"fmt"
	"net/http"
	"time"
)

// ExportWindow bounds a consultation export by creation time. A nil edge
// leaves that side of the window open.
type ExportWindow struct {
	After  *time.Time
	Before *time.Time
}

// ParseExportWindow reads the optional created_after/created_before query
// parameters as RFC3339 timestamps.
func ParseExportWindow(r *http.Request) (*ExportWindow, error) {
	window := &ExportWindow{}

	if str := r.URL.Query().Get("created_after"); str != "" {
		parsed, err := time.Parse(time.RFC3339, str)
		if err != nil {
			return nil, fmt.Errorf("invalid created_after format. Use RFC3339 (e.g., 2026-08-01T10:00:00Z)")
		}
		window.After = &parsed
	}

	if str := r.URL.Query().Get("created_before"); str != "" {
		parsed, err := time.Parse(time.RFC3339, str)
		if err != nil {
			return nil, fmt.Errorf("invalid created_before format. Use RFC3339 (e.g., 2026-08-01T10:00:00Z)")
		}
		window.Before = &parsed
	}

	return window, nil
}

// Unbounded reports whether the window filters nothing.
func (w *ExportWindow) Unbounded() bool {
	return w.After == nil && w.Before == nil
}

// Contains reports whether a document created at the given time falls inside
// the window.
func (w *ExportWindow) Contains(created time.Time) bool {
	if w.After != nil && created.Before(*w.After) {
		return false
	}
	if w.Before != nil && created.After(*w.Before) {
		return false
	}
	return true
}
