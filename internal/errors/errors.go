// Package errors defines the sentinel and typed errors shared across the
// engine, crawler, and API layers.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrSnapshotLoad is returned when a persisted index snapshot is missing
	// or structurally invalid.
	ErrSnapshotLoad = errors.New("snapshot load failed")

	// ErrPageFetch is returned when the crawler fails to fetch a page.
	ErrPageFetch = errors.New("page fetch failed")
)

// SnapshotLoadError carries the snapshot path alongside the underlying
// failure. Callers decide the fallback (start empty, or abort).
type SnapshotLoadError struct {
	Path string
	Err  error
}

func (e *SnapshotLoadError) Error() string {
	return fmt.Sprintf("failed to load index snapshot from %s: %v", e.Path, e.Err)
}

func (e *SnapshotLoadError) Is(target error) bool {
	return target == ErrSnapshotLoad
}

func (e *SnapshotLoadError) Unwrap() error {
	return e.Err
}

// NewSnapshotLoadError creates a new SnapshotLoadError.
func NewSnapshotLoadError(path string, err error) *SnapshotLoadError {
	return &SnapshotLoadError{Path: path, Err: err}
}

// FetchError carries the URL of a failed crawl fetch so the crawl loop can
// log it and continue with the next page.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Is(target error) bool {
	return target == ErrPageFetch
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError creates a new FetchError.
func NewFetchError(url string, err error) *FetchError {
	return &FetchError{URL: url, Err: err}
}
