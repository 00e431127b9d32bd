// Package constants provides shared constants used throughout the trainer codebase.
// This includes timeouts, file permissions, and other configuration values that
// should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// FeedFetchTimeout is the timeout for downloading a single upstream feed
	FeedFetchTimeout = 60 * time.Second

	// DefaultTimeout is the standard timeout for general operations
	DefaultTimeout = 10 * time.Second

	// RunTimeout is the timeout for a full report run across all feeds
	RunTimeout = 5 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// SnapshotDateFormat is the timestamp layout used when rendering run and
// snapshot dates in reports.
const SnapshotDateFormat = "2006-01-02 15:04"
