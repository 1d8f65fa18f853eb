package migration

import (
	"errors"
	"fmt"
)

// Error classification for migration operations. Fatal errors abort the run
// before any post is attempted; per-post and per-media failures are logged
// and contained so the run continues.

// MigrationError represents errors that occur during the migration process.
type MigrationError struct {
	Phase   string // The migration phase where the error occurred (e.g. "read", "auth", "publish")
	PostID  string // The post being processed when the error occurred (empty if not applicable)
	Message string // Human-readable error message
	Cause   error  // Underlying error cause
}

func (e *MigrationError) Error() string {
	if e.PostID != "" {
		return fmt.Sprintf("migration error in phase '%s' for post %s: %s", e.Phase, e.PostID, e.Message)
	}
	return fmt.Sprintf("migration error in phase '%s': %s", e.Phase, e.Message)
}

func (e *MigrationError) Unwrap() error {
	return e.Cause
}

// NewMigrationError creates a new migration error.
func NewMigrationError(phase, message string, cause error) *MigrationError {
	return &MigrationError{
		Phase:   phase,
		Message: message,
		Cause:   cause,
	}
}

// NewPostMigrationError creates a new migration error for a specific post.
func NewPostMigrationError(phase, postID, message string, cause error) *MigrationError {
	return &MigrationError{
		Phase:   phase,
		PostID:  postID,
		Message: message,
		Cause:   cause,
	}
}

// Sentinel errors for the fatal conditions that abort a run.
var (
	// ErrAuthenticationFailed indicates the login (including a failed
	// step-up attempt) did not yield a session.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrArchiveUnavailable indicates the archive file is missing or
	// unparseable.
	ErrArchiveUnavailable = errors.New("archive unavailable")

	// ErrMigrationAborted indicates the migration was aborted.
	ErrMigrationAborted = errors.New("migration aborted")
)

// IsMigrationError checks if an error is a migration error.
func IsMigrationError(err error) bool {
	var migrationErr *MigrationError
	return errors.As(err, &migrationErr)
}

// GetMigrationPhase extracts the migration phase from a migration error.
func GetMigrationPhase(err error) string {
	var migrationErr *MigrationError
	if errors.As(err, &migrationErr) {
		return migrationErr.Phase
	}
	return ""
}

// GetPostID extracts the post ID from a migration error.
func GetPostID(err error) string {
	var migrationErr *MigrationError
	if errors.As(err, &migrationErr) {
		return migrationErr.PostID
	}
	return ""
}

// IsFatal reports whether an error must abort the entire run rather than
// a single post.
func IsFatal(err error) bool {
	return errors.Is(err, ErrAuthenticationFailed) ||
		errors.Is(err, ErrArchiveUnavailable) ||
		errors.Is(err, ErrMigrationAborted)
}
