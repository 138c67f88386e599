package fraud

import (
	"context"
	"errors"
)

// ErrCaseNotFound is returned when no case exists for the given user name.
var ErrCaseNotFound = errors.New("fraud: case not found")

// Store is the port for case persistence. Implementations must serialise
// update-by-key so concurrent resolutions of the same case cannot lose
// updates.
type Store interface {
	// LoadCase returns the case for the given user name, matched
	// case-insensitively. ErrCaseNotFound when absent.
	LoadCase(ctx context.Context, userName string) (*Case, error)

	// VerifyAnswer compares answer against the stored verification answer,
	// case-insensitively. An unknown user verifies as false, not as an error.
	VerifyAnswer(ctx context.Context, userName, answer string) (bool, error)

	// UpdateStatus sets status, notes and updated_at on the case.
	// ErrCaseNotFound when absent.
	UpdateStatus(ctx context.Context, userName string, status Status, note string) error

	// SaveCase inserts or replaces a case. Used for seeding.
	SaveCase(ctx context.Context, c *Case) error
}
