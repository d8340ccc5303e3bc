package ports

import "context"

// LoginThrottle tracks consecutive failed login attempts per username.
// Implementations should fail open: an unreachable backend must not lock
// out the whole userbase.
type LoginThrottle interface {
	// Locked reports whether the username has exceeded the failure budget.
	Locked(ctx context.Context, username string) (bool, error)
	// RecordFailure increments the failure counter for the username.
	RecordFailure(ctx context.Context, username string) error
	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, username string) error
}
