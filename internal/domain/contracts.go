package domain

import "context"

// ActivityRepository is the storage contract for the activity table.
// Signup and Unregister check their preconditions and mutate atomically:
// a failed call leaves the roster untouched.
type ActivityRepository interface {
	// List returns a copy of the full activity table keyed by name.
	List(ctx context.Context) (map[string]Activity, error)
	// Get returns a copy of a single activity.
	Get(ctx context.Context, name string) (Activity, error)
	// Signup appends email to the activity's roster.
	// Returns ErrActivityNotFound or ErrAlreadySignedUp.
	Signup(ctx context.Context, name, email string) error
	// Unregister removes email from the activity's roster, preserving the
	// relative order of the remaining participants.
	// Returns ErrActivityNotFound or ErrNotSignedUp.
	Unregister(ctx context.Context, name, email string) error
}

// ActivityService is what the HTTP layer depends on.
type ActivityService interface {
	ListActivities(ctx context.Context) (map[string]Activity, error)
	Signup(ctx context.Context, activity, email string) error
	Unregister(ctx context.Context, activity, email string) error
}
