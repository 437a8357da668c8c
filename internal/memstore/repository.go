package memstore

import (
	"context"
	"sync"

	"github.com/mergington/activities/internal/domain"
)

// Repository holds the activity table in memory.
// All methods are safe for concurrent use; mutations hold the write lock for
// both the precondition check and the roster edit, so a failed call never
// leaves a partial change behind.
type Repository struct {
	mu         sync.RWMutex
	activities map[string]domain.Activity
}

// NewRepository constructs a repository populated with a deep copy of seed.
func NewRepository(seed map[string]domain.Activity) *Repository {
	r := &Repository{activities: make(map[string]domain.Activity, len(seed))}
	for name, activity := range seed {
		r.activities[name] = activity.Clone()
	}
	return r
}

// List implements domain.ActivityRepository.
func (r *Repository) List(_ context.Context) (map[string]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.Activity, len(r.activities))
	for name, activity := range r.activities {
		out[name] = activity.Clone()
	}
	return out, nil
}

// Get implements domain.ActivityRepository.
func (r *Repository) Get(_ context.Context, name string) (domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.Activity{}, domain.ErrActivityNotFound
	}
	return activity.Clone(), nil
}

// Signup implements domain.ActivityRepository.
// Capacity (MaxParticipants) is intentionally not checked.
func (r *Repository) Signup(_ context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	if activity.HasParticipant(email) {
		return domain.ErrAlreadySignedUp
	}

	activity.Participants = append(activity.Participants, email)
	r.activities[name] = activity
	return nil
}

// Unregister implements domain.ActivityRepository.
func (r *Repository) Unregister(_ context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}

	idx := -1
	for i, p := range activity.Participants {
		if p == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrNotSignedUp
	}

	activity.Participants = append(activity.Participants[:idx], activity.Participants[idx+1:]...)
	r.activities[name] = activity
	return nil
}

// Len returns the number of activities in the table.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.activities)
}

// Snapshot returns a deep copy of the current table, suitable for Restore.
func (r *Repository) Snapshot() map[string]domain.Activity {
	snapshot, _ := r.List(context.Background())
	return snapshot
}

// Restore replaces the table with a deep copy of snapshot.
func (r *Repository) Restore(snapshot map[string]domain.Activity) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.activities = make(map[string]domain.Activity, len(snapshot))
	for name, activity := range snapshot {
		r.activities[name] = activity.Clone()
	}
}
