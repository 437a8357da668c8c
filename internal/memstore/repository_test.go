package memstore

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/mergington/activities/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepository_CopiesSeed(t *testing.T) {
	seed := DefaultActivities()
	repo := NewRepository(seed)

	// Mutating the seed after construction must not affect the store.
	seed["Chess Club"].Participants[0] = "intruder@mergington.edu"

	activity, err := repo.Get(context.Background(), "Chess Club")
	require.NoError(t, err)
	assert.Equal(t, "michael@mergington.edu", activity.Participants[0])
}

func TestList_ReturnsAllActivities(t *testing.T) {
	repo := NewRepository(DefaultActivities())

	activities, err := repo.List(context.Background())
	require.NoError(t, err)

	assert.Len(t, activities, 9)
	assert.Contains(t, activities, "Soccer Team")
	assert.Contains(t, activities, "Basketball Club")
}

func TestList_CopyIsIsolated(t *testing.T) {
	repo := NewRepository(DefaultActivities())

	activities, err := repo.List(context.Background())
	require.NoError(t, err)

	activities["Soccer Team"].Participants[0] = "mutated@mergington.edu"

	fresh, err := repo.Get(context.Background(), "Soccer Team")
	require.NoError(t, err)
	assert.Equal(t, "alex@mergington.edu", fresh.Participants[0])
}

func TestGet_UnknownActivity(t *testing.T) {
	repo := NewRepository(DefaultActivities())

	_, err := repo.Get(context.Background(), "Knitting Circle")
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestSignup_AppendsAtEnd(t *testing.T) {
	repo := NewRepository(DefaultActivities())

	err := repo.Signup(context.Background(), "Chess Club", "new@mergington.edu")
	require.NoError(t, err)

	activity, err := repo.Get(context.Background(), "Chess Club")
	require.NoError(t, err)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu", "new@mergington.edu"}, activity.Participants)
}

func TestSignup_DuplicateLeavesRosterUnchanged(t *testing.T) {
	repo := NewRepository(DefaultActivities())
	before, err := repo.Get(context.Background(), "Soccer Team")
	require.NoError(t, err)

	err = repo.Signup(context.Background(), "Soccer Team", "alex@mergington.edu")
	assert.ErrorIs(t, err, domain.ErrAlreadySignedUp)

	after, err := repo.Get(context.Background(), "Soccer Team")
	require.NoError(t, err)
	assert.Equal(t, before.Participants, after.Participants)
}

func TestSignup_UnknownActivity(t *testing.T) {
	repo := NewRepository(DefaultActivities())

	err := repo.Signup(context.Background(), "Knitting Circle", "a@mergington.edu")
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestSignup_IgnoresCapacity(t *testing.T) {
	repo := NewRepository(map[string]domain.Activity{
		"Tiny Club": {
			Description:     "One seat only",
			Schedule:        "Never",
			MaxParticipants: 1,
			Participants:    []string{"first@mergington.edu"},
		},
	})

	// max_participants is advisory: the second signup must still succeed.
	err := repo.Signup(context.Background(), "Tiny Club", "second@mergington.edu")
	require.NoError(t, err)

	activity, err := repo.Get(context.Background(), "Tiny Club")
	require.NoError(t, err)
	assert.Len(t, activity.Participants, 2)
}

func TestUnregister_PreservesOrder(t *testing.T) {
	repo := NewRepository(map[string]domain.Activity{
		"Trio": {Participants: []string{"a@x", "b@x", "c@x"}},
	})

	err := repo.Unregister(context.Background(), "Trio", "b@x")
	require.NoError(t, err)

	activity, err := repo.Get(context.Background(), "Trio")
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x", "c@x"}, activity.Participants)
}

func TestUnregister_AbsentEmail(t *testing.T) {
	repo := NewRepository(DefaultActivities())

	err := repo.Unregister(context.Background(), "Soccer Team", "ghost@mergington.edu")
	assert.ErrorIs(t, err, domain.ErrNotSignedUp)
}

func TestUnregister_UnknownActivity(t *testing.T) {
	repo := NewRepository(DefaultActivities())

	err := repo.Unregister(context.Background(), "Knitting Circle", "a@mergington.edu")
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestSignupUnregister_RoundTrip(t *testing.T) {
	repo := NewRepository(DefaultActivities())
	before, err := repo.Get(context.Background(), "Chess Club")
	require.NoError(t, err)

	require.NoError(t, repo.Signup(context.Background(), "Chess Club", "workflow@mergington.edu"))
	require.NoError(t, repo.Unregister(context.Background(), "Chess Club", "workflow@mergington.edu"))

	after, err := repo.Get(context.Background(), "Chess Club")
	require.NoError(t, err)
	assert.Equal(t, before.Participants, after.Participants)
}

func TestSnapshotRestore(t *testing.T) {
	repo := NewRepository(DefaultActivities())
	snapshot := repo.Snapshot()

	require.NoError(t, repo.Signup(context.Background(), "Chess Club", "temp@mergington.edu"))
	repo.Restore(snapshot)

	activity, err := repo.Get(context.Background(), "Chess Club")
	require.NoError(t, err)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, activity.Participants)
}

func TestConcurrentMutations_NoCorruption(t *testing.T) {
	repo := NewRepository(DefaultActivities())

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			email := fmt.Sprintf("student%d@mergington.edu", i)
			assert.NoError(t, repo.Signup(context.Background(), "Gym Class", email))
			if i%2 == 0 {
				assert.NoError(t, repo.Unregister(context.Background(), "Gym Class", email))
			}
		}(i)
	}
	wg.Wait()

	activity, err := repo.Get(context.Background(), "Gym Class")
	require.NoError(t, err)

	// 2 seeded + the odd-numbered workers that stayed signed up.
	assert.Len(t, activity.Participants, 2+workers/2)

	seen := make(map[string]struct{}, len(activity.Participants))
	for _, p := range activity.Participants {
		_, dup := seen[p]
		assert.False(t, dup, "duplicate participant %s", p)
		seen[p] = struct{}{}
	}
}
