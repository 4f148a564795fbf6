package cache_test

import (
	"fmt"
	"github.com/stretchr/testify/assert"
	"mixtape/blueprint"
	"mixtape/cache"
	"sync"
	"testing"
)

func snapshotFor(userID string, titles ...string) *blueprint.UserSnapshot {
	playlists := make([]blueprint.UserPlaylist, 0, len(titles))
	for _, title := range titles {
		playlists = append(playlists, blueprint.UserPlaylist{Title: title})
	}
	return &blueprint.UserSnapshot{UserID: userID, DisplayName: userID, Playlists: playlists}
}

func TestGetMissesForUnknownUser(t *testing.T) {
	userCache := cache.NewUserCache()

	snapshot, ok := userCache.Get("nobody")
	assert.False(t, ok)
	assert.Nil(t, snapshot)
}

func TestPutThenGet(t *testing.T) {
	userCache := cache.NewUserCache()
	userCache.Put("u1", snapshotFor("u1", "Morning", "Gym"))

	snapshot, ok := userCache.Get("u1")
	assert.True(t, ok)
	assert.Len(t, snapshot.Playlists, 2)
}

func TestPutOverwritesWholeSnapshot(t *testing.T) {
	userCache := cache.NewUserCache()
	userCache.Put("u1", snapshotFor("u1", "Old"))
	userCache.Put("u1", snapshotFor("u1", "New A", "New B"))

	snapshot, _ := userCache.Get("u1")
	assert.Len(t, snapshot.Playlists, 2)
	assert.Equal(t, "New A", snapshot.Playlists[0].Title)
	assert.Equal(t, 1, userCache.Len())
}

func TestGrowsWithoutBoundAcrossUsers(t *testing.T) {
	userCache := cache.NewUserCache()
	for i := 0; i < 100; i++ {
		id := fmt.Sprintf("user-%d", i)
		userCache.Put(id, snapshotFor(id, "Mix"))
	}
	assert.Equal(t, 100, userCache.Len())
}

func TestConcurrentWritersLastWriterWins(t *testing.T) {
	userCache := cache.NewUserCache()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			userCache.Put("shared", snapshotFor("shared", fmt.Sprintf("mix-%d", n)))
			snapshot, ok := userCache.Get("shared")
			// a reader always sees a whole snapshot, never a partial one
			assert.True(t, ok)
			assert.Len(t, snapshot.Playlists, 1)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, userCache.Len())
}
