// Package cache holds the per-user playlist snapshots for the lifetime of
// the process. It is the only shared mutable state in the app.
package cache

import (
	"mixtape/blueprint"
	"sync"
)

// UserCache maps a spotify user id to the snapshot of their last successful
// fetch. Writes replace the whole snapshot pointer, so concurrent readers
// either see the previous snapshot or the new one, never a torn one.
// There is no eviction. Snapshots live until the process exits.
type UserCache struct {
	mu        sync.RWMutex
	snapshots map[string]*blueprint.UserSnapshot
}

func NewUserCache() *UserCache {
	return &UserCache{
		snapshots: map[string]*blueprint.UserSnapshot{},
	}
}

// Put overwrites any previous snapshot for the user. Last writer wins.
func (c *UserCache) Put(userID string, snapshot *blueprint.UserSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshots[userID] = snapshot
}

// Get returns the cached snapshot for the user, or false when the user was
// never fetched in this process.
func (c *UserCache) Get(userID string) (*blueprint.UserSnapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	snapshot, ok := c.snapshots[userID]
	return snapshot, ok
}

// Len reports how many users have a cached snapshot.
func (c *UserCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.snapshots)
}
