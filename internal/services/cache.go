package services

import (
	"sync"
	"time"

	"github.com/pinkswindowcleaning/pulse-backend/internal/dto"
)

// reportCache keeps the most recent dashboard snapshot for a short TTL so
// bursts of page loads don't each re-query the warehouse. A TTL <= 0
// disables caching.
type reportCache struct {
	mu       sync.RWMutex
	ttl      time.Duration
	snap     dto.DashboardResponse
	storedAt time.Time
	valid    bool
}

func newReportCache(ttl time.Duration) *reportCache {
	return &reportCache{ttl: ttl}
}

func (c *reportCache) get(now time.Time) (dto.DashboardResponse, bool) {
	if c.ttl <= 0 {
		return dto.DashboardResponse{}, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.valid || now.Sub(c.storedAt) >= c.ttl {
		return dto.DashboardResponse{}, false
	}
	return c.snap, true
}

func (c *reportCache) put(snap dto.DashboardResponse, now time.Time) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = snap
	c.storedAt = now
	c.valid = true
}
