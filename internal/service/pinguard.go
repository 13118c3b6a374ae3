package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// PINGuard rate-limits PIN verification per (project, user) with a fixed
// redis window. Redis being unavailable fails open; the digest check is
// still the gate.
type PINGuard struct {
	rdb    *redis.Client
	max    int
	window time.Duration
}

func NewPINGuard(rdb *redis.Client, maxAttempts, windowMinutes int) *PINGuard {
	return &PINGuard{
		rdb:    rdb,
		max:    maxAttempts,
		window: time.Duration(windowMinutes) * time.Minute,
	}
}

func (g *PINGuard) key(projectID string, userID uint) string {
	return fmt.Sprintf("pin_attempts:%s:%d", projectID, userID)
}

func (g *PINGuard) Allow(ctx context.Context, projectID string, userID uint) bool {
	n, err := g.rdb.Get(ctx, g.key(projectID, userID)).Int()
	if err != nil {
		return true
	}
	return n < g.max
}

func (g *PINGuard) RecordFailure(ctx context.Context, projectID string, userID uint) {
	key := g.key(projectID, userID)
	n, err := g.rdb.Incr(ctx, key).Result()
	if err != nil {
		return
	}
	if n == 1 {
		g.rdb.Expire(ctx, key, g.window)
	}
}

func (g *PINGuard) Reset(ctx context.Context, projectID string, userID uint) {
	g.rdb.Del(ctx, g.key(projectID, userID))
}
