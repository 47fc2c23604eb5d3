package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const guardTTL = time.Hour

// SubmissionGuard is the advisory recently-submitted marker backed by Redis.
// Key format: submitted:<lowercased email>
// It only short-circuits the fast path; the Mongo unique index is the
// authoritative duplicate guard.
type SubmissionGuard struct {
	client *redis.Client
}

// NewSubmissionGuard creates a SubmissionGuard wrapping the given Redis client.
func NewSubmissionGuard(client *redis.Client) *SubmissionGuard {
	return &SubmissionGuard{client: client}
}

// SeenRecently reports whether this email submitted within the guard TTL.
func (g *SubmissionGuard) SeenRecently(ctx context.Context, email string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(email)).Result()
	if err != nil {
		return false, fmt.Errorf("submission guard check: %w", err)
	}
	return n > 0, nil
}

// Mark records a successful submission (expires after guardTTL).
func (g *SubmissionGuard) Mark(ctx context.Context, email string) error {
	return g.client.Set(ctx, g.key(email), "1", guardTTL).Err()
}

func (g *SubmissionGuard) key(email string) string {
	return "submitted:" + strings.ToLower(email)
}
