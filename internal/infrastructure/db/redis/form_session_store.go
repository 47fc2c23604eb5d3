package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/antigaspi/recruitment-system/internal/core/domain"
	"github.com/antigaspi/recruitment-system/internal/core/ports"
)

const sessionTTL = 30 * time.Minute

// FormSessionStore keeps in-flight multi-step form state in Redis as a JSON
// document under session:<id>. Abandoned forms simply expire with the TTL.
type FormSessionStore struct {
	client *redis.Client
}

func NewFormSessionStore(client *redis.Client) *FormSessionStore {
	return &FormSessionStore{client: client}
}

// Save writes the session state and refreshes its TTL.
func (s *FormSessionStore) Save(ctx context.Context, id string, state ports.FormSessionState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode form session: %w", err)
	}
	return s.client.Set(ctx, s.key(id), payload, sessionTTL).Err()
}

// Load retrieves a session, returning domain.ErrFormSessionExpired when the
// id is unknown or has expired.
func (s *FormSessionStore) Load(ctx context.Context, id string) (*ports.FormSessionState, error) {
	raw, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrFormSessionExpired
		}
		return nil, fmt.Errorf("load form session: %w", err)
	}

	var state ports.FormSessionState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode form session: %w", err)
	}
	return &state, nil
}

// Delete discards a session after a successful submit.
func (s *FormSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.key(id)).Err()
}

func (s *FormSessionStore) key(id string) string {
	return "session:" + id
}
