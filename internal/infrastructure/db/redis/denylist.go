package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// minRevokeTTL is the shortest time a revoked id is kept, also for tokens
// already at or past their expiry.
const minRevokeTTL = time.Second

// Denylist records signed-out token ids until the token would have expired.
// Key format: denylist:<token_id>
type Denylist struct {
	client *redis.Client
	now    func() time.Time
}

// NewDenylist creates a Denylist wrapping the given Redis client.
func NewDenylist(client *redis.Client) *Denylist {
	return &Denylist{client: client, now: time.Now}
}

// Revoke marks tokenID as signed out until the given time.
func (d *Denylist) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	if err := d.client.Set(ctx, d.key(tokenID), "1", d.ttl(until)).Err(); err != nil {
		return fmt.Errorf("denylist revoke: %w", err)
	}
	return nil
}

// IsRevoked reports whether tokenID has been signed out.
func (d *Denylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("denylist check: %w", err)
	}
	return n > 0, nil
}

func (d *Denylist) ttl(until time.Time) time.Duration {
	ttl := until.Sub(d.now())
	if ttl < minRevokeTTL {
		return minRevokeTTL
	}
	return ttl
}

func (d *Denylist) key(tokenID string) string {
	return "denylist:" + tokenID
}
