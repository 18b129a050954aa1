package ports

import (
	"context"
	"time"

	"github.com/zonehead/commerce-api/internal/core/domain"
)

type TokenIssuer interface {
	Issue(actorID string, role domain.Role) (string, error)
}

type TokenVerifier interface {
	Verify(token string) (*domain.Claims, error)
}

// TokenDenylist records signed-out tokens until they would have expired.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
