package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/zonehead/commerce-api/internal/api/metrics"
	"github.com/zonehead/commerce-api/internal/core/domain"
	"github.com/zonehead/commerce-api/internal/core/ports"
)

// Echo context keys set by Auth.
const (
	ActorKey  = "actor"
	ClaimsKey = "claims"
)

type ctxKey struct{ name string }

var (
	actorCtxKey  = ctxKey{"actor"}
	claimsCtxKey = ctxKey{"claims"}
)

// Auth validates the bearer token, rejects signed-out tokens and resolves the
// live actor behind it. The actor and claims are stored on the echo context
// and on the request context.
func Auth(verifier ports.TokenVerifier, resolver ports.ActorResolver, denylist ports.TokenDenylist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return reject("missing_header", "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return reject("bad_header", "invalid authorization header")
			}

			claims, err := verifier.Verify(strings.TrimSpace(parts[1]))
			if err != nil {
				return reject("invalid_token", "invalid token")
			}

			ctx := c.Request().Context()
			if claims.TokenID != "" {
				revoked, err := denylist.IsRevoked(ctx, claims.TokenID)
				if err != nil || revoked {
					return reject("revoked", "invalid token")
				}
			}

			actor, err := resolver.Resolve(ctx, claims.Role, claims.ActorID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return reject("actor_gone", "invalid token")
				}
				return err
			}

			c.Set(ActorKey, actor)
			c.Set(ClaimsKey, claims)
			c.SetRequest(c.Request().WithContext(WithActor(ctx, actor, claims)))

			return next(c)
		}
	}
}

func reject(reason, msg string) error {
	metrics.GuardRejectionsTotal.WithLabelValues(reason).Inc()
	return echo.NewHTTPError(http.StatusUnauthorized, msg)
}

// WithActor returns a copy of ctx carrying the authenticated actor.
func WithActor(ctx context.Context, actor *domain.Actor, claims *domain.Claims) context.Context {
	ctx = context.WithValue(ctx, actorCtxKey, actor)
	return context.WithValue(ctx, claimsCtxKey, claims)
}

// ActorFromContext returns the actor stored by Auth, if any.
func ActorFromContext(ctx context.Context) (*domain.Actor, bool) {
	a, ok := ctx.Value(actorCtxKey).(*domain.Actor)
	return a, ok && a != nil
}

// ClaimsFromContext returns the verified claims stored by Auth, if any.
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	cl, ok := ctx.Value(claimsCtxKey).(*domain.Claims)
	return cl, ok && cl != nil
}
