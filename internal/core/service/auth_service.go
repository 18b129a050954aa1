package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/zonehead/commerce-api/internal/api/metrics"
	"github.com/zonehead/commerce-api/internal/core/domain"
	"github.com/zonehead/commerce-api/internal/core/ports"
)

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// equaliseTiming runs a bcrypt comparison against a throwaway hash so an
// unknown login costs the same as a wrong password.
func equaliseTiming(password string) {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-secret"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

// HashSecret returns the bcrypt hash of a plaintext secret.
func HashSecret(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}
	return string(hash), nil
}

// AuthService implements signup, signin and signout for every role.
type AuthService struct {
	stores   map[domain.Role]ports.ActorStore
	tokens   ports.TokenIssuer
	denylist ports.TokenDenylist
	log      zerolog.Logger
}

func NewAuthService(
	stores map[domain.Role]ports.ActorStore,
	tokens ports.TokenIssuer,
	denylist ports.TokenDenylist,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{stores: stores, tokens: tokens, denylist: denylist, log: log}
}

// Signup registers a new actor for roles that allow self-service signup and
// returns it together with a fresh token.
func (s *AuthService) Signup(ctx context.Context, role domain.Role, name, email, password string) (*domain.Actor, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, "", domain.ErrInvalidInput
	}

	registrar, ok := s.stores[role].(ports.ActorRegistrar)
	if !ok {
		return nil, "", domain.ErrForbidden
	}

	// Fast path only; the unique index on email is the real guard.
	if _, err := registrar.FindByLogin(ctx, email); err == nil {
		return nil, "", domain.ErrConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, "", fmt.Errorf("signup: %w", err)
	}

	hash, err := HashSecret(password)
	if err != nil {
		return nil, "", err
	}

	created, err := registrar.CreateActor(ctx, &domain.Actor{
		Name:       name,
		Email:      email,
		Login:      email,
		SecretHash: hash,
		Role:       role,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created.ID, role)
	if err != nil {
		return nil, "", err
	}

	s.log.Info().Str("role", string(role)).Str("actor_id", created.ID).Msg("actor signed up")
	return created, token, nil
}

// Signin checks a login/password pair. Unknown logins, wrong passwords and
// zones that may not sign in all fail with domain.ErrInvalidCredentials.
func (s *AuthService) Signin(ctx context.Context, role domain.Role, login, password string) (*domain.Actor, string, error) {
	if login == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}
	store, ok := s.stores[role]
	if !ok {
		return nil, "", domain.ErrInvalidCredentials
	}
	if role != domain.RoleZone {
		login = strings.ToLower(strings.TrimSpace(login))
	}

	actor, err := store.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			equaliseTiming(password)
			metrics.SigninAttemptsTotal.WithLabelValues(string(role), "rejected").Inc()
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("signin: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(actor.SecretHash), []byte(password)) != nil {
		metrics.SigninAttemptsTotal.WithLabelValues(string(role), "rejected").Inc()
		return nil, "", domain.ErrInvalidCredentials
	}
	if role == domain.RoleZone && !actor.Status.CanSignIn() {
		metrics.SigninAttemptsTotal.WithLabelValues(string(role), "rejected").Inc()
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(actor.ID, role)
	if err != nil {
		return nil, "", err
	}

	metrics.SigninAttemptsTotal.WithLabelValues(string(role), "accepted").Inc()
	return actor, token, nil
}

// Signout denylists the presented token until its expiry.
func (s *AuthService) Signout(ctx context.Context, claims *domain.Claims) error {
	if claims == nil || claims.TokenID == "" {
		return domain.ErrUnauthorized
	}
	if s.denylist == nil {
		return nil
	}
	if err := s.denylist.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		return fmt.Errorf("signout: %w", err)
	}
	s.log.Info().Str("role", string(claims.Role)).Str("actor_id", claims.ActorID).Msg("actor signed out")
	return nil
}

// ActorDirectory resolves token identities against the store of their role.
type ActorDirectory struct {
	stores map[domain.Role]ports.ActorStore
}

func NewActorDirectory(stores map[domain.Role]ports.ActorStore) *ActorDirectory {
	return &ActorDirectory{stores: stores}
}

// Resolve returns the live actor for (role, id). An actor that no longer
// exists, or a zone that may no longer sign in, yields domain.ErrNotFound.
func (d *ActorDirectory) Resolve(ctx context.Context, role domain.Role, id string) (*domain.Actor, error) {
	store, ok := d.stores[role]
	if !ok {
		return nil, domain.ErrNotFound
	}

	actor, err := store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.Role != role {
		return nil, domain.ErrNotFound
	}
	if role == domain.RoleZone && !actor.Status.CanSignIn() {
		return nil, domain.ErrNotFound
	}
	return actor, nil
}
