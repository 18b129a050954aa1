package ports

import (
	"context"

	"github.com/zonehead/commerce-api/internal/core/domain"
)

// ActorStore is the credential store for a single role.
type ActorStore interface {
	// FindByLogin looks an actor up by its sign-in identifier (email or zoneId).
	FindByLogin(ctx context.Context, login string) (*domain.Actor, error)
	FindByID(ctx context.Context, id string) (*domain.Actor, error)
}

// ActorRegistrar is an ActorStore that also accepts self-service signups.
type ActorRegistrar interface {
	ActorStore
	CreateActor(ctx context.Context, actor *domain.Actor) (*domain.Actor, error)
}

// ActorResolver maps a verified token identity to a live actor.
type ActorResolver interface {
	Resolve(ctx context.Context, role domain.Role, id string) (*domain.Actor, error)
}
