package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/zonehead/commerce-api/internal/api/metrics"
	"github.com/zonehead/commerce-api/internal/core/domain"
	"github.com/zonehead/commerce-api/internal/core/ports"
)

// RecordSpec describes what differs between record kinds.
type RecordSpec[T any] struct {
	// Kind names the record in logs and metrics ("product", "receipt", ...).
	Kind   string
	Policy domain.Policy
	// Key returns the application-level uniqueness key. Nil disables the check.
	Key func(*T) string
	// Owner stamps the owning actor onto a new record. Nil for unowned kinds.
	Owner func(rec *T, ownerID string)
	// Prepare runs just before insert, after all checks passed.
	Prepare func(*T) error
	// OnDeleted runs after a successful delete.
	OnDeleted func(*T)
}

// RecordService is the create/list/delete template shared by every record
// kind. Scopes are resolved from the policy and handed to the repository.
type RecordService[T any] struct {
	spec RecordSpec[T]
	repo ports.RecordRepository[T]
	log  zerolog.Logger
}

func NewRecordService[T any](repo ports.RecordRepository[T], spec RecordSpec[T], log zerolog.Logger) *RecordService[T] {
	return &RecordService[T]{
		spec: spec,
		repo: repo,
		log:  log.With().Str("kind", spec.Kind).Logger(),
	}
}

func (s *RecordService[T]) Kind() string { return s.spec.Kind }

// Create stores rec on behalf of actor. A uniqueness key that is already
// taken fails with domain.ErrConflict and nothing is written.
func (s *RecordService[T]) Create(ctx context.Context, actor *domain.Actor, rec *T) (*T, error) {
	scope, err := s.spec.Policy(actor, domain.ActionCreate)
	if err != nil {
		return nil, err
	}

	if s.spec.Owner != nil {
		if !scope.Restricted() {
			return nil, domain.ErrForbidden
		}
		s.spec.Owner(rec, scope.OwnerID)
	}

	if s.spec.Key != nil {
		key := s.spec.Key(rec)
		if key == "" {
			return nil, fmt.Errorf("create %s: %w: missing key", s.spec.Kind, domain.ErrInvalidInput)
		}
		exists, err := s.repo.ExistsByKey(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", s.spec.Kind, err)
		}
		if exists {
			return nil, domain.ErrConflict
		}
	}

	if s.spec.Prepare != nil {
		if err := s.spec.Prepare(rec); err != nil {
			return nil, fmt.Errorf("create %s: %w", s.spec.Kind, err)
		}
	}

	created, err := s.repo.Insert(ctx, rec)
	if err != nil {
		return nil, err
	}

	metrics.RecordsCreatedTotal.WithLabelValues(s.spec.Kind).Inc()
	s.log.Info().Str("actor_id", actor.ID).Msg("record created")
	return created, nil
}

// List returns every record visible to actor.
func (s *RecordService[T]) List(ctx context.Context, actor *domain.Actor) ([]*T, error) {
	scope, err := s.spec.Policy(actor, domain.ActionList)
	if err != nil {
		return nil, err
	}

	recs, err := s.repo.List(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.spec.Kind, err)
	}
	return recs, nil
}

// Delete removes the record with id if it is visible to actor. Records
// outside the actor's scope are reported exactly like missing ones.
func (s *RecordService[T]) Delete(ctx context.Context, actor *domain.Actor, id string) error {
	scope, err := s.spec.Policy(actor, domain.ActionDelete)
	if err != nil {
		return err
	}

	deleted, err := s.repo.DeleteByID(ctx, id, scope)
	if err != nil {
		return err
	}

	if s.spec.OnDeleted != nil {
		s.spec.OnDeleted(deleted)
	}

	metrics.RecordsDeletedTotal.WithLabelValues(s.spec.Kind).Inc()
	s.log.Info().Str("actor_id", actor.ID).Str("id", id).Msg("record deleted")
	return nil
}
