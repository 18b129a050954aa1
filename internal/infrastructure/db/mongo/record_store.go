package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zonehead/commerce-api/internal/core/domain"
)

// recordStore implements ports.RecordRepository for one collection. T is the
// domain type and D its BSON document.
type recordStore[T any, D any] struct {
	col *mongo.Collection
	// keyField holds the application uniqueness key. Empty disables ExistsByKey.
	keyField string
	// ownerField holds the owning actor's ObjectID. Empty for unowned kinds.
	ownerField string
	toDoc      func(rec *T, id primitive.ObjectID, now time.Time) (D, error)
	fromDoc    func(doc *D) *T
	now        func() time.Time
}

// Insert assigns a fresh ObjectID and creation time and stores rec.
func (s *recordStore[T, D]) Insert(ctx context.Context, rec *T) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := s.toDoc(rec, primitive.NewObjectID(), s.now().UTC())
	if err != nil {
		return nil, err
	}

	if _, err := s.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrConflict
		}
		return nil, fmt.Errorf("insert into %s: %w", s.col.Name(), err)
	}
	return s.fromDoc(&doc), nil
}

func (s *recordStore[T, D]) ExistsByKey(ctx context.Context, key string) (bool, error) {
	if s.keyField == "" {
		return false, nil
	}
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := s.col.CountDocuments(ctx, bson.M{s.keyField: key}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count %s: %w", s.col.Name(), err)
	}
	return n > 0, nil
}

// List returns the records in scope, newest first.
func (s *recordStore[T, D]) List(ctx context.Context, scope domain.Scope) ([]*T, error) {
	filter, ok := scopeFilter(scope, s.ownerField)
	if !ok {
		return []*T{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := s.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", s.col.Name(), err)
	}
	var docs []D
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.col.Name(), err)
	}

	out := make([]*T, 0, len(docs))
	for i := range docs {
		out = append(out, s.fromDoc(&docs[i]))
	}
	return out, nil
}

// DeleteByID removes the record only if it matches both id and scope.
func (s *recordStore[T, D]) DeleteByID(ctx context.Context, id string, scope domain.Scope) (*T, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	filter, ok := scopeFilter(scope, s.ownerField)
	if !ok {
		return nil, domain.ErrNotFound
	}
	filter["_id"] = oid

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc D
	if err := s.col.FindOneAndDelete(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("delete from %s: %w", s.col.Name(), err)
	}
	return s.fromDoc(&doc), nil
}

// scopeFilter turns scope into the base query filter. It returns false when
// the scope can match nothing, e.g. an owner id that is not an ObjectID.
func scopeFilter(scope domain.Scope, ownerField string) (bson.M, bool) {
	filter := bson.M{}
	if !scope.Restricted() {
		return filter, true
	}
	if ownerField == "" {
		return nil, false
	}
	owner, err := primitive.ObjectIDFromHex(scope.OwnerID)
	if err != nil {
		return nil, false
	}
	filter[ownerField] = owner
	return filter, true
}

// objectIDs converts hex ids, dropping any that are malformed.
func objectIDs(ids []string) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			out = append(out, oid)
		}
	}
	return out
}

func hexOrEmpty(id primitive.ObjectID) string {
	if id.IsZero() {
		return ""
	}
	return id.Hex()
}
