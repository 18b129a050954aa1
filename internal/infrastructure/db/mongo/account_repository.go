package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zonehead/commerce-api/internal/core/domain"
)

type accountDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	CreatedAt    time.Time          `bson:"created_at"`
}

// AccountRepository stores email/password actors of one role. Admins and
// users live in separate collections with the same shape.
type AccountRepository struct {
	*recordStore[domain.User, accountDoc]
	role domain.Role
}

func NewAdminRepository(db *mongo.Database) *AccountRepository {
	return newAccountRepository(db.Collection(collectionAdmins), domain.RoleAdmin)
}

func NewUserRepository(db *mongo.Database) *AccountRepository {
	return newAccountRepository(db.Collection(collectionUsers), domain.RoleUser)
}

func newAccountRepository(col *mongo.Collection, role domain.Role) *AccountRepository {
	return &AccountRepository{
		recordStore: &recordStore[domain.User, accountDoc]{
			col:      col,
			keyField: "email",
			toDoc: func(u *domain.User, id primitive.ObjectID, now time.Time) (accountDoc, error) {
				return accountDoc{ID: id, Name: u.Name, Email: u.Email, CreatedAt: now}, nil
			},
			fromDoc: accountToUser,
			now:     time.Now,
		},
		role: role,
	}
}

// CreateActor inserts a signed-up actor. A taken email yields domain.ErrConflict.
func (r *AccountRepository) CreateActor(ctx context.Context, a *domain.Actor) (*domain.Actor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := accountDoc{
		ID:           primitive.NewObjectID(),
		Name:         a.Name,
		Email:        a.Email,
		PasswordHash: a.SecretHash,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrConflict
		}
		return nil, fmt.Errorf("insert %s: %w", r.role, err)
	}
	return r.toActor(&doc), nil
}

func (r *AccountRepository) FindByLogin(ctx context.Context, email string) (*domain.Actor, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*domain.Actor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *AccountRepository) findOne(ctx context.Context, filter bson.M) (*domain.Actor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc accountDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find %s: %w", r.role, err)
	}
	return r.toActor(&doc), nil
}

func (r *AccountRepository) toActor(doc *accountDoc) *domain.Actor {
	return &domain.Actor{
		ID:         doc.ID.Hex(),
		Name:       doc.Name,
		Email:      doc.Email,
		Login:      doc.Email,
		SecretHash: doc.PasswordHash,
		Role:       r.role,
		CreatedAt:  doc.CreatedAt,
	}
}

func accountToUser(doc *accountDoc) *domain.User {
	return &domain.User{
		ID:        doc.ID.Hex(),
		Name:      doc.Name,
		Email:     doc.Email,
		CreatedAt: doc.CreatedAt,
	}
}
