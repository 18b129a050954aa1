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

type zoneDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Type         string             `bson:"type"`
	ZoneName     string             `bson:"zonename"`
	Email        string             `bson:"email"`
	Phone        string             `bson:"phone"`
	Note         string             `bson:"note,omitempty"`
	ZoneID       string             `bson:"zoneId"`
	PasswordHash string             `bson:"password"`
	Status       string             `bson:"status"`
	Role         string             `bson:"role"`
	Image        string             `bson:"image,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

// ZoneRepository stores zones as admin-managed records and serves them as
// actors signing in with their zoneId.
type ZoneRepository struct {
	*recordStore[domain.Zone, zoneDoc]
}

func NewZoneRepository(db *mongo.Database) *ZoneRepository {
	return &ZoneRepository{&recordStore[domain.Zone, zoneDoc]{
		col:      db.Collection(collectionZones),
		keyField: "zonename",
		toDoc: func(z *domain.Zone, id primitive.ObjectID, now time.Time) (zoneDoc, error) {
			return zoneDoc{
				ID:           id,
				Name:         z.Name,
				Type:         z.Type,
				ZoneName:     z.ZoneName,
				Email:        z.Email,
				Phone:        z.Phone,
				Note:         z.Note,
				ZoneID:       z.ZoneID,
				PasswordHash: z.SecretHash,
				Status:       string(z.Status),
				Role:         string(domain.RoleZone),
				Image:        z.Image,
				CreatedAt:    now,
				UpdatedAt:    now,
			}, nil
		},
		fromDoc: zoneFromDoc,
		now:     time.Now,
	}}
}

func (r *ZoneRepository) FindByLogin(ctx context.Context, zoneID string) (*domain.Actor, error) {
	return r.findActor(ctx, bson.M{"zoneId": zoneID})
}

func (r *ZoneRepository) FindByID(ctx context.Context, id string) (*domain.Actor, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return r.findActor(ctx, bson.M{"_id": oid})
}

func (r *ZoneRepository) findActor(ctx context.Context, filter bson.M) (*domain.Actor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc zoneDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find zone: %w", err)
	}
	return &domain.Actor{
		ID:         doc.ID.Hex(),
		Name:       doc.Name,
		Email:      doc.Email,
		Login:      doc.ZoneID,
		SecretHash: doc.PasswordHash,
		Role:       domain.RoleZone,
		Status:     domain.ZoneStatus(doc.Status),
		CreatedAt:  doc.CreatedAt,
	}, nil
}

func zoneFromDoc(d *zoneDoc) *domain.Zone {
	return &domain.Zone{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Type:      d.Type,
		ZoneName:  d.ZoneName,
		Email:     d.Email,
		Phone:     d.Phone,
		Note:      d.Note,
		ZoneID:    d.ZoneID,
		Status:    domain.ZoneStatus(d.Status),
		Role:      domain.Role(d.Role),
		Image:     d.Image,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func zoneSummary(d *zoneDoc) *domain.ZoneSummary {
	if d == nil {
		return nil
	}
	return &domain.ZoneSummary{ID: d.ID.Hex(), Name: d.Name, ZoneName: d.ZoneName, Phone: d.Phone}
}
