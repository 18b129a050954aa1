package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zonehead/commerce-api/internal/core/domain"
)

type productDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Desc      string             `bson:"desc"`
	Price     float64            `bson:"price"`
	MRP       float64            `bson:"mrp"`
	Category  string             `bson:"category"`
	Image     string             `bson:"image,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

type categoryDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Desc      string             `bson:"desc"`
	CreatedAt time.Time          `bson:"created_at"`
}

type ProductRepository struct {
	*recordStore[domain.Product, productDoc]
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{&recordStore[domain.Product, productDoc]{
		col:      db.Collection(collectionProducts),
		keyField: "title",
		toDoc: func(p *domain.Product, id primitive.ObjectID, now time.Time) (productDoc, error) {
			return productDoc{
				ID:        id,
				Title:     p.Title,
				Desc:      p.Desc,
				Price:     p.Price,
				MRP:       p.MRP,
				Category:  p.Category,
				Image:     p.Image,
				CreatedAt: now,
			}, nil
		},
		fromDoc: productFromDoc,
		now:     time.Now,
	}}
}

// FindByIDs returns the products among ids that exist. Malformed ids are
// treated as missing.
func (r *ProductRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Product, error) {
	oids := objectIDs(ids)
	if len(oids) == 0 {
		return []*domain.Product{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	var docs []productDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	out := make([]*domain.Product, 0, len(docs))
	for i := range docs {
		out = append(out, productFromDoc(&docs[i]))
	}
	return out, nil
}

func productFromDoc(d *productDoc) *domain.Product {
	return &domain.Product{
		ID:        d.ID.Hex(),
		Title:     d.Title,
		Desc:      d.Desc,
		Price:     d.Price,
		MRP:       d.MRP,
		Category:  d.Category,
		Image:     d.Image,
		CreatedAt: d.CreatedAt,
	}
}

type CategoryRepository struct {
	*recordStore[domain.Category, categoryDoc]
}

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{&recordStore[domain.Category, categoryDoc]{
		col:      db.Collection(collectionCategories),
		keyField: "title",
		toDoc: func(c *domain.Category, id primitive.ObjectID, now time.Time) (categoryDoc, error) {
			return categoryDoc{ID: id, Title: c.Title, Desc: c.Desc, CreatedAt: now}, nil
		},
		fromDoc: func(d *categoryDoc) *domain.Category {
			return &domain.Category{ID: d.ID.Hex(), Title: d.Title, Desc: d.Desc, CreatedAt: d.CreatedAt}
		},
		now: time.Now,
	}}
}
