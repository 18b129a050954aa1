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

type orderItemDoc struct {
	Product  primitive.ObjectID `bson:"product"`
	Quantity int                `bson:"quantity"`
}

type orderDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	User      primitive.ObjectID `bson:"user"`
	Items     []orderItemDoc     `bson:"items"`
	Total     float64            `bson:"total"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
}

type orderDetailDoc struct {
	orderDoc `bson:",inline"`
	Buyer    *accountDoc  `bson:"buyer,omitempty"`
	Products []productDoc `bson:"products"`
}

// OrderRepository stores orders owned by the user in "user".
type OrderRepository struct {
	*recordStore[domain.Order, orderDoc]
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{&recordStore[domain.Order, orderDoc]{
		col:        db.Collection(collectionOrders),
		ownerField: "user",
		toDoc:      orderToDoc,
		fromDoc:    orderFromDoc,
		now:        time.Now,
	}}
}

// ListDetailed returns orders in scope with the buyer and products joined in.
func (r *OrderRepository) ListDetailed(ctx context.Context, scope domain.Scope) ([]*domain.OrderDetail, error) {
	match, ok := scopeFilter(scope, "user")
	if !ok {
		return []*domain.OrderDetail{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collectionUsers},
			{Key: "localField", Value: "user"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "buyer"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$buyer"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collectionProducts},
			{Key: "localField", Value: "items.product"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "products"},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate orders: %w", err)
	}
	var docs []orderDetailDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	out := make([]*domain.OrderDetail, 0, len(docs))
	for i := range docs {
		out = append(out, orderDetailFromDoc(&docs[i]))
	}
	return out, nil
}

func orderToDoc(o *domain.Order, id primitive.ObjectID, now time.Time) (orderDoc, error) {
	user, err := primitive.ObjectIDFromHex(o.UserID)
	if err != nil {
		return orderDoc{}, fmt.Errorf("order owner: %w", domain.ErrInvalidInput)
	}
	items := make([]orderItemDoc, 0, len(o.Items))
	for _, it := range o.Items {
		pid, err := primitive.ObjectIDFromHex(it.ProductID)
		if err != nil {
			return orderDoc{}, fmt.Errorf("order item %q: %w", it.ProductID, domain.ErrInvalidInput)
		}
		items = append(items, orderItemDoc{Product: pid, Quantity: it.Quantity})
	}
	return orderDoc{
		ID:        id,
		User:      user,
		Items:     items,
		Total:     o.Total,
		Status:    o.Status,
		CreatedAt: now,
	}, nil
}

func orderFromDoc(d *orderDoc) *domain.Order {
	items := make([]domain.OrderItem, 0, len(d.Items))
	for _, it := range d.Items {
		items = append(items, domain.OrderItem{ProductID: it.Product.Hex(), Quantity: it.Quantity})
	}
	return &domain.Order{
		ID:        d.ID.Hex(),
		UserID:    hexOrEmpty(d.User),
		Items:     items,
		Total:     d.Total,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
	}
}

func orderDetailFromDoc(d *orderDetailDoc) *domain.OrderDetail {
	byID := make(map[primitive.ObjectID]*productDoc, len(d.Products))
	for i := range d.Products {
		byID[d.Products[i].ID] = &d.Products[i]
	}

	items := make([]domain.OrderItemDetail, 0, len(d.Items))
	for _, it := range d.Items {
		detail := domain.OrderItemDetail{Quantity: it.Quantity}
		if p, ok := byID[it.Product]; ok {
			detail.Product = productFromDoc(p)
		}
		items = append(items, detail)
	}

	out := &domain.OrderDetail{
		ID:        d.ID.Hex(),
		Items:     items,
		Total:     d.Total,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
	}
	if d.Buyer != nil {
		out.User = accountToUser(d.Buyer)
	}
	return out
}
