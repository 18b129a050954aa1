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

type receiptDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Phone       string             `bson:"phone"`
	Amount      float64            `bson:"amount"`
	Payment     string             `bson:"payment"`
	PaymentType string             `bson:"paymenttype"`
	ZoneHead    primitive.ObjectID `bson:"zonehead"`
	CreatedAt   time.Time          `bson:"created_at"`
}

type receiptDetailDoc struct {
	receiptDoc `bson:",inline"`
	Zone       *zoneDoc `bson:"zone,omitempty"`
}

// ReceiptRepository stores receipts owned by the zone in "zonehead".
type ReceiptRepository struct {
	*recordStore[domain.Receipt, receiptDoc]
}

func NewReceiptRepository(db *mongo.Database) *ReceiptRepository {
	return &ReceiptRepository{&recordStore[domain.Receipt, receiptDoc]{
		col:        db.Collection(collectionReceipts),
		ownerField: "zonehead",
		toDoc:      receiptToDoc,
		fromDoc:    receiptFromDoc,
		now:        time.Now,
	}}
}

// ListDetailed returns receipts in scope with the owning zone joined in.
func (r *ReceiptRepository) ListDetailed(ctx context.Context, scope domain.Scope) ([]*domain.ReceiptDetail, error) {
	match, ok := scopeFilter(scope, "zonehead")
	if !ok {
		return []*domain.ReceiptDetail{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collectionZones},
			{Key: "localField", Value: "zonehead"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "zone"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$zone"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate receipts: %w", err)
	}
	var docs []receiptDetailDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode receipts: %w", err)
	}

	out := make([]*domain.ReceiptDetail, 0, len(docs))
	for i := range docs {
		out = append(out, &domain.ReceiptDetail{
			Receipt: *receiptFromDoc(&docs[i].receiptDoc),
			Zone:    zoneSummary(docs[i].Zone),
		})
	}
	return out, nil
}

func receiptToDoc(rc *domain.Receipt, id primitive.ObjectID, now time.Time) (receiptDoc, error) {
	owner, err := primitive.ObjectIDFromHex(rc.ZoneID)
	if err != nil {
		return receiptDoc{}, fmt.Errorf("receipt owner: %w", domain.ErrInvalidInput)
	}
	return receiptDoc{
		ID:          id,
		Name:        rc.Name,
		Phone:       rc.Phone,
		Amount:      rc.Amount,
		Payment:     rc.Payment,
		PaymentType: rc.PaymentType,
		ZoneHead:    owner,
		CreatedAt:   now,
	}, nil
}

func receiptFromDoc(d *receiptDoc) *domain.Receipt {
	return &domain.Receipt{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Phone:       d.Phone,
		Amount:      d.Amount,
		Payment:     d.Payment,
		PaymentType: d.PaymentType,
		ZoneID:      hexOrEmpty(d.ZoneHead),
		CreatedAt:   d.CreatedAt,
	}
}
