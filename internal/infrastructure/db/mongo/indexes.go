package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collectionAdmins     = "admins"
	collectionUsers      = "users"
	collectionZones      = "zones"
	collectionProducts   = "products"
	collectionCategories = "categories"
	collectionReceipts   = "receipts"
	collectionOrders     = "orders"
)

func unique(field string) mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(true),
	}
}

func ascending(field string) mongo.IndexModel {
	return mongo.IndexModel{Keys: bson.D{{Key: field, Value: 1}}}
}

// indexPlan lists the indexes each collection needs. Unique indexes back the
// application-level key checks so concurrent inserts still conflict.
var indexPlan = map[string][]mongo.IndexModel{
	collectionAdmins:     {unique("email")},
	collectionUsers:      {unique("email")},
	collectionZones:      {unique("zonename"), unique("zoneId"), unique("email")},
	collectionProducts:   {unique("title")},
	collectionCategories: {unique("title")},
	collectionReceipts:   {ascending("zonehead")},
	collectionOrders:     {ascending("user")},
}

// EnsureIndexes creates the indexes of every collection.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	for coll, models := range indexPlan {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", coll, err)
		}
	}
	return nil
}
