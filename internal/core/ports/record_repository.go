package ports

import (
	"context"

	"github.com/zonehead/commerce-api/internal/core/domain"
)

// RecordRepository is the persistence contract shared by every record kind.
// Scope is applied to the store query itself.
type RecordRepository[T any] interface {
	Insert(ctx context.Context, rec *T) (*T, error)
	// ExistsByKey reports whether a record with the given unique key exists.
	ExistsByKey(ctx context.Context, key string) (bool, error)
	List(ctx context.Context, scope domain.Scope) ([]*T, error)
	// DeleteByID removes and returns the record, or domain.ErrNotFound when
	// no record with that id is visible in scope.
	DeleteByID(ctx context.Context, id string, scope domain.Scope) (*T, error)
}

// ProductCatalog resolves product references for orders.
type ProductCatalog interface {
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Product, error)
}

// ReceiptReader serves the admin view of receipts with zones joined in.
type ReceiptReader interface {
	ListDetailed(ctx context.Context, scope domain.Scope) ([]*domain.ReceiptDetail, error)
}

// OrderReader serves order views with users and products joined in.
type OrderReader interface {
	ListDetailed(ctx context.Context, scope domain.Scope) ([]*domain.OrderDetail, error)
}
