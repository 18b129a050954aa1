package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/zonehead/commerce-api/internal/core/domain"
)

type stubCatalog struct {
	products map[string]*domain.Product
	asked    []string
}

func (c *stubCatalog) FindByIDs(_ context.Context, ids []string) ([]*domain.Product, error) {
	c.asked = ids
	var out []*domain.Product
	for _, id := range ids {
		if p, ok := c.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type stubReceiptReader struct{ scope domain.Scope }

func (r *stubReceiptReader) ListDetailed(_ context.Context, scope domain.Scope) ([]*domain.ReceiptDetail, error) {
	r.scope = scope
	return []*domain.ReceiptDetail{}, nil
}

func newOrderFixture() (*OrderService, *memRepo[domain.Order], *stubCatalog) {
	repo := newMemRepo(
		func(o *domain.Order) *string { return &o.ID },
		nil,
		func(o *domain.Order) string { return o.UserID },
	)
	catalog := &stubCatalog{products: map[string]*domain.Product{
		"p1": {ID: "p1", Title: "Tea", Price: 2.5},
		"p2": {ID: "p2", Title: "Mug", Price: 10},
	}}
	return NewOrderService(repo, catalog, nil, zerolog.Nop()), repo, catalog
}

func TestOrderService_PlaceOrder_MergesAndPrices(t *testing.T) {
	svc, _, catalog := newOrderFixture()

	order, err := svc.PlaceOrder(context.Background(), userActor, []domain.OrderItem{
		{ProductID: "p1", Quantity: 2},
		{ProductID: "p2", Quantity: 1},
		{ProductID: "p1", Quantity: 2},
	})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if len(order.Items) != 2 || order.Items[0].Quantity != 4 {
		t.Errorf("expected merged items, got %+v", order.Items)
	}
	if order.Total != 20 {
		t.Errorf("expected total 20, got %v", order.Total)
	}
	if order.UserID != userActor.ID || order.Status != domain.OrderStatusPlaced {
		t.Errorf("unexpected order: %+v", order)
	}
	if len(catalog.asked) != 2 {
		t.Errorf("expected catalog lookup of 2 ids, got %v", catalog.asked)
	}
}

func TestOrderService_PlaceOrder_Rejects(t *testing.T) {
	svc, repo, _ := newOrderFixture()
	ctx := context.Background()

	cases := map[string][]domain.OrderItem{
		"empty":           nil,
		"zero quantity":   {{ProductID: "p1", Quantity: 0}},
		"missing product": {{Quantity: 1}},
		"unknown product": {{ProductID: "p1", Quantity: 1}, {ProductID: "ghost", Quantity: 1}},
	}
	for name, items := range cases {
		if _, err := svc.PlaceOrder(ctx, userActor, items); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", name, err)
		}
	}
	if len(repo.items) != 0 {
		t.Error("no order should be stored")
	}

	if _, err := svc.PlaceOrder(ctx, adminActor, []domain.OrderItem{{ProductID: "p1", Quantity: 1}}); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("admin placing order: expected ErrForbidden, got %v", err)
	}
}

func TestOrderService_UsersSeeOwnOrders(t *testing.T) {
	svc, _, _ := newOrderFixture()
	ctx := context.Background()
	other := &domain.Actor{ID: "user_2", Role: domain.RoleUser}

	_, _ = svc.PlaceOrder(ctx, userActor, []domain.OrderItem{{ProductID: "p1", Quantity: 1}})
	_, _ = svc.PlaceOrder(ctx, other, []domain.OrderItem{{ProductID: "p2", Quantity: 1}})

	mine, err := svc.List(ctx, userActor)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(mine) != 1 || mine[0].UserID != userActor.ID {
		t.Errorf("expected only own order, got %+v", mine)
	}
}

func TestReceiptService_ListDetailedScoped(t *testing.T) {
	reader := &stubReceiptReader{}
	svc := NewReceiptService(newReceiptRepo(), reader, zerolog.Nop())

	if _, err := svc.ListDetailed(context.Background(), zoneA); err != nil {
		t.Fatalf("ListDetailed: %v", err)
	}
	if reader.scope.OwnerID != zoneA.ID {
		t.Errorf("expected scope for zone_a, got %+v", reader.scope)
	}

	if _, err := svc.ListDetailed(context.Background(), adminActor); err != nil {
		t.Fatalf("ListDetailed admin: %v", err)
	}
	if reader.scope.Restricted() {
		t.Error("admin listing must be unrestricted")
	}

	if _, err := svc.ListDetailed(context.Background(), userActor); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("user listing receipts: expected ErrForbidden, got %v", err)
	}
}

func TestProductImporter(t *testing.T) {
	repo := newProductRepo()
	products := NewProductService(repo, nil, zerolog.Nop())
	ctx := context.Background()
	_, _ = products.Create(ctx, adminActor, &domain.Product{Title: "Existing"})

	rows := []ImportRow{
		{Line: 2, Product: domain.Product{Title: "Tea", Price: 1}},
		{Line: 3, Product: domain.Product{Title: "Existing", Price: 1}},
		{Line: 4, Product: domain.Product{Title: "Bad", Price: -1}},
		{Line: 5, Err: errors.New("price: not a number")},
		{Line: 6, Product: domain.Product{Title: "Mug", Price: 3}},
	}

	importer := NewProductImporter(products)
	res, err := importer.Import(ctx, adminActor, rows)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if res.Created != 2 {
		t.Errorf("expected 2 created, got %d", res.Created)
	}
	if len(res.Skipped) != 3 {
		t.Fatalf("expected 3 skipped, got %+v", res.Skipped)
	}
	if res.Skipped[0].Line != 3 || res.Skipped[0].Reason != "product already exists" {
		t.Errorf("unexpected skip: %+v", res.Skipped[0])
	}
	if res.Skipped[1].Reason != "invalid product" {
		t.Errorf("unexpected skip: %+v", res.Skipped[1])
	}
	if len(repo.items) != 3 {
		t.Errorf("expected 3 stored products, got %d", len(repo.items))
	}

	if _, err := importer.Import(ctx, userActor, rows); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden for user, got %v", err)
	}
}

func TestProductImporter_SkipsNonFinitePrices(t *testing.T) {
	repo := newProductRepo()
	importer := NewProductImporter(NewProductService(repo, nil, zerolog.Nop()))

	rows := []ImportRow{
		{Line: 2, Product: domain.Product{Title: "Tea", Price: math.NaN()}},
		{Line: 3, Product: domain.Product{Title: "Mug", Price: math.Inf(1)}},
		{Line: 4, Product: domain.Product{Title: "Spoon", Price: 1, MRP: math.Inf(-1)}},
	}
	res, err := importer.Import(context.Background(), adminActor, rows)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if res.Created != 0 {
		t.Errorf("expected nothing created, got %d", res.Created)
	}
	if len(res.Skipped) != 3 {
		t.Fatalf("expected 3 skipped, got %+v", res.Skipped)
	}
	for _, s := range res.Skipped {
		if s.Reason != "invalid product" {
			t.Errorf("line %d: unexpected reason %q", s.Line, s.Reason)
		}
	}
	if len(repo.items) != 0 {
		t.Errorf("expected no stored products, got %d", len(repo.items))
	}
}

func TestReceiptService_RejectsNonFiniteAmount(t *testing.T) {
	svc := NewReceiptService(newReceiptRepo(), &stubReceiptReader{}, zerolog.Nop())

	for _, amount := range []float64{math.NaN(), math.Inf(1)} {
		if _, err := svc.Create(context.Background(), zoneA, &domain.Receipt{Name: "r", Amount: amount}); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("amount %v: expected ErrInvalidInput, got %v", amount, err)
		}
	}
}
