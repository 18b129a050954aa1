package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zonehead/commerce-api/internal/core/domain"
	"github.com/zonehead/commerce-api/internal/core/ports"
)

// finite reports whether none of vs is NaN or an infinity.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ImageReleaser is notified with the path of an image no record uses anymore.
type ImageReleaser func(path string)

func NewProductService(repo ports.RecordRepository[domain.Product], release ImageReleaser, log zerolog.Logger) *RecordService[domain.Product] {
	return NewRecordService(repo, RecordSpec[domain.Product]{
		Kind:   "product",
		Policy: domain.AdminManaged(domain.RoleUser),
		Key:    func(p *domain.Product) string { return strings.TrimSpace(p.Title) },
		Prepare: func(p *domain.Product) error {
			p.Title = strings.TrimSpace(p.Title)
			if !finite(p.Price, p.MRP) || p.Price < 0 || p.MRP < 0 {
				return domain.ErrInvalidInput
			}
			return nil
		},
		OnDeleted: func(p *domain.Product) {
			if release != nil && p.Image != "" {
				release(p.Image)
			}
		},
	}, log)
}

func NewCategoryService(repo ports.RecordRepository[domain.Category], log zerolog.Logger) *RecordService[domain.Category] {
	return NewRecordService(repo, RecordSpec[domain.Category]{
		Kind:   "category",
		Policy: domain.AdminManaged(domain.RoleUser),
		Key:    func(c *domain.Category) string { return strings.TrimSpace(c.Title) },
		Prepare: func(c *domain.Category) error {
			c.Title = strings.TrimSpace(c.Title)
			return nil
		},
	}, log)
}

// NewZoneService manages zone accounts. The plaintext password on a new
// zone is replaced by its hash before insert.
func NewZoneService(repo ports.RecordRepository[domain.Zone], release ImageReleaser, log zerolog.Logger) *RecordService[domain.Zone] {
	return NewRecordService(repo, RecordSpec[domain.Zone]{
		Kind:   "zone",
		Policy: domain.AdminManaged(),
		Key:    func(z *domain.Zone) string { return strings.TrimSpace(z.ZoneName) },
		Prepare: func(z *domain.Zone) error {
			if z.Password == "" || z.ZoneID == "" {
				return domain.ErrInvalidInput
			}
			hash, err := HashSecret(z.Password)
			if err != nil {
				return err
			}
			z.SecretHash = hash
			z.Password = ""
			z.ZoneName = strings.TrimSpace(z.ZoneName)
			z.Email = strings.ToLower(strings.TrimSpace(z.Email))
			z.Role = domain.RoleZone
			if z.Status == "" {
				z.Status = domain.ZoneStatusActive
			}
			return nil
		},
		OnDeleted: func(z *domain.Zone) {
			if release != nil && z.Image != "" {
				release(z.Image)
			}
		},
	}, log)
}

// NewUserService exposes end users to admins. Users are created by signup.
func NewUserService(repo ports.RecordRepository[domain.User], log zerolog.Logger) *RecordService[domain.User] {
	return NewRecordService(repo, RecordSpec[domain.User]{
		Kind:   "user",
		Policy: domain.AdminManaged(),
	}, log)
}

// ReceiptService scopes receipts to the zone that issued them.
type ReceiptService struct {
	*RecordService[domain.Receipt]
	reader ports.ReceiptReader
	policy domain.Policy
}

func NewReceiptService(repo ports.RecordRepository[domain.Receipt], reader ports.ReceiptReader, log zerolog.Logger) *ReceiptService {
	policy := domain.OwnerScoped(domain.RoleZone)
	return &ReceiptService{
		RecordService: NewRecordService(repo, RecordSpec[domain.Receipt]{
			Kind:   "receipt",
			Policy: policy,
			Owner:  func(r *domain.Receipt, zoneID string) { r.ZoneID = zoneID },
			Prepare: func(r *domain.Receipt) error {
				if !finite(r.Amount) || r.Amount <= 0 {
					return domain.ErrInvalidInput
				}
				return nil
			},
		}, log),
		reader: reader,
		policy: policy,
	}
}

// ListDetailed returns receipts with their owning zone joined in.
func (s *ReceiptService) ListDetailed(ctx context.Context, actor *domain.Actor) ([]*domain.ReceiptDetail, error) {
	scope, err := s.policy(actor, domain.ActionList)
	if err != nil {
		return nil, err
	}
	out, err := s.reader.ListDetailed(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	return out, nil
}

// OrderService places orders for users and lists them with joins.
type OrderService struct {
	*RecordService[domain.Order]
	catalog ports.ProductCatalog
	reader  ports.OrderReader
	policy  domain.Policy
}

func NewOrderService(
	repo ports.RecordRepository[domain.Order],
	catalog ports.ProductCatalog,
	reader ports.OrderReader,
	log zerolog.Logger,
) *OrderService {
	policy := domain.OwnerScoped(domain.RoleUser)
	return &OrderService{
		RecordService: NewRecordService(repo, RecordSpec[domain.Order]{
			Kind:   "order",
			Policy: policy,
			Owner:  func(o *domain.Order, userID string) { o.UserID = userID },
		}, log),
		catalog: catalog,
		reader:  reader,
		policy:  policy,
	}
}

// PlaceOrder validates the items against the catalog, prices them and
// stores the order for actor. Repeated products are merged.
func (s *OrderService) PlaceOrder(ctx context.Context, actor *domain.Actor, items []domain.OrderItem) (*domain.Order, error) {
	if _, err := s.policy(actor, domain.ActionCreate); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("place order: %w: no items", domain.ErrInvalidInput)
	}

	merged := make([]domain.OrderItem, 0, len(items))
	index := make(map[string]int, len(items))
	for _, it := range items {
		if it.ProductID == "" || it.Quantity <= 0 {
			return nil, fmt.Errorf("place order: %w: bad item", domain.ErrInvalidInput)
		}
		if i, ok := index[it.ProductID]; ok {
			merged[i].Quantity += it.Quantity
			continue
		}
		index[it.ProductID] = len(merged)
		merged = append(merged, it)
	}

	ids := make([]string, len(merged))
	for i, it := range merged {
		ids[i] = it.ProductID
	}
	products, err := s.catalog.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}
	prices := make(map[string]float64, len(products))
	for _, p := range products {
		prices[p.ID] = p.Price
	}

	var total float64
	for _, it := range merged {
		price, ok := prices[it.ProductID]
		if !ok {
			return nil, fmt.Errorf("place order: %w: unknown product %s", domain.ErrInvalidInput, it.ProductID)
		}
		total += price * float64(it.Quantity)
	}

	return s.Create(ctx, actor, &domain.Order{
		Items:  merged,
		Total:  total,
		Status: domain.OrderStatusPlaced,
	})
}

// ListDetailed returns the orders visible to actor with joins applied.
func (s *OrderService) ListDetailed(ctx context.Context, actor *domain.Actor) ([]*domain.OrderDetail, error) {
	scope, err := s.policy(actor, domain.ActionList)
	if err != nil {
		return nil, err
	}
	out, err := s.reader.ListDetailed(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return out, nil
}
