package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zonehead/commerce-api/internal/core/domain"
)

type orderManager interface {
	PlaceOrder(ctx context.Context, actor *domain.Actor, items []domain.OrderItem) (*domain.Order, error)
	ListDetailed(ctx context.Context, actor *domain.Actor) ([]*domain.OrderDetail, error)
}

// OrderHandler serves user orders and the admin order overview.
type OrderHandler struct {
	orders orderManager
}

func NewOrderHandler(orders orderManager) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type orderItemRequest struct {
	Product  string `json:"product" validate:"required"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

type placeOrderRequest struct {
	Items []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// PlaceOrder orders catalog products for the calling user.
//
// @Summary      Place order
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      placeOrderRequest  true  "Items"
// @Success      201   {object}  domain.Order
// @Failure      400   {object}  messageResponse
// @Router       /place-order [post]
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	var req placeOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.OrderItem{ProductID: it.Product, Quantity: it.Quantity})
	}

	order, err := h.orders.PlaceOrder(c.Request().Context(), actor, items)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, order)
}

// ListOrders returns the orders visible to the caller: a user's own, or all
// of them for admins.
//
// @Summary      List orders
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.OrderDetail
// @Router       /my-orders [get]
// @Router       /admin/all-orders [get]
func (h *OrderHandler) ListOrders(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	out, err := h.orders.ListDetailed(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	if out == nil {
		out = []*domain.OrderDetail{}
	}
	return c.JSON(http.StatusOK, out)
}
