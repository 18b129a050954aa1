package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zonehead/commerce-api/internal/core/domain"
)

type receiptManager interface {
	recordManager[domain.Receipt]
	ListDetailed(ctx context.Context, actor *domain.Actor) ([]*domain.ReceiptDetail, error)
}

// ReceiptHandler serves zone receipts and the admin receipt overview.
type ReceiptHandler struct {
	receipts receiptManager
}

func NewReceiptHandler(receipts receiptManager) *ReceiptHandler {
	return &ReceiptHandler{receipts: receipts}
}

// receiptRequest has no owner field; the owner is always the calling zone.
type receiptRequest struct {
	Name        string  `json:"name" validate:"required"`
	Phone       string  `json:"phone"`
	Amount      float64 `json:"amount" validate:"gt=0"`
	Payment     string  `json:"payment"`
	PaymentType string  `json:"paymenttype"`
}

// GenerateReceipt records a payment for the calling zone.
//
// @Summary      Generate receipt
// @Tags         zone
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      receiptRequest  true  "Receipt"
// @Success      201   {object}  domain.Receipt
// @Failure      400   {object}  messageResponse
// @Router       /zone/generate-receipt [post]
func (h *ReceiptHandler) GenerateReceipt(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	var req receiptRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	rc, err := h.receipts.Create(c.Request().Context(), actor, &domain.Receipt{
		Name:        req.Name,
		Phone:       req.Phone,
		Amount:      req.Amount,
		Payment:     req.Payment,
		PaymentType: req.PaymentType,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, rc)
}

// ListReceipts returns the calling zone's receipts.
//
// @Summary      List own receipts
// @Tags         zone
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Receipt
// @Router       /zone/all-receipts [get]
func (h *ReceiptHandler) ListReceipts(c echo.Context) error {
	return listRecords[domain.Receipt](c, h.receipts)
}

// DeleteReceipt removes one of the calling zone's receipts. Receipts of
// other zones are reported as not found.
//
// @Summary      Delete receipt
// @Tags         zone
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Receipt id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /zone/delete-receipt/{id} [delete]
func (h *ReceiptHandler) DeleteReceipt(c echo.Context) error {
	return deleteRecord[domain.Receipt](c, h.receipts, "receipt")
}

// ListAllReceipts returns every receipt with its zone, for admins.
//
// @Summary      List all receipts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.ReceiptDetail
// @Router       /admin/all-receipts [get]
func (h *ReceiptHandler) ListAllReceipts(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}
	out, err := h.receipts.ListDetailed(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	if out == nil {
		out = []*domain.ReceiptDetail{}
	}
	return c.JSON(http.StatusOK, out)
}
