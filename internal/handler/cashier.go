package handler

import (
	"errors"
	"net/http"

	"store-app/internal/models"
	"store-app/internal/service"
	"store-app/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CashierHandler struct {
	Base
	svc *service.Service
}

func NewCashierHandler(base Base, svc *service.Service) *CashierHandler {
	return &CashierHandler{Base: base, svc: svc}
}

type saleRow struct {
	models.Sale
	ItemName string
}

func (h *CashierHandler) Panel(c *gin.Context) {
	p, err := h.svc.CashierPanel(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}

	names := make(map[uint]string, len(p.Items))
	for _, item := range p.Items {
		names[item.ID] = item.Name
	}
	rows := make([]saleRow, 0, len(p.Sales))
	for _, sale := range p.Sales {
		name, ok := names[sale.ItemID]
		if !ok {
			name = "(deleted item)"
		}
		rows = append(rows, saleRow{Sale: sale, ItemName: name})
	}

	h.render(c, "cashier.html", "Cashier", gin.H{
		"Month":      p.Month,
		"Items":      p.Items,
		"Sales":      rows,
		"TotalBonus": p.TotalBonus,
	})
}

func (h *CashierHandler) Sell(c *gin.Context) {
	itemID, err := utils.ParseInt("item_id", c.PostForm("item_id"))
	if err != nil {
		h.badInput(c, err)
		return
	}
	quantity, err := utils.ParseInt("quantity", c.PostForm("quantity"))
	if err != nil {
		h.badInput(c, err)
		return
	}
	if itemID <= 0 {
		h.notFound(c)
		return
	}

	_, err = h.svc.RecordSale(c.Request.Context(), uint(itemID), quantity)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrItemNotFound):
		h.notFound(c)
		return
	case errors.Is(err, service.ErrInsufficientStock):
		h.Logger.Info("Sale rejected", zap.Int("item_id", itemID), zap.Int("quantity", quantity))
		h.flash(c, "danger", "Not enough stock!")
	case errors.Is(err, service.ErrInvalidQuantity):
		h.flash(c, "danger", "Quantity must be at least 1.")
	default:
		h.internalError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/cashier")
}
