package handler

import (
	"errors"
	"net/http"
	"strconv"

	"store-app/internal/service"
	"store-app/internal/utils"

	"github.com/gin-gonic/gin"
)

// InventoryHandler serves the manager's item mutations.
type InventoryHandler struct {
	Base
	svc *service.Service
}

func NewInventoryHandler(base Base, svc *service.Service) *InventoryHandler {
	return &InventoryHandler{Base: base, svc: svc}
}

// parseItemForm converts the add-item form. The first malformed field fails
// the whole form.
func parseItemForm(c *gin.Context) (service.NewItemInput, error) {
	var in service.NewItemInput
	var err error

	if in.Name, err = utils.RequireText("name", c.PostForm("name")); err != nil {
		return in, err
	}
	if in.Stock, err = utils.ParseInt("stock", c.PostForm("stock")); err != nil {
		return in, err
	}
	if in.CapitalPerUnit, err = utils.ParseDecimal("capital", c.PostForm("capital")); err != nil {
		return in, err
	}
	if in.SellingPrice, err = utils.ParseDecimal("selling", c.PostForm("selling")); err != nil {
		return in, err
	}
	if in.CashierBonus, err = utils.ParseDecimal("bonus", c.PostForm("bonus")); err != nil {
		return in, err
	}
	return in, nil
}

func (h *InventoryHandler) AddItem(c *gin.Context) {
	in, err := parseItemForm(c)
	if err != nil {
		h.badInput(c, err)
		return
	}

	if _, err := h.svc.AddItem(c.Request.Context(), in); err != nil {
		h.internalError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/manager")
}

func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		// Non-numeric ids never match a route item.
		h.notFound(c)
		return
	}

	if err := h.svc.DeleteItem(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			h.notFound(c)
			return
		}
		h.internalError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/manager")
}
