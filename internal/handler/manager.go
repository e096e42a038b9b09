package handler

import (
	"store-app/internal/service"

	"github.com/gin-gonic/gin"
)

type ManagerHandler struct {
	Base
	svc *service.Service
}

func NewManagerHandler(base Base, svc *service.Service) *ManagerHandler {
	return &ManagerHandler{Base: base, svc: svc}
}

// Dashboard shows the current month's revenue, expenses and profit.
func (h *ManagerHandler) Dashboard(c *gin.Context) {
	d, err := h.svc.ManagerDashboard(c.Request.Context())
	if err != nil {
		h.internalError(c, err)
		return
	}

	h.render(c, "manager.html", "Manager", gin.H{
		"Month":         d.Month,
		"Items":         d.Items,
		"Expenses":      d.Expenses,
		"TotalExpenses": d.TotalExpenses,
		"Revenue":       d.Revenue,
		"Profit":        d.Profit,
	})
}
