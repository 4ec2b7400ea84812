package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nudrat-nrt/Online-Food-Delivery-System/pkg/resp"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/services"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/session"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/utils"
)

type OrderController struct {
	Svc      *services.OrderService
	Sessions *session.Store
}

func NewOrderController(s *services.OrderService, sessions *session.Store) *OrderController {
	return &OrderController{Svc: s, Sessions: sessions}
}

// POST /api/order — place an order from the session cart.
func (h *OrderController) Place(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	if sid == "" {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req services.PlaceOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := h.Sessions.Get(sid)
	if err != nil {
		resp.Error(c, err)
		return
	}

	out, err := h.Svc.PlaceOrder(c.Request.Context(), cart, utils.CurrentUsername(c), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}

	// clear only after the order is committed; a failed placement leaves
	// the cart intact and retryable
	cart.Clear()
	resp.Created(c, out)
}

// GET /api/orders
func (h *OrderController) ListForMe(c *gin.Context) {
	orders, err := h.Svc.ListForUser(utils.CurrentUsername(c), 50)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

// GET /api/orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid order id")
		return
	}
	detail, err := h.Svc.DetailForUser(utils.CurrentUsername(c), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, detail)
}
