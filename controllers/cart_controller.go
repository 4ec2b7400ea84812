package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/nudrat-nrt/Online-Food-Delivery-System/pkg/resp"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/services"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/utils"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /api/cart
func (h *CartController) Get(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	if sid == "" {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	view, err := h.Svc.View(sid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, view)
}

// POST /api/cart/add
func (h *CartController) Add(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	if sid == "" {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(sid, &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"added": true})
}

// POST /api/cart/clear
func (h *CartController) Clear(c *gin.Context) {
	sid := utils.CurrentSessionID(c)
	if sid == "" {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	if err := h.Svc.Clear(sid); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
