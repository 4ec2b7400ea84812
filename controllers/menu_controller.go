package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nudrat-nrt/Online-Food-Delivery-System/pkg/resp"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/services"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController { return &MenuController{Svc: s} }

// GET /api/menu
func (h *MenuController) List(c *gin.Context) {
	items, err := h.Svc.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /api/menu/:id
func (h *MenuController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid item id")
		return
	}
	item, err := h.Svc.Detail(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// GET /api/categories
func (h *MenuController) Categories(c *gin.Context) {
	cats, err := h.Svc.Categories()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"categories": cats})
}
