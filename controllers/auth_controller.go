package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/nudrat-nrt/Online-Food-Delivery-System/pkg/resp"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/services"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/utils"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /api/register
func (h *AuthController) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required,min=4"`
		Email    string `json:"email" binding:"omitempty,email"`
		FullName string `json:"fullName"`
		Phone    string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := h.Svc.Register(req.Username, req.Password, req.Email, req.FullName, req.Phone)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"id": user.ID, "username": user.Username})
}

// POST /api/login
func (h *AuthController) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := h.Svc.Login(req.Username, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	resp.OK(c, gin.H{
		"token":    token,
		"username": user.Username,
		"role":     user.Role,
	})
}

// POST /api/logout
func (h *AuthController) Logout(c *gin.Context) {
	h.Svc.Logout(utils.CurrentSessionID(c))
	resp.OK(c, gin.H{"loggedOut": true})
}

// GET /api/user/profile
func (h *AuthController) Profile(c *gin.Context) {
	user, err := h.Svc.GetProfile(utils.CurrentUsername(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}
