package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/haiki1233/food-delivery-backend/pkg/resp"
	"github.com/haiki1233/food-delivery-backend/services"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=customer owner admin"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Svc.Register(req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"id": user.ID, "username": user.Username, "email": user.Email, "role": user.Role})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{
		"token": token,
		"user":  gin.H{"username": user.Username, "email": user.Email, "role": user.Role},
	})
}
