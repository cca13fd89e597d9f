package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/haiki1233/food-delivery-backend/pkg/resp"
	"github.com/haiki1233/food-delivery-backend/services"
	"github.com/haiki1233/food-delivery-backend/utils"
)

type OrderController struct {
	Svc    *services.OrderService
	Report *services.ReportService
}

func NewOrderController(svc *services.OrderService, report *services.ReportService) *OrderController {
	return &OrderController{Svc: svc, Report: report}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Svc.Create(uid, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"order": order})
}

// GET /orders/my-orders
func (oc *OrderController) MyOrders(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	orders, err := oc.Svc.ListForUser(uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"results": len(orders), "orders": orders})
}

// PATCH /orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := oc.Svc.UpdateStatus(uint(id), req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"order": order})
}

// GET /orders/stats
func (oc *OrderController) Stats(c *gin.Context) {
	stats, err := oc.Report.Revenue()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"stats": stats})
}
