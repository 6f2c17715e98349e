package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/store-admin-api/internal/application"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
	"github.com/oksasatya/store-admin-api/pkg/response"
)

type OrderHandler struct {
	Svc    *application.OrderService
	Logger *logrus.Logger
}

func NewOrderHandler(svc *application.OrderService, logger *logrus.Logger) *OrderHandler {
	return &OrderHandler{Svc: svc, Logger: logger}
}

func (h *OrderHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/orders", h.List)
	rg.GET("/orders/:orderId", h.Get)
}

func (h *OrderHandler) List(c *gin.Context) {
	out, err := h.Svc.List(c.Request.Context(), userID(c), c.Param("storeId"))
	if err != nil {
		respondErr(c, h.Logger, "ORDERS_GET", err)
		return
	}
	response.OK(c, out)
}

func (h *OrderHandler) Get(c *gin.Context) {
	out, err := h.Svc.Get(c.Request.Context(), userID(c), c.Param("storeId"), c.Param("orderId"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Null(c)
			return
		}
		respondErr(c, h.Logger, "ORDER_GET", err)
		return
	}
	response.OK(c, out)
}
