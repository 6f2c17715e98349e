package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/store-admin-api/internal/application"
	"github.com/oksasatya/store-admin-api/pkg/response"
	"github.com/oksasatya/store-admin-api/pkg/validation"
)

// CheckoutHandler is the one public write endpoint. The storefront runs on a
// different origin, so it answers with permissive CORS headers on both the
// preflight and the POST itself.
type CheckoutHandler struct {
	Svc    *application.CheckoutService
	Logger *logrus.Logger
}

func NewCheckoutHandler(svc *application.CheckoutService, logger *logrus.Logger) *CheckoutHandler {
	return &CheckoutHandler{Svc: svc, Logger: logger}
}

func (h *CheckoutHandler) Register(rg *gin.RouterGroup) {
	rg.OPTIONS("/checkout", h.Preflight)
	rg.POST("/checkout", h.Checkout)
}

func corsHeaders(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type")
}

func (h *CheckoutHandler) Preflight(c *gin.Context) {
	corsHeaders(c)
	c.Status(http.StatusNoContent)
}

func (h *CheckoutHandler) Checkout(c *gin.Context) {
	corsHeaders(c)
	var in application.CheckoutInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindErr(c, validation.First(err))
		return
	}
	url := h.Svc.Checkout(c.Request.Context(), c.Param("storeId"), in)
	response.OK(c, gin.H{"url": url})
}
