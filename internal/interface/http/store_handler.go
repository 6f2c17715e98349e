package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/store-admin-api/internal/application"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
	"github.com/oksasatya/store-admin-api/pkg/response"
	"github.com/oksasatya/store-admin-api/pkg/validation"
)

type StoreHandler struct {
	Svc    *application.StoreService
	Logger *logrus.Logger
}

func NewStoreHandler(svc *application.StoreService, logger *logrus.Logger) *StoreHandler {
	return &StoreHandler{Svc: svc, Logger: logger}
}

func (h *StoreHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/stores", h.Create)
	rg.GET("/stores", h.List)
	rg.GET("/stores/:storeId", h.Get)
	rg.PATCH("/stores/:storeId", h.Update)
	rg.DELETE("/stores/:storeId", h.Delete)
}

func (h *StoreHandler) Create(c *gin.Context) {
	var in application.StoreInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindErr(c, validation.First(err))
		return
	}
	out, err := h.Svc.Create(c.Request.Context(), userID(c), in)
	if err != nil {
		respondErr(c, h.Logger, "STORES_POST", err)
		return
	}
	response.OK(c, out)
}

func (h *StoreHandler) List(c *gin.Context) {
	out, err := h.Svc.List(c.Request.Context(), userID(c))
	if err != nil {
		respondErr(c, h.Logger, "STORES_GET", err)
		return
	}
	response.OK(c, out)
}

func (h *StoreHandler) Get(c *gin.Context) {
	out, err := h.Svc.Get(c.Request.Context(), userID(c), c.Param("storeId"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Null(c)
			return
		}
		respondErr(c, h.Logger, "STORE_GET", err)
		return
	}
	response.OK(c, out)
}

func (h *StoreHandler) Update(c *gin.Context) {
	var in application.StoreInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindErr(c, validation.First(err))
		return
	}
	out, err := h.Svc.Update(c.Request.Context(), userID(c), c.Param("storeId"), in)
	if err != nil {
		respondErr(c, h.Logger, "STORE_PATCH", err)
		return
	}
	response.OK(c, out)
}

func (h *StoreHandler) Delete(c *gin.Context) {
	n, err := h.Svc.Delete(c.Request.Context(), userID(c), c.Param("storeId"))
	if err != nil {
		respondErr(c, h.Logger, "STORE_DELETE", err)
		return
	}
	response.Count(c, n)
}
