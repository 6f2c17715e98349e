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

// ResourceHandler serves the shared CRUD surface for one catalog entity under
// /api/:storeId/<resource>. The payload shape is the entity itself; a missing
// record on GET answers 200 null so storefront fetches stay non-exceptional.
type ResourceHandler[In any, E any] struct {
	Svc    *application.ResourceService[In, E]
	Label  string
	Logger *logrus.Logger
}

func NewResourceHandler[In any, E any](svc *application.ResourceService[In, E], label string, logger *logrus.Logger) *ResourceHandler[In, E] {
	return &ResourceHandler[In, E]{Svc: svc, Label: label, Logger: logger}
}

func (h *ResourceHandler[In, E]) Register(rg *gin.RouterGroup, path, idParam string) {
	rg.POST("/"+path, h.Create)
	rg.GET("/"+path, h.List)
	rg.GET("/"+path+"/:"+idParam, h.Get(idParam))
	rg.PATCH("/"+path+"/:"+idParam, h.Update(idParam))
	rg.DELETE("/"+path+"/:"+idParam, h.Delete(idParam))
}

func (h *ResourceHandler[In, E]) Create(c *gin.Context) {
	var in In
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindErr(c, validation.First(err))
		return
	}
	out, err := h.Svc.Create(c.Request.Context(), userID(c), c.Param("storeId"), in)
	if err != nil {
		respondErr(c, h.Logger, h.Label+"_POST", err)
		return
	}
	response.OK(c, out)
}

func (h *ResourceHandler[In, E]) List(c *gin.Context) {
	out, err := h.Svc.List(c.Request.Context(), c.Param("storeId"))
	if err != nil {
		respondErr(c, h.Logger, h.Label+"_GET", err)
		return
	}
	response.OK(c, out)
}

func (h *ResourceHandler[In, E]) Get(idParam string) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := h.Svc.Get(c.Request.Context(), c.Param(idParam))
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				response.Null(c)
				return
			}
			respondErr(c, h.Logger, h.Label+"_GET", err)
			return
		}
		response.OK(c, out)
	}
}

func (h *ResourceHandler[In, E]) Update(idParam string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in In
		if err := c.ShouldBindJSON(&in); err != nil {
			respondBindErr(c, validation.First(err))
			return
		}
		out, err := h.Svc.Update(c.Request.Context(), userID(c), c.Param("storeId"), c.Param(idParam), in)
		if err != nil {
			respondErr(c, h.Logger, h.Label+"_PATCH", err)
			return
		}
		response.OK(c, out)
	}
}

func (h *ResourceHandler[In, E]) Delete(idParam string) gin.HandlerFunc {
	return func(c *gin.Context) {
		n, err := h.Svc.Delete(c.Request.Context(), userID(c), c.Param("storeId"), c.Param(idParam))
		if err != nil {
			respondErr(c, h.Logger, h.Label+"_DELETE", err)
			return
		}
		response.Count(c, n)
	}
}
