package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/store-admin-api/internal/application"
	"github.com/oksasatya/store-admin-api/internal/domain/repository"
	"github.com/oksasatya/store-admin-api/pkg/response"
	"github.com/oksasatya/store-admin-api/pkg/validation"
)

// ProductHandler is the product CRUD surface plus the search endpoint. It does
// not reuse ResourceHandler because listings accept query filters and
// mutations invalidate caches and the search index.
type ProductHandler struct {
	Svc    *application.ProductService
	Logger *logrus.Logger
}

func NewProductHandler(svc *application.ProductService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Logger: logger}
}

func (h *ProductHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/products", h.Create)
	rg.GET("/products", h.List)
	// gin cannot mix a static "search" segment with the :productId wildcard,
	// so search lives under its own prefix.
	rg.GET("/search/products", h.Search)
	rg.GET("/products/:productId", h.Get)
	rg.PATCH("/products/:productId", h.Update)
	rg.DELETE("/products/:productId", h.Delete)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var in application.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindErr(c, validation.First(err))
		return
	}
	out, err := h.Svc.Create(c.Request.Context(), userID(c), c.Param("storeId"), in)
	if err != nil {
		respondErr(c, h.Logger, "PRODUCTS_POST", err)
		return
	}
	response.OK(c, out)
}

func (h *ProductHandler) List(c *gin.Context) {
	f := repository.ProductFilter{
		CategoryID: c.Query("categoryId"),
		ColorID:    c.Query("colorId"),
		SizeID:     c.Query("sizeId"),
	}
	if v := c.Query("isFeatured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err == nil {
			f.Featured = &featured
		}
	}
	out, err := h.Svc.List(c.Request.Context(), c.Param("storeId"), f)
	if err != nil {
		respondErr(c, h.Logger, "PRODUCTS_GET", err)
		return
	}
	response.OK(c, out)
}

func (h *ProductHandler) Get(c *gin.Context) {
	out, err := h.Svc.Get(c.Request.Context(), c.Param("productId"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Null(c)
			return
		}
		respondErr(c, h.Logger, "PRODUCT_GET", err)
		return
	}
	response.OK(c, out)
}

func (h *ProductHandler) Update(c *gin.Context) {
	var in application.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindErr(c, validation.First(err))
		return
	}
	out, err := h.Svc.Update(c.Request.Context(), userID(c), c.Param("storeId"), c.Param("productId"), in)
	if err != nil {
		respondErr(c, h.Logger, "PRODUCT_PATCH", err)
		return
	}
	response.OK(c, out)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	n, err := h.Svc.Delete(c.Request.Context(), userID(c), c.Param("storeId"), c.Param("productId"))
	if err != nil {
		respondErr(c, h.Logger, "PRODUCT_DELETE", err)
		return
	}
	response.Count(c, n)
}

func (h *ProductHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		respondBindErr(c, "q is required")
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), c.Param("storeId"), q, size)
	if err != nil {
		respondErr(c, h.Logger, "PRODUCTS_SEARCH", err)
		return
	}
	response.OK(c, hits)
}
