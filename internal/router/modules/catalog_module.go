package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/store-admin-api/internal/application"
	"github.com/oksasatya/store-admin-api/internal/container"
	"github.com/oksasatya/store-admin-api/internal/domain/entity"
	handlers "github.com/oksasatya/store-admin-api/internal/interface/http"
	"github.com/oksasatya/store-admin-api/internal/interface/middleware"
)

// CatalogModule mounts every per-store resource under /api/:storeId.
// Reads serve both the dashboard and the storefront, so they get a generous
// per-IP limit; writes are limited per user.
type CatalogModule struct {
	Billboards *handlers.ResourceHandler[application.BillboardInput, entity.Billboard]
	Categories *handlers.ResourceHandler[application.CategoryInput, entity.Category]
	Sizes      *handlers.ResourceHandler[application.SizeInput, entity.Size]
	Colors     *handlers.ResourceHandler[application.ColorInput, entity.Color]
	Products   *handlers.ProductHandler
	Orders     *handlers.OrderHandler
	Upload     *handlers.UploadHandler
}

func NewCatalogModule(
	billboards *handlers.ResourceHandler[application.BillboardInput, entity.Billboard],
	categories *handlers.ResourceHandler[application.CategoryInput, entity.Category],
	sizes *handlers.ResourceHandler[application.SizeInput, entity.Size],
	colors *handlers.ResourceHandler[application.ColorInput, entity.Color],
	products *handlers.ProductHandler,
	orders *handlers.OrderHandler,
	upload *handlers.UploadHandler,
) *CatalogModule {
	return &CatalogModule{
		Billboards: billboards,
		Categories: categories,
		Sizes:      sizes,
		Colors:     colors,
		Products:   products,
		Orders:     orders,
		Upload:     upload,
	}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	store := rg.Group("/:storeId")
	store.Use(
		middleware.RateLimit(container.GetRedis(), 600, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP()),
		middleware.RateLimit(container.GetRedis(), 240, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()),
	)

	m.Billboards.Register(store, "billboards", "billboardId")
	m.Categories.Register(store, "categories", "categoryId")
	m.Sizes.Register(store, "sizes", "sizeId")
	m.Colors.Register(store, "colors", "colorId")
	m.Products.Register(store)
	m.Orders.Register(store)
	m.Upload.Register(store)
}
