package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/store-admin-api/internal/container"
	handlers "github.com/oksasatya/store-admin-api/internal/interface/http"
	"github.com/oksasatya/store-admin-api/internal/interface/middleware"
)

// StoreModule mounts the tenant management routes at /admin/stores.
type StoreModule struct {
	Handler *handlers.StoreHandler
}

func NewStoreModule(h *handlers.StoreHandler) *StoreModule {
	return &StoreModule{Handler: h}
}

func (m *StoreModule) Register(rg *gin.RouterGroup) {
	grp := rg.Group("/")
	grp.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	m.Handler.Register(grp)
}
