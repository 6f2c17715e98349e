package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/store-admin-api/internal/container"
	handlers "github.com/oksasatya/store-admin-api/internal/interface/http"
	"github.com/oksasatya/store-admin-api/internal/interface/middleware"
)

// CheckoutModule mounts the public storefront checkout. Anonymous traffic,
// tighter per-IP limit.
type CheckoutModule struct {
	Handler *handlers.CheckoutHandler
}

func NewCheckoutModule(h *handlers.CheckoutHandler) *CheckoutModule {
	return &CheckoutModule{Handler: h}
}

func (m *CheckoutModule) Register(rg *gin.RouterGroup) {
	store := rg.Group("/:storeId")
	store.Use(middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP()))
	m.Handler.Register(store)
}
