package router

import (
	"github.com/oksasatya/store-admin-api/internal/application"
	"github.com/oksasatya/store-admin-api/internal/container"
	pginfra "github.com/oksasatya/store-admin-api/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/store-admin-api/internal/interface/http"
	"github.com/oksasatya/store-admin-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	cfg := container.GetConfig()
	logger := container.GetLogger()

	storeRepo := pginfra.NewStoreRepository(pool)
	guard := application.NewStoreGuard(storeRepo)

	billboards := handlers.NewResourceHandler(
		application.NewBillboardService(pginfra.NewBillboardRepository(pool), guard), "BILLBOARDS", logger)
	categories := handlers.NewResourceHandler(
		application.NewCategoryService(pginfra.NewCategoryRepository(pool), guard), "CATEGORIES", logger)
	sizes := handlers.NewResourceHandler(
		application.NewSizeService(pginfra.NewSizeRepository(pool), guard), "SIZES", logger)
	colors := handlers.NewResourceHandler(
		application.NewColorService(pginfra.NewColorRepository(pool), guard), "COLORS", logger)

	productRepo := pginfra.NewProductRepository(pool)
	products := handlers.NewProductHandler(
		application.NewProductService(productRepo, guard, container.GetRedis(), cfg.ListingCacheTTL, container.GetES(), cfg.ESProductsIndex, logger),
		logger)

	orderRepo := pginfra.NewOrderRepository(pool)
	orders := handlers.NewOrderHandler(application.NewOrderService(orderRepo, guard), logger)

	checkout := handlers.NewCheckoutHandler(
		application.NewCheckoutService(productRepo, orderRepo, container.GetRabbitPub(), cfg.FrontendStoreURL, logger),
		logger)

	upload := handlers.NewUploadHandler(
		application.NewUploadService(guard, container.GetGCS(), cfg.GCSBucket),
		logger)

	stores := handlers.NewStoreHandler(application.NewStoreService(storeRepo), logger)

	r.Add(modules.NewCatalogModule(billboards, categories, sizes, colors, products, orders, upload))
	r.Add(modules.NewCheckoutModule(checkout))
	r.AddAdmin(modules.NewStoreModule(stores))
}
