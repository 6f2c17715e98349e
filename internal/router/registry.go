package router

import "github.com/gin-gonic/gin"

// Registry collects feature modules and mounts them on the engine.
// Storefront-facing resources live under /api/:storeId; tenant management
// lives under /admin. The split is forced by gin's routing tree, which
// rejects a static segment and a wildcard at the same position.
type Registry struct {
	Engine       *gin.Engine
	API          *gin.RouterGroup
	Admin        *gin.RouterGroup
	middlewares  []gin.HandlerFunc
	modules      []Module
	adminModules []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{
		Engine: engine,
		API:    engine.Group("/api"),
		Admin:  engine.Group("/admin"),
	}
}

func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

func (r *Registry) AddAdmin(mod Module) {
	r.adminModules = append(r.adminModules, mod)
}

func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.API.Use(r.middlewares...)
		r.Admin.Use(r.middlewares...)
	}
	for _, m := range r.modules {
		m.Register(r.API)
	}
	for _, m := range r.adminModules {
		m.Register(r.Admin)
	}
}
