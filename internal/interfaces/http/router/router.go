package router

import (
	"github.com/gin-gonic/gin"
)

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router manages HTTP route registration. The API surface is small and
// unversioned: all routes mount at the engine root.
type Router struct {
	engine     *gin.Engine
	registrars []RouteRegistrar
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine) *Router {
	return &Router{
		engine:     engine,
		registrars: make([]RouteRegistrar, 0),
	}
}

// Register adds a RouteRegistrar to be registered later
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrar)
	return r
}

// RegisterWith adds a RouteRegistrar whose routes run behind the given
// middleware chain.
func (r *Router) RegisterWith(registrar RouteRegistrar, mw ...gin.HandlerFunc) *Router {
	r.registrars = append(r.registrars, &guarded{registrar: registrar, middleware: mw})
	return r
}

// Setup registers all routes with the engine
func (r *Router) Setup() {
	root := r.engine.Group("")
	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(root)
	}
}

type guarded struct {
	registrar  RouteRegistrar
	middleware []gin.HandlerFunc
}

func (g *guarded) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("", g.middleware...)
	g.registrar.RegisterRoutes(group)
}
