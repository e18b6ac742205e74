package router

import (
	"github.com/gin-gonic/gin"
	"github.com/registry/backend/internal/interfaces/http/handler"
)

// Handlers bundles every HTTP handler the service exposes
type Handlers struct {
	NaturalPerson *handler.NaturalPersonHandler
	LegalEntity   *handler.LegalEntityHandler
	Good          *handler.GoodHandler
	Auth          *handler.AuthHandler
	Health        *handler.HealthHandler
}

// RouteOptions configures how the route table is mounted
type RouteOptions struct {
	BasePath string
	// Authenticate guards the registry routes and the per-user auth routes
	Authenticate gin.HandlerFunc
	// TokenRateLimit guards token issuance; nil disables it
	TokenRateLimit gin.HandlerFunc
}

// recordHandler is implemented by the handlers of every registry record kind
type recordHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// RecordRoutes builds the five CRUD routes of one record kind under prefix
func RecordRoutes(name, prefix string, h recordHandler, auth gin.HandlerFunc) *DomainGroup {
	g := NewDomainGroup(name, prefix)
	if auth != nil {
		g.Use(auth)
	}
	g.GET("/", h.List)
	g.POST("/", h.Create)
	g.GET("/:id/", h.Get)
	g.PUT("/:id/", h.Update)
	g.DELETE("/:id/", h.Delete)
	return g
}

// AuthRoutes builds the token endpoints. Issuing and refreshing tokens is
// public; logout and me need an authenticated caller.
func AuthRoutes(h *handler.AuthHandler, auth, rateLimit gin.HandlerFunc) *DomainGroup {
	g := NewDomainGroup("auth", "/auth")

	token := []gin.HandlerFunc{h.Token}
	if rateLimit != nil {
		token = append([]gin.HandlerFunc{rateLimit}, token...)
	}
	g.POST("/token/", token...)
	g.POST("/token/refresh/", h.Refresh)

	session := g.Group("auth-session", "")
	if auth != nil {
		session.Use(auth)
	}
	session.POST("/logout/", h.Logout)
	session.GET("/me/", h.Me)
	return g
}

// Mount registers the full route table on engine
func Mount(engine *gin.Engine, h Handlers, opts RouteOptions) *Router {
	if h.Health != nil {
		engine.GET("/health", h.Health.Health)
	}

	r := NewRouter(engine, WithBasePath(opts.BasePath))
	r.Register(RecordRoutes("physical-people", "/physical-people", h.NaturalPerson, opts.Authenticate))
	r.Register(RecordRoutes("legal-people", "/legal-people", h.LegalEntity, opts.Authenticate))
	r.Register(RecordRoutes("goods", "/goods", h.Good, opts.Authenticate))
	r.Register(AuthRoutes(h.Auth, opts.Authenticate, opts.TokenRateLimit))
	r.Setup()
	return r
}
