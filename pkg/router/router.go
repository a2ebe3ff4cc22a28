package router

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lepetitglacon/moyenne-sub000/pkg/xcontext"
)

type HandlerFunc[Request, Response any] func(ctx context.Context, req *Request) (*Response, error)

// MiddlewareFunc runs before the handler. It can enrich the context, for
// example with the authenticated user, or abort the request by returning
// an error.
type MiddlewareFunc func(ctx context.Context, r *http.Request) (context.Context, error)

type Router struct {
	engine *gin.Engine
	inner  gin.IRouter

	// base carries the process-wide dependencies (database, configs,
	// logger, id generator) every request context is derived from.
	base   context.Context
	before []MiddlewareFunc
}

func New(ctx context.Context) *Router {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     xcontext.Configs(ctx).ApiServer.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	return &Router{engine: engine, inner: engine, base: ctx}
}

func (r *Router) Branch() *Router {
	return &Router{
		engine: r.engine,
		inner:  r.inner,
		base:   r.base,
		before: append([]MiddlewareFunc{}, r.before...),
	}
}

func (r *Router) Before(middleware MiddlewareFunc) {
	r.before = append(r.before, middleware)
}

func GET[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.inner.GET(pattern, wrapHandler(r, http.MethodGet, handler))
}

func POST[Request, Response any](r *Router, pattern string, handler HandlerFunc[Request, Response]) {
	r.inner.POST(pattern, wrapHandler(r, http.MethodPost, handler))
}

func (r *Router) Handler() http.Handler {
	return r.engine
}
