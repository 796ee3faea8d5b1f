package inbuilt

import (
	"sync/atomic"

	"github.com/indigo-web/atto/http"
	"github.com/indigo-web/atto/http/method"
	"github.com/indigo-web/atto/http/status"
	"github.com/indigo-web/atto/router"
	"github.com/indigo-web/atto/router/inbuilt/rmap"
)

// Routes is a routing configuration under construction. It is not safe for
// lookups by itself; a complete configuration is published via Router.Install
type Routes struct {
	m *rmap.Map
}

func NewRoutes() *Routes {
	return &Routes{m: rmap.New()}
}

// Route registers a handler for an exact (method, path) pair
func (r *Routes) Route(m method.Method, path string, handler router.Handler) *Routes {
	r.m.Add(path, m, handler)
	return r
}

func (r *Routes) Get(path string, handler router.Handler) *Routes {
	return r.Route(method.GET, path, handler)
}

func (r *Routes) Post(path string, handler router.Handler) *Routes {
	return r.Route(method.POST, path, handler)
}

func (r *Routes) Put(path string, handler router.Handler) *Routes {
	return r.Route(method.PUT, path, handler)
}

func (r *Routes) Delete(path string, handler router.Handler) *Routes {
	return r.Route(method.DELETE, path, handler)
}

func (r *Routes) Options(path string, handler router.Handler) *Routes {
	return r.Route(method.OPTIONS, path, handler)
}

func (r *Routes) Head(path string, handler router.Handler) *Routes {
	return r.Route(method.HEAD, path, handler)
}

func (r *Routes) Trace(path string, handler router.Handler) *Routes {
	return r.Route(method.TRACE, path, handler)
}

func (r *Routes) Connect(path string, handler router.Handler) *Routes {
	return r.Route(method.CONNECT, path, handler)
}

// Router is a built-in implementation of the router.Router interface: a flat
// (method, path) table with exact-match lookups and atomically installable
// configurations
type Router struct {
	table atomic.Pointer[rmap.Map]
}

func New() *Router {
	r := new(Router)
	r.Install(NewRoutes())

	return r
}

// Install atomically replaces the whole routing configuration. Lookups
// running concurrently observe either the previous or the new table in
// its entirety, never a mix of both
func (r *Router) Install(routes *Routes) *Router {
	r.table.Store(routes.m)
	return r
}

func (r *Router) OnRequest(request *http.Request, response *http.Response) {
	methods, allow, ok := r.table.Load().Get(request.URI().String())
	if !ok {
		response.Error(status.ErrNotFound)
		return
	}

	handler := methods[request.Method()]
	if handler == nil {
		response.Header("Allow", allow).Error(status.ErrMethodNotAllowed)
		return
	}

	handler(request, response)
}

func (r *Router) OnError(_ *http.Request, response *http.Response, err error) {
	response.Error(err)
}
