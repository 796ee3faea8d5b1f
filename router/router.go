package router

import (
	"github.com/indigo-web/atto/http"
)

// Handler mutates the response it is given, based on the request
type Handler func(*http.Request, *http.Response)

// Router resolves a parsed request into response mutations. OnError is
// called instead of OnRequest whenever the request never made it through
// parsing
type Router interface {
	OnRequest(request *http.Request, response *http.Response)
	OnError(request *http.Request, response *http.Response, err error)
}
