package atto

import (
	"log"
	"net"

	"github.com/indigo-web/atto/config"
	httpserver "github.com/indigo-web/atto/internal/server/http"
	"github.com/indigo-web/atto/internal/server/tcp"
	"github.com/indigo-web/atto/router"
	"github.com/indigo-web/atto/router/inbuilt"
)

// App glues the transport, the dispatch pipeline and a router together.
// The server is intentionally minimal: one request-line, one response,
// one connection lifecycle
type App struct {
	addr    string
	cfg     *config.Config
	onStart func()
	server  *tcp.Server
}

// New returns a new App instance listening on addr once served
func New(addr string) *App {
	return &App{
		addr: addr,
		cfg:  config.Default(),
	}
}

// Tune replaces the default config. Zero fields are filled with defaults
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = config.Fill(cfg)
	return a
}

// NotifyOnStart calls the callback at the moment the server is about to
// accept connections
func (a *App) NotifyOnStart(cb func()) *App {
	a.onStart = cb
	return a
}

// Serve starts the server. If nil is passed instead of a router, an empty
// inbuilt one is used, leaving every request not found
func (a *App) Serve(r router.Router) error {
	if r == nil {
		r = inbuilt.New()
	}

	sock, err := net.Listen("tcp", a.addr)
	if err != nil {
		return err
	}

	pipeline := httpserver.NewServer(r)
	a.server = tcp.NewServer(sock, func(conn net.Conn) {
		c := tcp.NewConn(conn, a.cfg.NET.ReadBufferSize, a.cfg.NET.ReadTimeout)
		_ = c.Serve(pipeline.Dispatch)
	})

	if a.onStart != nil {
		a.onStart()
	} else {
		log.Printf("atto: server started on %s", sock.Addr())
	}

	return a.server.Start()
}

// Stop shuts the listener and all the active connections down.
//
// NOTE: the call isn't blocking
func (a *App) Stop() {
	if a.server != nil {
		_ = a.server.Stop()
	}
}
