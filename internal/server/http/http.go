package http

import (
	"log"

	"github.com/indigo-web/atto/http"
	"github.com/indigo-web/atto/http/status"
	"github.com/indigo-web/atto/internal/parser/http1"
	"github.com/indigo-web/atto/router"
)

// Server turns one fully-buffered inbound message into one fully-serialized
// outbound message. Whatever happens along the way, a response is produced:
// a parse failure becomes a client error response, a handler panic becomes
// a server error response
type Server struct {
	router router.Router
}

func NewServer(r router.Router) *Server {
	return &Server{router: r}
}

// Dispatch parses the request-line out of raw, routes the request and
// returns the serialized response. The returned slice is never empty
func (s *Server) Dispatch(raw []byte) []byte {
	response := http.NewResponse()

	line, rest, err := http1.Parse(raw)
	if err != nil {
		s.router.OnError(http.NewRequest(http.NewRequestLine(), nil), response, err)
		return response.Render()
	}

	request := http.NewRequest(line, rest)
	s.invoke(request, response)

	return response.Render()
}

func (s *Server) invoke(request *http.Request, response *http.Response) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("atto: panic in handler for %s: %v", request.URI(), p)
			response.Clear().Error(status.ErrInternalServerError)
		}
	}()

	s.router.OnRequest(request, response)
}
