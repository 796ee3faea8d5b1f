package http

import (
	"errors"
	"strconv"

	"github.com/indigo-web/atto/http/status"
	"github.com/indigo-web/atto/http/version"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

const preallocRespHeaders = 4

type Header struct {
	Key, Value string
}

// Response is a mutable builder accumulating status and body state. A fresh
// instance is created for every connection; the single serialization entry
// point is Render
type Response struct {
	code    status.Code
	status  status.Status
	version version.Version
	headers []Header
	body    []byte
}

// NewResponse returns a new Response with the status code set to 200 OK
func NewResponse() *Response {
	return &Response{
		code:    status.OK,
		version: version.Default(),
		headers: make([]Header, 0, preallocRespHeaders),
	}
}

// Code sets a response code. The corresponding status text is looked up at
// serialization time, unless overridden via Status
func (r *Response) Code(code status.Code) *Response {
	r.code = code
	return r
}

// Status sets a custom status text. Clients ignore it almost universally,
// so there is rarely a reason to call this
func (r *Response) Status(text status.Status) *Response {
	r.status = text
	return r
}

// Header appends header values to a key
func (r *Response) Header(key string, values ...string) *Response {
	for i := range values {
		r.headers = append(r.headers, Header{Key: key, Value: values[i]})
	}

	return r
}

// String sets the response's body to the passed string
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to the passed slice WITHOUT copying it
func (r *Response) Bytes(body []byte) *Response {
	r.body = body
	return r
}

// Write implements io.Writer. It always returns n=len(b) and err=nil
func (r *Response) Write(b []byte) (n int, err error) {
	r.body = append(r.body, b...)
	return len(b), nil
}

// TryJSON serializes the model into the response body and sets the
// Content-Type header accordingly
func (r *Response) TryJSON(model any) (*Response, error) {
	r.body = r.body[:0]
	stream := json.ConfigDefault.BorrowStream(r)
	stream.WriteVal(model)
	err := stream.Flush()
	json.ConfigDefault.ReturnStream(stream)

	return r.Header("Content-Type", "application/json"), err
}

// JSON does the same as TryJSON does, except a possible error is implicitly
// consumed by Error
func (r *Response) JSON(model any) *Response {
	resp, err := r.TryJSON(model)
	if err != nil {
		return r.Error(err)
	}

	return resp
}

// Error sets the response code from the passed error. status.HTTPError
// carries its own code; any other error is treated as an internal one.
// Nil does nothing
func (r *Response) Error(err error, code ...status.Code) *Response {
	if err == nil {
		return r
	}

	var httpErr status.HTTPError
	if errors.As(err, &httpErr) {
		return r.Code(httpErr.Code).String(httpErr.Message)
	}

	c := status.InternalServerError
	if len(code) > 0 {
		c = code[0]
	}

	return r.Code(c).String(err.Error())
}

// StatusCode reports the currently set response code
func (r *Response) StatusCode() status.Code {
	return r.code
}

// Clear discards everything done with the Response object before
func (r *Response) Clear() *Response {
	r.code = status.OK
	r.status = ""
	r.version = version.Default()
	r.headers = r.headers[:0]
	r.body = nil
	return r
}

// Render serializes the response into its wire form: a status line, the
// accumulated headers, a Content-Length and the body
func (r *Response) Render() []byte {
	buff := make([]byte, 0, estimateResponseSize(r))
	buff = append(buff, r.version.String()...)
	buff = append(buff, ' ')
	buff = strconv.AppendUint(buff, uint64(r.code), 10)
	buff = append(buff, ' ')
	buff = append(buff, r.statusText()...)
	buff = crlf(buff)

	for _, header := range r.headers {
		buff = append(buff, header.Key...)
		buff = append(buff, ": "...)
		buff = append(buff, header.Value...)
		buff = crlf(buff)
	}

	buff = append(buff, "Content-Length: "...)
	buff = strconv.AppendInt(buff, int64(len(r.body)), 10)
	buff = crlf(buff)
	buff = crlf(buff)

	return append(buff, r.body...)
}

func (r *Response) statusText() status.Status {
	if len(r.status) > 0 {
		return r.status
	}

	if text := status.Text(r.code); len(text) > 0 {
		return text
	}

	return "Unknown Status Code"
}

func estimateResponseSize(r *Response) int {
	size := len("HTTP/1.1 200 Unknown Status Code\r\nContent-Length: 65536\r\n\r\n")
	size += len(r.body)

	for _, header := range r.headers {
		size += len(header.Key) + len(": \r\n") + len(header.Value)
	}

	return size
}

func crlf(buff []byte) []byte {
	return append(buff, '\r', '\n')
}
