package respond

import (
	"net/http"
	"strconv"
)

// Response is the single outbound response value every conversion produces:
// a status code, a header map, and a fully materialized body. net/http has
// no server-side response value of its own, so Response fills that role and
// hands itself to the ResponseWriter via Write.
type Response struct {
	status int
	header http.Header
	body   []byte
}

// NewResponse returns an empty-bodied response with the given status code.
func NewResponse(status int) *Response {
	return &Response{status: status, header: make(http.Header)}
}

// Status returns the response status code.
func (r *Response) Status() int { return r.status }

// SetStatus replaces the response status code.
func (r *Response) SetStatus(status int) { r.status = status }

// Header returns the response header map for direct mutation.
func (r *Response) Header() http.Header { return r.header }

// Body returns the response body bytes.
func (r *Response) Body() []byte { return r.body }

// SetBody replaces the response body.
func (r *Response) SetBody(body []byte) { r.body = body }

// Write transmits the response over the underlying ResponseWriter. Headers go
// first, then the status line, then the body; Content-Length is filled in
// unless already set.
func (r *Response) Write(w http.ResponseWriter) error {
	for name, values := range r.header {
		w.Header()[name] = values
	}
	if len(r.body) > 0 && w.Header().Get("Content-Length") == "" {
		w.Header().Set("Content-Length", strconv.Itoa(len(r.body)))
	}
	w.WriteHeader(r.status)
	if len(r.body) == 0 {
		return nil
	}
	_, err := w.Write(r.body)
	return err
}

// Respond returns the response unchanged, making *Response its own
// conversion (the identity law).
func (r *Response) Respond() (*Response, error) { return r, nil }
