package respond

import "net/http"

// HandlerFunc is the handler shape accepted by Wrap: the incoming request
// in, any convertible value out. Returning a non-nil error skips conversion
// entirely and propagates the error untouched; the returned value may be
// any shape ToResponse understands.
type HandlerFunc func(r *http.Request) (any, error)

// WrapOption configures a wrapped handler at registration time.
type WrapOption func(*adapter)

// WithErrorHandler replaces the default problem-details error writer for
// one wrapped handler.
func WithErrorHandler(h ErrorHandler) WrapOption {
	return func(a *adapter) {
		a.onError = h
	}
}

// Wrap adapts a HandlerFunc into an http.Handler. Per invocation the
// adapter calls the handler, converts its value via ToResponse, and writes
// the result back to net/http; any error from either step goes to
// the error handler unchanged. The adapter holds no mutable state, so one
// registration serves concurrent requests sharing only the handler itself.
func Wrap(h HandlerFunc, opts ...WrapOption) http.Handler {
	a := &adapter{handler: h, onError: writeError}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

type adapter struct {
	handler HandlerFunc
	onError ErrorHandler
}

func (a *adapter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	v, err := a.handler(r)
	if err != nil {
		a.onError(w, r, err)
		return
	}

	resp, err := ToResponse(v)
	if err != nil {
		a.onError(w, r, err)
		return
	}

	//nolint:errcheck,gosec // best-effort after WriteHeader
	resp.Write(w)
}
