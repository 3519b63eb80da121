// Package respond is a thin ergonomics layer over net/http response
// handling. Handlers return plain values — status codes, strings, byte
// slices, JSON/form payloads, a status paired with a body — and the
// package converts them into a single outbound Response type written back
// through net/http.
//
// Wrap adapts a value-returning handler into a standard http.Handler:
//
//	mux.Handle("GET /health", respond.Wrap(func(r *http.Request) (any, error) {
//	    return "ok", nil
//	}))
//
//	mux.Handle("GET /users/{id}", respond.Wrap(func(r *http.Request) (any, error) {
//	    u, ok := store.Get(r.PathValue("id"))
//	    if !ok {
//	        return respond.With(http.StatusNotFound, "user not found"), nil
//	    }
//	    return respond.JSON(u), nil
//	}))
//
// For responses that need headers or a non-200 status with a structured
// body, the Builder threads a single response through a chain of calls:
//
//	return respond.Status(http.StatusCreated).
//	    Header(header.Location("/users/" + u.ID)).
//	    JSON(u)
//
// Errors returned from a handler (or produced during conversion) propagate
// unchanged to the adapter's error handler, which writes an RFC 9457
// problem-details response by default. Errors implementing StatusCoder
// choose their own status code.
//
// Middleware uses the standard func(http.Handler) http.Handler signature,
// so the entire Go middleware ecosystem composes with wrapped handlers.
package respond
