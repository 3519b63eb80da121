// Package respondtest provides helpers for exercising wrapped handlers in
// tests without a running server.
package respondtest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// Do executes a single request against the handler and returns the recorded
// result. The response body is fully buffered and safe to read.
func Do(t testing.TB, h http.Handler, method, target string, body io.Reader) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	resp := rec.Result()
	t.Cleanup(func() {
		if err := resp.Body.Close(); err != nil {
			t.Errorf("respondtest: close body: %v", err)
		}
	})
	return resp
}

// Get executes a GET request against the handler.
func Get(t testing.TB, h http.Handler, target string) *http.Response {
	t.Helper()
	return Do(t, h, http.MethodGet, target, nil)
}

// Body reads the full response body as a string.
func Body(t testing.TB, resp *http.Response) string {
	t.Helper()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("respondtest: read body: %v", err)
	}
	return string(b)
}

// DecodeJSON decodes the response body into T.
func DecodeJSON[T any](t testing.TB, resp *http.Response) T {
	t.Helper()

	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("respondtest: decode json body: %v", err)
	}
	return v
}
