package respond_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/respond"
	"github.com/bjaus/respond/respondtest"
)

func TestWrap_statusWithBody(t *testing.T) {
	t.Parallel()

	h := respond.Wrap(func(_ *http.Request) (any, error) {
		return respond.With(http.StatusNotFound, "missing"), nil
	})

	resp := respondtest.Get(t, h, "/things/9")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "missing", respondtest.Body(t, resp))
}

func TestWrap_json(t *testing.T) {
	t.Parallel()

	h := respond.Wrap(func(_ *http.Request) (any, error) {
		return respond.JSON(map[string]int{"id": 1}), nil
	})

	resp := respondtest.Get(t, h, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"id":1}`, respondtest.Body(t, resp))
}

func TestWrap_fallibleStatusCode(t *testing.T) {
	t.Parallel()

	h := respond.Wrap(func(_ *http.Request) (any, error) {
		return http.StatusCreated, nil
	})

	resp := respondtest.Get(t, h, "/")
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Empty(t, respondtest.Body(t, resp))
}

func TestWrap_readsRequest(t *testing.T) {
	t.Parallel()

	h := respond.Wrap(func(r *http.Request) (any, error) {
		return "hello " + r.URL.Query().Get("name"), nil
	})

	resp := respondtest.Get(t, h, "/greet?name=gopher")
	assert.Equal(t, "hello gopher", respondtest.Body(t, resp))
}

func TestWrap_handlerErrorSkipsConversion(t *testing.T) {
	t.Parallel()

	h := respond.Wrap(func(_ *http.Request) (any, error) {
		// The value must be ignored when the error is non-nil.
		return respond.JSON(map[string]string{"never": "sent"}), respond.Error(http.StatusForbidden, "nope")
	})

	resp := respondtest.Get(t, h, "/")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))

	problem := respondtest.DecodeJSON[respond.ProblemDetail](t, resp)
	assert.Equal(t, http.StatusForbidden, problem.Status)
	assert.Equal(t, "nope", problem.Detail)
}

func TestWrap_plainErrorIs500(t *testing.T) {
	t.Parallel()

	h := respond.Wrap(func(_ *http.Request) (any, error) {
		return nil, assert.AnError
	})

	resp := respondtest.Get(t, h, "/")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestWrap_conversionErrorPropagates(t *testing.T) {
	t.Parallel()

	h := respond.Wrap(func(_ *http.Request) (any, error) {
		return respond.JSON(make(chan int)), nil
	})

	resp := respondtest.Get(t, h, "/")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get("Content-Type"))
}

func TestWrap_customErrorHandler(t *testing.T) {
	t.Parallel()

	h := respond.Wrap(
		func(_ *http.Request) (any, error) {
			return nil, respond.Error(http.StatusBadGateway, "upstream down")
		},
		respond.WithErrorHandler(func(w http.ResponseWriter, _ *http.Request, err error) {
			w.WriteHeader(respond.ErrorStatus(err))
			_, _ = w.Write([]byte("custom: " + err.Error()))
		}),
	)

	resp := respondtest.Get(t, h, "/")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "custom: upstream down", respondtest.Body(t, resp))
}

func TestWrap_concurrentInvocations(t *testing.T) {
	t.Parallel()

	h := respond.Wrap(func(r *http.Request) (any, error) {
		return respond.JSON(map[string]string{"path": r.URL.Path}), nil
	})

	var wg sync.WaitGroup
	for range 25 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			req := httptest.NewRequest(http.MethodGet, "/concurrent", nil)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"path":"/concurrent"}`, rec.Body.String())
		}()
	}
	wg.Wait()
}

func TestWrap_endToEndServer(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.Handle("GET /ok", respond.Wrap(func(_ *http.Request) (any, error) {
		return "Hello World", nil
	}))
	mux.Handle("GET /made", respond.Wrap(func(_ *http.Request) (any, error) {
		return http.StatusCreated, nil
	}))

	srv := httptest.NewServer(mux)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/ok")
	require.NoError(t, err)
	defer func() { require.NoError(t, resp.Body.Close()) }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp2, err := http.Get(srv.URL + "/made")
	require.NoError(t, err)
	defer func() { require.NoError(t, resp2.Body.Close()) }()
	assert.Equal(t, http.StatusCreated, resp2.StatusCode)
}
