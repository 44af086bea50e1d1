package provider_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kcls/circulation/gateway/config"
	"github.com/kcls/circulation/gateway/internal/errs"
	"github.com/kcls/circulation/gateway/internal/service/provider"
)

func newClient(t *testing.T, h http.HandlerFunc) *provider.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return provider.NewClient(zap.NewExample(), config.Backend{
		APIBase: srv.URL + "/api/",
		Timeout: time.Second,
	})
}

func TestClient_DoJSON(t *testing.T) {
	t.Parallel()
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/ok":
			require.Equal(t, "librarian", r.URL.Query().Get("role"))
			body, _ := io.ReadAll(r.Body)
			require.JSONEq(t, `{"borrowId":3}`, string(body))
			require.Equal(t, echo.MIMEApplicationJSONCharsetUTF8, r.Header.Get(echo.HeaderContentType))
			_, _ = w.Write([]byte(`{"DueDate":"2024-03-20"}`))
		case "/api/missing":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Borrow not found"}`))
		case "/api/bad":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"role is required"}`))
		case "/api/boom":
			w.WriteHeader(http.StatusInternalServerError)
		case "/api/garbage":
			_, _ = w.Write([]byte(`<html>`))
		}
	})
	ctx := context.Background()

	var out struct{ DueDate string }
	code, err := c.DoJSON(ctx, http.MethodPost, "/ok", url.Values{"role": {"librarian"}}, map[string]int{"borrowId": 3}, &out)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "2024-03-20", out.DueDate)

	code, err = c.DoJSON(ctx, http.MethodGet, "/missing", nil, nil, &out)
	require.Equal(t, http.StatusNotFound, code)
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.EqualError(t, err, "Borrow not found: not found")

	code, err = c.DoJSON(ctx, http.MethodGet, "/bad", nil, nil, nil)
	require.Equal(t, http.StatusBadRequest, code)
	var be *errs.BackendError
	require.True(t, errors.As(err, &be))
	require.Equal(t, "role is required", be.Message)

	code, err = c.DoJSON(ctx, http.MethodGet, "/boom", nil, nil, nil)
	require.Equal(t, http.StatusInternalServerError, code)
	require.EqualError(t, err, "kcls backend: Internal Server Error")

	code, err = c.DoJSON(ctx, http.MethodGet, "/garbage", nil, nil, &out)
	require.Equal(t, http.StatusBadGateway, code)
	require.Error(t, err)
}

func TestClient_Unavailable(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := provider.NewClient(zap.NewExample(), config.Backend{APIBase: base, Timeout: time.Second})
	code, err := c.DoJSON(context.Background(), http.MethodGet, "/borrow", nil, nil, nil)
	require.Equal(t, http.StatusServiceUnavailable, code)
	require.ErrorIs(t, err, errs.ErrUnavailable)
}

func TestClient_Proxy(t *testing.T) {
	t.Parallel()
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/documents/upload", r.URL.Path)
		require.Equal(t, "1", r.URL.Query().Get("draft"))
		require.Equal(t, "Bearer x", r.Header.Get(echo.HeaderAuthorization))
		body, _ := io.ReadAll(r.Body)
		require.Equal(t, "payload", string(body))
		w.Header().Set(echo.HeaderContentType, echo.MIMETextPlain)
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("duplicate"))
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/upload?draft=1", strings.NewReader("payload"))
	req.Header.Set(echo.HeaderAuthorization, "Bearer x")
	ctx := e.NewContext(req, httptest.NewRecorder())

	data, ct, code, err := c.Proxy(ctx, "/documents/upload")
	require.NoError(t, err)
	require.Equal(t, http.StatusConflict, code)
	require.Equal(t, echo.MIMETextPlain, ct)
	require.Equal(t, "duplicate", string(data))
}
