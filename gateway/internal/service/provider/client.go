package provider

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/kcls/circulation/gateway/config"
	"github.com/kcls/circulation/gateway/internal/errs"
	"github.com/kcls/circulation/pkg/circuit_breaker"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client talks to the KCLS backend. Every call waits on a shared limiter and
// goes through a circuit breaker that only counts transport errors and 5xx.
type Client struct {
	log     *zap.Logger
	client  *http.Client
	base    string
	limiter *rate.Limiter
	cb      circuit_breaker.CircuitBreaker
}

func NewClient(log *zap.Logger, cfg config.Backend) *Client {
	limit := rate.Inf
	if cfg.RPS > 0 {
		limit = rate.Limit(cfg.RPS)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &Client{
		log:     log.Named("kcls"),
		client:  &http.Client{Timeout: timeout},
		base:    strings.TrimRight(cfg.APIBase, "/"),
		limiter: rate.NewLimiter(limit, burst),
		cb:      circuit_breaker.New(100, 5*time.Second, 0.5, 2),
	}
}

func (c *Client) URL(path string, query url.Values) string {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// DoJSON sends body as json (when non-nil) and decodes a 2xx answer into out
// (when non-nil). The returned status is meant for the gateway's own reply.
func (c *Client) DoJSON(ctx context.Context, method, path string, query url.Values, body, out any) (int, error) {
	var rd io.Reader = http.NoBody
	if body != nil {
		b := bytes.NewBuffer(nil)
		if err := json.NewEncoder(b).Encode(body); err != nil {
			return http.StatusBadRequest, err
		}
		rd = b
	}
	req, err := http.NewRequestWithContext(ctx, method, c.URL(path, query), rd)
	if err != nil {
		return http.StatusBadRequest, err
	}
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
	}

	data, code, err := c.do(req)
	if err != nil {
		return code, err
	}
	if out != nil && len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return http.StatusBadGateway, errors.Wrapf(err, "decode %s %s", method, path)
		}
	}
	return code, nil
}

// Proxy forwards the current request to the same path on the backend and
// returns the raw answer.
func (c *Client) Proxy(ctx echo.Context, path string) (data []byte, contentType string, statusCode int, err error) {
	r := ctx.Request()
	req, err := http.NewRequestWithContext(r.Context(), r.Method, c.URL(path, r.URL.Query()), r.Body)
	if err != nil {
		return nil, "", http.StatusBadRequest, err
	}
	for _, h := range []string{echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization} {
		if v := r.Header.Get(h); v != "" {
			req.Header.Set(h, v)
		}
	}
	req.ContentLength = r.ContentLength

	var ct string
	data, statusCode, err = c.doRaw(req, &ct)
	return data, ct, statusCode, err
}

func (c *Client) do(req *http.Request) ([]byte, int, error) {
	data, code, err := c.doRaw(req, nil)
	if err != nil {
		return nil, code, err
	}
	if code >= http.StatusBadRequest {
		return nil, code, backendError(code, data)
	}
	return data, code, nil
}

func (c *Client) doRaw(req *http.Request, contentType *string) ([]byte, int, error) {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return nil, http.StatusServiceUnavailable, err
	}
	var (
		data []byte
		code int
	)
	err := c.cb.Call(func() error {
		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		code = resp.StatusCode
		if contentType != nil {
			*contentType = resp.Header.Get(echo.HeaderContentType)
		}
		if code >= http.StatusInternalServerError {
			return backendError(code, data)
		}
		return nil
	})
	if err != nil {
		var be *errs.BackendError
		if errors.As(err, &be) {
			return data, be.Status, err
		}
		c.log.Warn("backend call failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Error(err))
		if errors.Is(err, circuit_breaker.ErrOpen) {
			return nil, http.StatusServiceUnavailable, errs.ErrUnavailable
		}
		return nil, http.StatusServiceUnavailable, errors.Wrap(errs.ErrUnavailable, err.Error())
	}
	return data, code, nil
}

func backendError(code int, data []byte) error {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(data, &body) //nolint:errcheck
	msg := body.Error
	if msg == "" {
		msg = body.Message
	}
	if msg == "" {
		msg = http.StatusText(code)
	}
	if code == http.StatusNotFound {
		return errors.Wrap(errs.ErrNotFound, msg)
	}
	return &errs.BackendError{Status: code, Message: msg}
}
