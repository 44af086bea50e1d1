package audit_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kcls/circulation/gateway/config"
	"github.com/kcls/circulation/gateway/internal/model"
	"github.com/kcls/circulation/gateway/internal/service/audit"
	"github.com/kcls/circulation/gateway/internal/service/provider"
)

func TestService_Log(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/audit", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		require.JSONEq(t,
			`{"actionCode":"BORROW_APPROVE","targetType":"Borrow","targetId":4,"details":"{\"role\":\"librarian\"}","userId":"42"}`,
			string(body))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"auditId":77}`))
	}))
	defer srv.Close()
	svc := audit.NewService(zap.NewExample(),
		provider.NewClient(zap.NewExample(), config.Backend{APIBase: srv.URL, Timeout: time.Second}))

	id, code, err := svc.Log(context.Background(), model.AuditEntry{
		ActionCode: "BORROW_APPROVE",
		TargetType: "Borrow",
		TargetID:   4,
		Details:    `{"role":"librarian"}`,
		UserID:     "42",
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, code)
	require.Equal(t, 77, id)
}
