package borrow_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kcls/circulation/gateway/config"
	"github.com/kcls/circulation/gateway/internal/circulation"
	"github.com/kcls/circulation/gateway/internal/model"
	"github.com/kcls/circulation/gateway/internal/service/borrow"
	"github.com/kcls/circulation/gateway/internal/service/provider"
)

type call struct {
	method, path, query, body string
}

func newService(t *testing.T, calls *[]call, reply map[string]string) *borrow.Service {
	t.Helper()
	var mu sync.Mutex
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		*calls = append(*calls, call{r.Method, r.URL.Path, r.URL.RawQuery, string(b)})
		mu.Unlock()
		_, _ = w.Write([]byte(reply[r.URL.Path]))
	}))
	t.Cleanup(srv.Close)
	client := provider.NewClient(zap.NewExample(), config.Backend{APIBase: srv.URL, Timeout: time.Second})
	return borrow.NewService(zap.NewExample(), client)
}

func TestService(t *testing.T) {
	var calls []call
	svc := newService(t, &calls, map[string]string{
		"/borrow": `[{"BorrowID":5,"BorrowerID":2,"ApprovalStatus":"Pending","ReturnDate":null,
			"items":[{"BorrowedItemID":9,"ItemType":"Book","BookCopyID":4}]}]`,
		"/borrow/5/due-date": `{"DueDate":"Wed, 20 Mar 2024 00:00:00 GMT"}`,
		"/return":            `{"message":"ok"}`,
	})
	ctx := context.Background()

	txs, code, err := svc.List(ctx, model.RoleLibrarian)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, []model.BorrowTransaction{{
		BorrowID:       5,
		BorrowerID:     2,
		ApprovalStatus: "Pending",
		Items:          []model.BorrowedItem{{BorrowedItemID: 9, ItemType: model.ItemBook, BookCopyID: 4}},
	}}, txs)

	due, _, err := svc.DueDate(ctx, 5)
	require.NoError(t, err)
	require.Equal(t, "Wed, 20 Mar 2024 00:00:00 GMT", due)

	_, err = svc.Approve(ctx, 5, model.RoleLibrarian)
	require.NoError(t, err)
	_, err = svc.Retrieved(ctx, 5, "")
	require.NoError(t, err)
	_, err = svc.Return(ctx, circulation.ReturnSubmission{
		BorrowID:   5,
		ReturnDate: "2024-03-10",
		Items:      []circulation.ReturnItem{{BorrowedItemID: 9, ReturnCondition: "Good", FinePaid: "No"}},
	})
	require.NoError(t, err)
	_, err = svc.Lost(ctx, circulation.LostSubmission{BorrowID: 5})
	require.NoError(t, err)

	require.Len(t, calls, 6)
	require.Equal(t, call{method: http.MethodGet, path: "/borrow", query: "role=librarian"}, calls[0])
	require.Equal(t, call{method: http.MethodPut, path: "/borrow/5/approve", query: "role=librarian"}, calls[2])
	require.Equal(t, call{method: http.MethodPut, path: "/borrow/5/retrieved"}, calls[3])
	require.Equal(t, http.MethodPost, calls[4].method)
	require.JSONEq(t,
		`{"borrowId":5,"returnDate":"2024-03-10","items":[{"borrowedItemId":9,"returnCondition":"Good","fine":0,"finePaid":"No"}]}`,
		calls[4].body)
	require.Equal(t, "/lost", calls[5].path)
	require.JSONEq(t, `{"borrowId":5,"items":null}`, calls[5].body)
}
