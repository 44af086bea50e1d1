package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kcls/circulation/gateway/config"
	"github.com/kcls/circulation/gateway/internal/model"
	"github.com/kcls/circulation/gateway/internal/service/catalog"
	"github.com/kcls/circulation/gateway/internal/service/provider"
)

func TestService_inventory(t *testing.T) {
	replies := map[string]string{
		"/books/inventory/copy/4":        `[{"Copy_ID":4,"Book_ID":1,"Availability":"Borrowed"}]`,
		"/books/inventory/copy/5":        `[]`,
		"/books/1":                       `{"Book_ID":1,"Title":"Noli Me Tangere","Author":"Rizal"}`,
		"/documents/inventory/storage/7": `{"Storage_ID":7,"Document_ID":2}`,
		"/documents/2":                   `{"Document_ID":2,"Title":"Annual Report"}`,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := replies[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()
	svc := catalog.NewService(zap.NewExample(),
		provider.NewClient(zap.NewExample(), config.Backend{APIBase: srv.URL, Timeout: time.Second}))
	ctx := context.Background()

	cp, _, err := svc.BookCopy(ctx, 4)
	require.NoError(t, err)
	require.Equal(t, model.BookCopy{CopyID: 4, BookID: 1, Availability: "Borrowed"}, cp)

	cp, _, err = svc.BookCopy(ctx, 5)
	require.NoError(t, err)
	require.Zero(t, cp)

	book, _, err := svc.Book(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "Noli Me Tangere", book.Title)

	st, _, err := svc.DocumentStorage(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, 2, st.DocumentID)

	doc, _, err := svc.Document(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "Annual Report", doc.Title)

	_, code, err := svc.Document(ctx, 3)
	require.Error(t, err)
	require.Equal(t, http.StatusNotFound, code)
}
