package catalog

import (
	"context"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kcls/circulation/gateway/internal/model"
	"github.com/kcls/circulation/gateway/internal/service/provider"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Service struct {
	log    *zap.Logger
	client *provider.Client
}

func NewService(log *zap.Logger, client *provider.Client) *Service {
	return &Service{
		log:    log.Named("catalog"),
		client: client,
	}
}

// one is the inventory endpoints' habit of answering with either an object
// or a one-element list.
type one[T any] struct {
	v T
}

func (o *one[T]) UnmarshalJSON(b []byte) error {
	var list []T
	if err := json.Unmarshal(b, &list); err == nil {
		if len(list) > 0 {
			o.v = list[0]
		}
		return nil
	}
	return json.Unmarshal(b, &o.v)
}

func (s *Service) BookCopy(ctx context.Context, copyID int) (model.BookCopy, int, error) {
	var inv one[model.BookCopy]
	code, err := s.client.DoJSON(ctx, http.MethodGet, fmt.Sprintf("/books/inventory/copy/%d", copyID), nil, nil, &inv)
	if err != nil {
		return model.BookCopy{}, code, err
	}
	return inv.v, code, nil
}

func (s *Service) Book(ctx context.Context, bookID int) (model.Book, int, error) {
	var book model.Book
	code, err := s.client.DoJSON(ctx, http.MethodGet, fmt.Sprintf("/books/%d", bookID), nil, nil, &book)
	return book, code, err
}

func (s *Service) DocumentStorage(ctx context.Context, storageID int) (model.DocumentStorage, int, error) {
	var inv one[model.DocumentStorage]
	code, err := s.client.DoJSON(ctx, http.MethodGet, fmt.Sprintf("/documents/inventory/storage/%d", storageID), nil, nil, &inv)
	if err != nil {
		return model.DocumentStorage{}, code, err
	}
	return inv.v, code, nil
}

func (s *Service) Document(ctx context.Context, documentID int) (model.Document, int, error) {
	var doc model.Document
	code, err := s.client.DoJSON(ctx, http.MethodGet, fmt.Sprintf("/documents/%d", documentID), nil, nil, &doc)
	return doc, code, err
}

func (s *Service) Proxy(c echo.Context, path string) ([]byte, string, int, error) {
	return s.client.Proxy(c, path)
}
