package user

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/kcls/circulation/gateway/internal/model"
	"github.com/kcls/circulation/gateway/internal/service/provider"
)

type Service struct {
	log    *zap.Logger
	client *provider.Client
}

func NewService(log *zap.Logger, client *provider.Client) *Service {
	return &Service{
		log:    log.Named("user"),
		client: client,
	}
}

func (s *Service) Borrower(ctx context.Context, borrowerID int) (model.Borrower, int, error) {
	var b model.Borrower
	code, err := s.client.DoJSON(ctx, http.MethodGet, fmt.Sprintf("/users/borrower/%d", borrowerID), nil, nil, &b)
	return b, code, err
}

func (s *Service) Proxy(c echo.Context, path string) ([]byte, string, int, error) {
	return s.client.Proxy(c, path)
}
