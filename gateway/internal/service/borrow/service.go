package borrow

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/kcls/circulation/gateway/internal/circulation"
	"github.com/kcls/circulation/gateway/internal/model"
	"github.com/kcls/circulation/gateway/internal/service/provider"
)

type Service struct {
	log    *zap.Logger
	client *provider.Client
}

func NewService(log *zap.Logger, client *provider.Client) *Service {
	return &Service{
		log:    log.Named("borrow"),
		client: client,
	}
}

func roleQuery(role model.Role) url.Values {
	if role == "" {
		return nil
	}
	return url.Values{"role": []string{string(role)}}
}

func (s *Service) List(ctx context.Context, role model.Role) ([]model.BorrowTransaction, int, error) {
	var txs []model.BorrowTransaction
	code, err := s.client.DoJSON(ctx, http.MethodGet, "/borrow", roleQuery(role), nil, &txs)
	if err != nil {
		return nil, code, err
	}
	return txs, code, nil
}

func (s *Service) DueDate(ctx context.Context, borrowID int) (string, int, error) {
	var due model.DueDate
	code, err := s.client.DoJSON(ctx, http.MethodGet, fmt.Sprintf("/borrow/%d/due-date", borrowID), nil, nil, &due)
	if err != nil {
		return "", code, err
	}
	return due.DueDate, code, nil
}

func (s *Service) Approve(ctx context.Context, borrowID int, role model.Role) (int, error) {
	return s.transition(ctx, borrowID, "approve", role)
}

func (s *Service) Reject(ctx context.Context, borrowID int, role model.Role) (int, error) {
	return s.transition(ctx, borrowID, "reject", role)
}

func (s *Service) Retrieved(ctx context.Context, borrowID int, role model.Role) (int, error) {
	return s.transition(ctx, borrowID, "retrieved", role)
}

func (s *Service) transition(ctx context.Context, borrowID int, action string, role model.Role) (int, error) {
	return s.client.DoJSON(ctx, http.MethodPut, fmt.Sprintf("/borrow/%d/%s", borrowID, action), roleQuery(role), nil, nil)
}

func (s *Service) Return(ctx context.Context, sub circulation.ReturnSubmission) (int, error) {
	return s.client.DoJSON(ctx, http.MethodPost, "/return", nil, sub, nil)
}

func (s *Service) Lost(ctx context.Context, sub circulation.LostSubmission) (int, error) {
	return s.client.DoJSON(ctx, http.MethodPost, "/lost", nil, sub, nil)
}
