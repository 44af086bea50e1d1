package audit

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/kcls/circulation/gateway/internal/model"
	"github.com/kcls/circulation/gateway/internal/service/provider"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

type Service struct {
	log    *zap.Logger
	client *provider.Client
}

func NewService(log *zap.Logger, client *provider.Client) *Service {
	return &Service{
		log:    log.Named("audit"),
		client: client,
	}
}

// Log records an entry and returns the backend's audit id.
func (s *Service) Log(ctx context.Context, entry model.AuditEntry) (int, int, error) {
	var resp struct {
		AuditID int `json:"auditId"`
	}
	code, err := s.client.DoJSON(ctx, http.MethodPost, "/audit", nil, entry, &resp)
	if err != nil {
		return 0, code, err
	}
	return resp.AuditID, code, nil
}

func (s *Service) List(ctx context.Context, f model.AuditFilter) ([]model.AuditRecord, int, error) {
	var rows []model.AuditRecord
	code, err := s.client.DoJSON(ctx, http.MethodGet, "/audit", filterQuery(f), nil, &rows)
	if err != nil {
		return nil, code, err
	}
	return rows, code, nil
}

func filterQuery(f model.AuditFilter) url.Values {
	q := url.Values{}
	set := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	set("userId", f.UserID)
	set("action", f.Action)
	set("targetType", f.TargetType)
	set("targetId", f.TargetID)
	set("from", f.From)
	set("to", f.To)

	limit := f.Limit
	switch {
	case limit <= 0:
		limit = defaultLimit
	case limit > maxLimit:
		limit = maxLimit
	}
	q.Set("limit", strconv.Itoa(limit))
	return q
}
