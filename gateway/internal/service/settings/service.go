package settings

import (
	"context"
	"math"
	"net/http"

	"go.uber.org/zap"

	"github.com/kcls/circulation/gateway/internal/model"
	"github.com/kcls/circulation/gateway/internal/service/provider"
)

const (
	defaultBorrowLimit = 3

	SourceServer = "server"
	SourceConfig = "config"
)

type Service struct {
	log         *zap.Logger
	client      *provider.Client
	finePerDay  float64
	fromBackend bool
}

// NewService falls back to finePerDay whenever the backend settings are
// disabled, unreachable or invalid.
func NewService(log *zap.Logger, client *provider.Client, finePerDay float64, fromBackend bool) *Service {
	return &Service{
		log:         log.Named("settings"),
		client:      client,
		finePerDay:  finePerDay,
		fromBackend: fromBackend,
	}
}

func (s *Service) Get(ctx context.Context) model.Settings {
	fallback := model.Settings{
		Fine:        s.defaultFine(),
		BorrowLimit: defaultBorrowLimit,
		Source:      SourceConfig,
	}
	if !s.fromBackend || s.client == nil {
		return fallback
	}

	var raw struct {
		Fine        *float64 `json:"fine"`
		BorrowLimit *float64 `json:"borrow_limit"`
	}
	if _, err := s.client.DoJSON(ctx, http.MethodGet, "/system/settings", nil, nil, &raw); err != nil {
		s.log.Debug("system settings unavailable, using config", zap.Error(err))
		return fallback
	}
	return normalize(raw.Fine, raw.BorrowLimit, fallback)
}

func (s *Service) defaultFine() float64 {
	if s.finePerDay < 0 || math.IsNaN(s.finePerDay) {
		return 0
	}
	return s.finePerDay
}

func normalize(fine, borrowLimit *float64, fallback model.Settings) model.Settings {
	out := model.Settings{
		Fine:        fallback.Fine,
		BorrowLimit: fallback.BorrowLimit,
		Source:      SourceServer,
	}
	if fine != nil && *fine >= 0 && !math.IsInf(*fine, 0) {
		out.Fine = *fine
	}
	if borrowLimit != nil && *borrowLimit > 0 && !math.IsInf(*borrowLimit, 0) {
		out.BorrowLimit = int(math.Trunc(*borrowLimit))
	}
	return out
}
