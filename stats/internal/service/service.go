package service

import (
	"context"
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/kcls/circulation/pkg/kafka"
	"github.com/kcls/circulation/stats/internal/errs"
	"github.com/kcls/circulation/stats/internal/model"
	statsRepo "github.com/kcls/circulation/stats/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo statsRepo.Repository
}

func NewService(repo statsRepo.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log.Named("service"),
		repo: repo,
	}
}

// GetStats sums events per action within p.
func (s *Service) GetStats(ctx context.Context, p model.Period) (model.Summary, error) {
	if p.From != nil && p.To != nil && p.From.After(*p.To) {
		return model.Summary{}, errs.ErrRange
	}
	actions, err := s.repo.GetStats(ctx, p)
	if err != nil {
		return model.Summary{}, err
	}
	sum := model.Summary{From: p.From, To: p.To, Actions: actions}
	if sum.Actions == nil {
		sum.Actions = []model.ActionStats{}
	}
	for _, a := range actions {
		sum.Events += a.Events
		// fines are assessed once, on the return or lost event
		if a.Action == string(kafka.ActionReturn) || a.Action == string(kafka.ActionLost) {
			sum.FineAssessed += a.FineTotal
			sum.FinePaid += a.FinePaid
		}
	}
	sum.FineAssessed = cents(sum.FineAssessed)
	sum.FinePaid = cents(sum.FinePaid)
	sum.FineUnpaid = cents(sum.FineAssessed - sum.FinePaid)
	return sum, nil
}

// Record is used by the kafka consumer. Invalid and duplicate events are
// dropped without error so the offset moves on.
func (s *Service) Record(ctx context.Context, event kafka.EventCirculation) error {
	if err := event.Validate(); err != nil {
		s.log.Warn("drop event", zap.Error(err))
		return nil
	}
	if err := s.repo.SaveEvent(ctx, event); err != nil {
		if errors.Is(err, errs.ErrDuplicate) {
			s.log.Debug("duplicate event", zap.String("eventId", event.EventID))
			return nil
		}
		return err
	}
	return nil
}

func cents(v float64) float64 {
	return math.Round(v*100) / 100
}
