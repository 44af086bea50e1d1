package handler

import (
	"context"

	"github.com/kcls/circulation/pkg/kafka"
	"github.com/kcls/circulation/stats/internal/model"
	"github.com/kcls/circulation/stats/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type StatsService interface {
	GetStats(ctx context.Context, p model.Period) (model.Summary, error)
	Record(ctx context.Context, event kafka.EventCirculation) error
}

var _ StatsService = (*service.Service)(nil)
