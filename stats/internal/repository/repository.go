package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/kcls/circulation/pkg/kafka"
	"github.com/kcls/circulation/stats/internal/errs"
	"github.com/kcls/circulation/stats/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	SaveEvent(ctx context.Context, event kafka.EventCirculation) error
	GetStats(ctx context.Context, p model.Period) ([]model.ActionStats, error)
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const eventsTableName = `circulation_events`

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func insertEventQuery(event kafka.EventCirculation) (string, []any, error) {
	return qb.Insert(eventsTableName).
		Columns("event_id", "occurred", "borrow_id", "action", "role", "user_id", "items", "fine_total", "fine_paid").
		Values(event.EventID, event.Timestamp, event.BorrowID, string(event.Action), event.Role, event.UserID,
			event.Items, event.FineTotal, event.FinePaid).
		ToSql()
}

func statsQuery(p model.Period) (string, []any, error) {
	q := qb.Select(
		"action",
		"count(*) as events",
		"coalesce(sum(items), 0)::int as items",
		"coalesce(sum(fine_total), 0)::float8 as fine_total",
		"coalesce(sum(fine_paid), 0)::float8 as fine_paid",
	).From(eventsTableName)
	if p.From != nil {
		q = q.Where(sq.GtOrEq{"occurred": *p.From})
	}
	if p.To != nil {
		q = q.Where(sq.Lt{"occurred": *p.To})
	}
	return q.GroupBy("action").OrderBy("action").ToSql()
}

// SaveEvent stores one event. Redelivered events hit the primary key and
// come back as errs.ErrDuplicate.
func (r *repository) SaveEvent(ctx context.Context, event kafka.EventCirculation) error {
	query, args, err := insertEventQuery(event)
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return errors.Wrap(errs.ErrDuplicate, event.EventID)
		}
		r.log.Error("SaveEvent", zap.String("q", query), zap.Any("args", args))
		return err
	}
	return nil
}

func (r *repository) GetStats(ctx context.Context, p model.Period) ([]model.ActionStats, error) {
	query, args, err := statsQuery(p)
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	stats, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.ActionStats])
	if err != nil {
		return nil, errors.Wrap(err, "pgx.CollectRows")
	}
	return stats, nil
}
