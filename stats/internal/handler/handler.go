package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	md "github.com/kcls/circulation/pkg/middleware"
	"github.com/kcls/circulation/pkg/validate"
	"github.com/kcls/circulation/stats/internal/errs"
	"github.com/kcls/circulation/stats/internal/model"
)

type Handler struct {
	statsSvc StatsService
	log      *zap.Logger
}

func New(statsSvc StatsService, log *zap.Logger) *Handler {
	return &Handler{
		statsSvc: statsSvc,
		log:      log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{StackSize: 4 << 10}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.ActorContext,
	)
	api.GET("/stats", h.GetStats)
	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

type statsQuery struct {
	From string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// period checks the dates as given, then makes to exclusive.
func (q statsQuery) period() (model.Period, error) {
	var p model.Period
	if t, err := time.Parse(time.DateOnly, q.From); err == nil {
		p.From = &t
	}
	if t, err := time.Parse(time.DateOnly, q.To); err == nil {
		p.To = &t
	}
	if p.From != nil && p.To != nil && p.From.After(*p.To) {
		return model.Period{}, errs.ErrRange
	}
	if p.To != nil {
		to := p.To.AddDate(0, 0, 1)
		p.To = &to
	}
	return p, nil
}

func (h *Handler) GetStats(c echo.Context) error {
	ctx := c.Request().Context()
	if role := md.ActorFromContext(ctx).Role; role != "" && role != "admin" && role != "librarian" {
		return echo.NewHTTPError(http.StatusForbidden, "stats are staff only")
	}
	var q statsQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := q.period()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	stat, err := h.statsSvc.GetStats(ctx, p)
	if err != nil {
		if errors.Is(err, errs.ErrRange) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, stat)
}
