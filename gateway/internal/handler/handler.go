package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/kcls/circulation/gateway/config"
	"github.com/kcls/circulation/gateway/internal/circulation"
	md "github.com/kcls/circulation/pkg/middleware"
	"github.com/kcls/circulation/pkg/validate"
	_ "github.com/kcls/circulation/swagger"
)

type Services struct {
	Borrow   BorrowService
	Catalog  CatalogService
	User     UserService
	Audit    AuditService
	Settings SettingsService
}

type Handler struct {
	borrowSvc   BorrowService
	catalogSvc  CatalogService
	userSvc     UserService
	auditSvc    AuditService
	settingsSvc SettingsService
	enqueuer    Enqueuer
	clock       circulation.Clock
	loc         *time.Location
	concurrency int
	log         *zap.Logger
}

func New(log *zap.Logger, cfg config.Config, svc Services, enqueuer Enqueuer) *Handler {
	if enqueuer == nil {
		enqueuer = NewEnqueuer(nil)
	}
	loc := cfg.Circulation.Location()
	concurrency := cfg.Backend.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Handler{
		borrowSvc:   svc.Borrow,
		catalogSvc:  svc.Catalog,
		userSvc:     svc.User,
		auditSvc:    svc.Audit,
		settingsSvc: svc.Settings,
		enqueuer:    enqueuer,
		clock:       circulation.NewClock(loc),
		loc:         loc,
		concurrency: concurrency,
		log:         log,
	}
}

// WithClock replaces the wall clock, used to pin "today".
func (h *Handler) WithClock(c circulation.Clock) *Handler {
	h.clock = c
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))
	e.Validator = validate.NewCustomValidator()

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		md.ActorContext,
	)
	h.register(api)

	return e
}

func (h *Handler) register(api *echo.Group) {
	api.GET("/borrows", h.ListBorrows)
	api.GET("/borrows/:borrowId/fine", h.GetFine)
	api.GET("/borrows/:borrowId/return-draft", h.GetReturnDraft)
	api.PUT("/borrows/:borrowId/approve", h.Transition(circulation.ActionApprove))
	api.PUT("/borrows/:borrowId/reject", h.Transition(circulation.ActionReject))
	api.PUT("/borrows/:borrowId/retrieved", h.Transition(circulation.ActionRetrieve))
	api.POST("/borrows/:borrowId/return", h.ReturnBorrow)
	api.GET("/returns/queue", h.ReturnQueue)

	api.GET("/audit", h.ListAudit)
	api.GET("/audit/export.csv", h.ExportAudit)

	api.GET("/books", h.proxy(h.catalogSvc.Proxy))
	api.GET("/books/inventory/copy/:id", h.proxy(h.catalogSvc.Proxy))
	api.GET("/documents", h.proxy(h.catalogSvc.Proxy))
	api.GET("/documents/inventory/:id", h.proxy(h.catalogSvc.Proxy))
	api.POST("/documents/upload", h.proxy(h.catalogSvc.Proxy))
	api.GET("/storages", h.proxy(h.catalogSvc.Proxy))
	api.GET("/users", h.proxy(h.userSvc.Proxy))
}

// Health
//
//	@Summary	liveness probe
//	@Tags		manage
//	@Success	200	{string}	string	"OK"
//	@Router		/manage/health [get]
func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
