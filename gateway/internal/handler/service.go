package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/kcls/circulation/gateway/internal/circulation"
	"github.com/kcls/circulation/gateway/internal/model"
	"github.com/kcls/circulation/gateway/internal/service/audit"
	"github.com/kcls/circulation/gateway/internal/service/borrow"
	"github.com/kcls/circulation/gateway/internal/service/catalog"
	"github.com/kcls/circulation/gateway/internal/service/settings"
	"github.com/kcls/circulation/gateway/internal/service/user"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ BorrowService   = (*borrow.Service)(nil)
	_ CatalogService  = (*catalog.Service)(nil)
	_ UserService     = (*user.Service)(nil)
	_ AuditService    = (*audit.Service)(nil)
	_ SettingsService = (*settings.Service)(nil)
)

type BorrowService interface {
	List(ctx context.Context, role model.Role) ([]model.BorrowTransaction, int, error)
	DueDate(ctx context.Context, borrowID int) (string, int, error)
	Approve(ctx context.Context, borrowID int, role model.Role) (int, error)
	Reject(ctx context.Context, borrowID int, role model.Role) (int, error)
	Retrieved(ctx context.Context, borrowID int, role model.Role) (int, error)
	Return(ctx context.Context, sub circulation.ReturnSubmission) (int, error)
	Lost(ctx context.Context, sub circulation.LostSubmission) (int, error)
}

type CatalogService interface {
	BookCopy(ctx context.Context, copyID int) (model.BookCopy, int, error)
	Book(ctx context.Context, bookID int) (model.Book, int, error)
	DocumentStorage(ctx context.Context, storageID int) (model.DocumentStorage, int, error)
	Document(ctx context.Context, documentID int) (model.Document, int, error)
	Proxy(c echo.Context, path string) ([]byte, string, int, error)
}

type UserService interface {
	Borrower(ctx context.Context, borrowerID int) (model.Borrower, int, error)
	Proxy(c echo.Context, path string) ([]byte, string, int, error)
}

type AuditService interface {
	Log(ctx context.Context, entry model.AuditEntry) (int, int, error)
	List(ctx context.Context, f model.AuditFilter) ([]model.AuditRecord, int, error)
}

type SettingsService interface {
	Get(ctx context.Context) model.Settings
}
