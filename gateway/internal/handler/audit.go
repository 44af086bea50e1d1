package handler

import (
	"encoding/csv"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"

	"github.com/kcls/circulation/gateway/internal/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var auditCSVHeader = []string{
	"AuditID", "CreatedAt", "UserID", "ActionCode", "TargetTypeCode", "TargetID", "Details", "IPAddress", "UserAgent",
}

func (h *Handler) auditRecords(c echo.Context) ([]model.AuditRecord, error) {
	var f model.AuditFilter
	if err := c.Bind(&f); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if f.Limit < 0 || f.Limit > 1000 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "limit must be between 1 and 1000")
	}
	recs, code, err := h.auditSvc.List(c.Request().Context(), f)
	if err != nil {
		return nil, httpError(code, err)
	}
	return recs, nil
}

func (h *Handler) ListAudit(c echo.Context) error {
	recs, err := h.auditRecords(c)
	if err != nil {
		return err
	}
	if recs == nil {
		recs = []model.AuditRecord{}
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *Handler) ExportAudit(c echo.Context) error {
	recs, err := h.auditRecords(c)
	if err != nil {
		return err
	}
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="audit.csv"`)
	res.WriteHeader(http.StatusOK)

	w := csv.NewWriter(res)
	if err := w.Write(auditCSVHeader); err != nil {
		return err
	}
	for _, r := range recs {
		if err := w.Write([]string{
			strconv.Itoa(r.AuditID),
			r.CreatedAt,
			optInt(r.UserID),
			r.ActionCode,
			r.TargetTypeCode,
			optInt(r.TargetID),
			r.Details,
			r.IPAddress,
			r.UserAgent,
		}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func optInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
