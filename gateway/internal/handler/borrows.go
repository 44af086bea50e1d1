package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/kcls/circulation/gateway/internal/circulation"
	"github.com/kcls/circulation/gateway/internal/errs"
	"github.com/kcls/circulation/gateway/internal/model"
	"github.com/kcls/circulation/pkg/kafka"
	md "github.com/kcls/circulation/pkg/middleware"
)

const auditTargetBorrow = "Borrow"

var auditCodes = map[circulation.Action]string{
	circulation.ActionApprove:  "BORROW_APPROVE",
	circulation.ActionReject:   "BORROW_REJECT",
	circulation.ActionRetrieve: "BORROW_RETRIEVE",
	circulation.ActionReturn:   "BORROW_RETURN",
}

var eventActions = map[circulation.Action]kafka.Action{
	circulation.ActionApprove:  kafka.ActionApprove,
	circulation.ActionReject:   kafka.ActionReject,
	circulation.ActionRetrieve: kafka.ActionRetrieve,
	circulation.ActionReturn:   kafka.ActionReturn,
}

type roleQuery struct {
	Role string `validate:"omitempty,oneof=admin librarian borrower"`
}

// role reads ?role=, falling back to the actor header and then librarian.
func role(c echo.Context) (model.Role, error) {
	q := roleQuery{Role: c.QueryParam("role")}
	if q.Role == "" {
		q.Role = md.ActorFromContext(c.Request().Context()).Role
	}
	if err := c.Validate(q); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, errs.ErrRole.Error())
	}
	if q.Role == "" {
		return model.RoleLibrarian, nil
	}
	return model.Role(q.Role), nil
}

func borrowID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("borrowId"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errs.ErrBorrowID.Error())
	}
	return id, nil
}

// httpError turns a service failure into an echo error. Services report 200
// alongside decode failures, which surface as a bad gateway.
func httpError(code int, err error) error {
	if code < http.StatusBadRequest {
		code = http.StatusBadGateway
	}
	return echo.NewHTTPError(code, err.Error())
}

// findTx looks the transaction up in the role's list; the backend has no
// single-transaction endpoint.
func (h *Handler) findTx(ctx context.Context, id int, r model.Role) (model.BorrowTransaction, error) {
	txs, code, err := h.borrowSvc.List(ctx, r)
	if err != nil {
		return model.BorrowTransaction{}, httpError(code, err)
	}
	for _, tx := range txs {
		if tx.BorrowID == id {
			return tx, nil
		}
	}
	return model.BorrowTransaction{}, echo.NewHTTPError(http.StatusNotFound,
		errors.Wrapf(errs.ErrNotFound, "borrow %d", id).Error())
}

func (h *Handler) ListBorrows(c echo.Context) error {
	r, err := role(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	txs, code, err := h.borrowSvc.List(ctx, r)
	if err != nil {
		return httpError(code, err)
	}
	circulation.SortNewestFirst(txs, h.loc)
	st := h.settingsSvc.Get(ctx)

	filter := circulation.ParseFilter(c.QueryParam("status"))
	search := c.QueryParam("q")
	resp := listBorrowsResponse{
		Transactions: make([]BorrowView, 0, len(txs)),
		FinePerDay:   st.Fine,
		Filter:       filter,
	}
	for _, v := range h.views(ctx, txs, st.Fine) {
		resp.Tallies.Add(v.Status)
		if !filter.Match(v.Status) {
			continue
		}
		if !circulation.MatchSearch(search, v.BorrowerName, v.Purpose, v.BorrowDate, v.DueDate) {
			continue
		}
		resp.Transactions = append(resp.Transactions, v)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetFine(c echo.Context) error {
	id, err := borrowID(c)
	if err != nil {
		return err
	}
	r, err := role(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	var due *time.Time
	if raw := c.QueryParam("due"); raw != "" {
		d, ok := circulation.ParseDue(raw, h.loc)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "due: unrecognised date")
		}
		due = &d
	} else {
		tx, err := h.findTx(ctx, id, r)
		if err != nil {
			return err
		}
		due = h.dueFor(ctx, tx)
	}

	st := h.settingsSvc.Get(ctx)
	now := h.clock.Now()
	resp := fineResponse{
		BorrowID:   id,
		FinePerDay: st.Fine,
		Fine:       circulation.Fine(due, now, st.Fine),
	}
	if due != nil {
		resp.DueDate = circulation.FormatDate(due.In(h.loc))
		resp.Days = circulation.DaysOverdue(*due, now)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetReturnDraft(c echo.Context) error {
	id, err := borrowID(c)
	if err != nil {
		return err
	}
	r, err := role(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	tx, err := h.findTx(ctx, id, r)
	if err != nil {
		return err
	}
	if err := circulation.Allowed(tx, circulation.ActionReturn); err != nil {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	due := h.dueFor(ctx, tx)
	fine := circulation.Fine(due, h.clock.Now(), h.settingsSvc.Get(ctx).Fine)

	resp := returnDraftResponse{
		BorrowID:      id,
		SuggestedFine: fine,
		Conditions:    circulation.ReturnConditions,
		Items:         circulation.NewReturnDraft(tx, fine),
	}
	if due != nil {
		resp.DueDate = circulation.FormatDate(due.In(h.loc))
	}
	return c.JSON(http.StatusOK, resp)
}

// Transition runs approve, reject or retrieved against the backend once the
// lifecycle allows it.
func (h *Handler) Transition(action circulation.Action) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := borrowID(c)
		if err != nil {
			return err
		}
		r, err := role(c)
		if err != nil {
			return err
		}
		ctx := c.Request().Context()
		tx, err := h.findTx(ctx, id, r)
		if err != nil {
			return err
		}
		if err := circulation.Allowed(tx, action); err != nil {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}

		var code int
		switch action {
		case circulation.ActionApprove:
			code, err = h.borrowSvc.Approve(ctx, id, r)
		case circulation.ActionReject:
			code, err = h.borrowSvc.Reject(ctx, id, r)
		case circulation.ActionRetrieve:
			code, err = h.borrowSvc.Retrieved(ctx, id, r)
		default:
			return echo.NewHTTPError(http.StatusBadRequest, "unsupported action")
		}
		if err != nil {
			return httpError(code, err)
		}

		h.record(ctx, id, action, r, map[string]any{"role": r}, len(tx.Items), 0, 0)

		tx = circulation.Apply(tx, action)
		return c.JSON(http.StatusOK, transitionResponse{
			BorrowID: id,
			Action:   action,
			Status:   circulation.Derive(tx, h.dueFor(ctx, tx), h.clock.Now()),
		})
	}
}

func (h *Handler) ReturnBorrow(c echo.Context) error {
	id, err := borrowID(c)
	if err != nil {
		return err
	}
	r, err := role(c)
	if err != nil {
		return err
	}
	var req returnRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	tx, err := h.findTx(ctx, id, r)
	if err != nil {
		return err
	}
	if err := circulation.Allowed(tx, circulation.ActionReturn); err != nil {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	now := h.clock.Now()
	plan, err := circulation.BuildReturn(tx, req.Items, req.Remarks, now)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp := returnResponse{
		BorrowID:  id,
		FineTotal: plan.FineTotal,
		FinePaid:  plan.FinePaid,
	}
	if plan.Lost != nil {
		if code, err := h.borrowSvc.Lost(ctx, *plan.Lost); err != nil {
			return httpError(code, err)
		}
		resp.Lost = len(plan.Lost.Items)
		h.publishLost(ctx, id, r, *plan.Lost)
	}
	if plan.Return != nil {
		if code, err := h.borrowSvc.Return(ctx, *plan.Return); err != nil {
			if plan.Lost != nil {
				h.log.Warn("return failed after lost items were recorded",
					zap.Int("borrowId", id), zap.Error(err))
			}
			return httpError(code, err)
		}
		resp.Returned = len(plan.Return.Items)
		resp.ReturnDate = plan.Return.ReturnDate
	}

	details := map[string]any{
		"role":      r,
		"returned":  resp.Returned,
		"lost":      resp.Lost,
		"fineTotal": plan.FineTotal,
		"finePaid":  plan.FinePaid,
	}
	if plan.Return != nil && plan.Return.Remarks != "" {
		details["remarks"] = plan.Return.Remarks
	}
	// the lost event already carries the lost items and their fines
	var (
		returned         int
		retFine, retPaid float64
	)
	if plan.Return != nil {
		returned = len(plan.Return.Items)
		retFine, retPaid = plan.Return.Totals()
	}
	h.record(ctx, id, circulation.ActionReturn, r, details, returned, retFine, retPaid)

	resp.Status = circulation.Derive(circulation.Apply(tx, circulation.ActionReturn), nil, now)
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) ReturnQueue(c echo.Context) error {
	r, err := role(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	txs, code, err := h.borrowSvc.List(ctx, r)
	if err != nil {
		return httpError(code, err)
	}
	open := txs[:0]
	for _, tx := range txs {
		if tx.RetrievalStatus == circulation.RetrievalDone && tx.ReturnStatus != circulation.ReturnDone {
			open = append(open, tx)
		}
	}
	circulation.SortNewestFirst(open, h.loc)

	now := h.clock.Now()
	queue := circulation.ReturnQueue[BorrowView]{
		Overdue:     []BorrowView{},
		IncomingDue: []BorrowView{},
		Borrowed:    []BorrowView{},
		All:         []BorrowView{},
	}
	for _, v := range h.views(ctx, open, h.settingsSvc.Get(ctx).Fine) {
		queue.Add(circulation.QueueStatus(v.BorrowTransaction, v.due, now), v)
	}
	return c.JSON(http.StatusOK, queue)
}

// record writes the audit entry and publishes the circulation event. The
// backend call already succeeded, so failures here are only logged.
func (h *Handler) record(ctx context.Context, id int, action circulation.Action, r model.Role,
	details map[string]any, items int, fineTotal, finePaid float64,
) {
	actor := md.ActorFromContext(ctx)
	raw, err := json.Marshal(details)
	if err != nil {
		h.log.Warn("audit details", zap.Error(err))
	}
	if _, _, err := h.auditSvc.Log(ctx, model.AuditEntry{
		ActionCode: auditCodes[action],
		TargetType: auditTargetBorrow,
		TargetID:   id,
		Details:    string(raw),
		UserID:     actor.UserID,
	}); err != nil {
		h.log.Warn("audit log", zap.Int("borrowId", id), zap.String("action", string(action)), zap.Error(err))
	}
	h.publish(ctx, kafka.EventCirculation{
		BorrowID:  id,
		Action:    eventActions[action],
		Role:      string(r),
		UserID:    actor.UserID,
		Items:     items,
		FineTotal: fineTotal,
		FinePaid:  finePaid,
	})
}

func (h *Handler) publishLost(ctx context.Context, id int, r model.Role, sub circulation.LostSubmission) {
	fine, paid := sub.Totals()
	h.publish(ctx, kafka.EventCirculation{
		BorrowID:  id,
		Action:    kafka.ActionLost,
		Role:      string(r),
		UserID:    md.ActorFromContext(ctx).UserID,
		Items:     len(sub.Items),
		FineTotal: fine,
		FinePaid:  paid,
	})
}

func (h *Handler) publish(ctx context.Context, ev kafka.EventCirculation) {
	ev.EventID = uuid.NewString()
	ev.Timestamp = h.clock.Now().UTC()
	if err := h.enqueuer.Publish(ctx, ev); err != nil {
		h.log.Warn("publish circulation event",
			zap.Int("borrowId", ev.BorrowID), zap.String("action", string(ev.Action)), zap.Error(err))
	}
}
