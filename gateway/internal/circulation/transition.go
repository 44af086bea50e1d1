package circulation

import (
	"github.com/pkg/errors"

	"github.com/kcls/circulation/gateway/internal/model"
)

type Action string

const (
	ActionApprove  Action = "approve"
	ActionReject   Action = "reject"
	ActionRetrieve Action = "retrieved"
	ActionReturn   Action = "return"
)

var ErrTransition = errors.New("transition not allowed")

// Allowed enforces the forward-only lifecycle
// Pending -> Approved|Rejected -> Retrieved -> Returned.
func Allowed(tx model.BorrowTransaction, a Action) error {
	ok := false
	switch a {
	case ActionApprove, ActionReject:
		ok = tx.ApprovalStatus == ApprovalPending
	case ActionRetrieve:
		ok = tx.ApprovalStatus == ApprovalApproved && tx.RetrievalStatus != RetrievalDone
	case ActionReturn:
		ok = tx.RetrievalStatus == RetrievalDone && tx.ReturnStatus != ReturnDone
	default:
		return errors.Wrapf(ErrTransition, "unknown action %q", a)
	}
	if !ok {
		return errors.Wrapf(ErrTransition, "%s: approval=%q retrieval=%q return=%q",
			a, tx.ApprovalStatus, tx.RetrievalStatus, tx.ReturnStatus)
	}
	return nil
}

// Apply returns tx as the backend records it after a successful action.
func Apply(tx model.BorrowTransaction, a Action) model.BorrowTransaction {
	switch a {
	case ActionApprove:
		tx.ApprovalStatus = ApprovalApproved
	case ActionReject:
		tx.ApprovalStatus = ApprovalRejected
	case ActionRetrieve:
		tx.RetrievalStatus = RetrievalDone
	case ActionReturn:
		tx.ReturnStatus = ReturnDone
	}
	return tx
}
