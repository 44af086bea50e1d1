package circulation

import (
	"time"

	"github.com/kcls/circulation/gateway/internal/model"
)

// Persisted values of the transaction status columns.
const (
	ApprovalPending  = "Pending"
	ApprovalApproved = "Approved"
	ApprovalRejected = "Rejected"
	RetrievalDone    = "Retrieved"
	ReturnDone       = "Returned"
)

const (
	LabelReturned              = "Returned"
	LabelRejected              = "Rejected"
	LabelPendingApproval       = "Pending Approval"
	LabelOverdueAwaitingPickup = "Overdue (Awaiting Retrieval)"
	LabelApproved              = "Approved"
	LabelOverdue               = "Overdue"
	LabelBorrowed              = "Borrowed"
	LabelUnknown               = "Unknown"
)

type Color string

const (
	ColorSuccess   Color = "success"
	ColorError     Color = "error"
	ColorWarning   Color = "warning"
	ColorInfo      Color = "info"
	ColorSecondary Color = "secondary"
	ColorDefault   Color = "default"
)

type Status struct {
	Label string `json:"label"`
	Color Color  `json:"color"`
}

// IsOverdue reports both overdue variants.
func (s Status) IsOverdue() bool {
	return s.Label == LabelOverdue || s.Label == LabelOverdueAwaitingPickup
}

// Derive maps the persisted flags and the resolved due date to the single
// status shown for a transaction. The first matching rule wins. A nil due
// date never counts as overdue.
func Derive(tx model.BorrowTransaction, due *time.Time, now time.Time) Status {
	pastDue := due != nil && due.Before(now)

	switch {
	case tx.ReturnStatus == ReturnDone:
		return Status{LabelReturned, ColorSuccess}
	case tx.ApprovalStatus == ApprovalRejected:
		return Status{LabelRejected, ColorError}
	case tx.ApprovalStatus == ApprovalPending:
		return Status{LabelPendingApproval, ColorWarning}
	case tx.ApprovalStatus == ApprovalApproved && tx.RetrievalStatus != RetrievalDone:
		if pastDue {
			return Status{LabelOverdueAwaitingPickup, ColorError}
		}
		return Status{LabelApproved, ColorInfo}
	case tx.RetrievalStatus == RetrievalDone && tx.ReturnStatus != ReturnDone:
		if pastDue {
			return Status{LabelOverdue, ColorError}
		}
		return Status{LabelBorrowed, ColorSecondary}
	}

	label := tx.ApprovalStatus
	if label == "" {
		label = LabelUnknown
	}
	return Status{label, ColorDefault}
}
