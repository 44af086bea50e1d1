package circulation

import (
	"time"

	"github.com/kcls/circulation/gateway/internal/model"
)

const (
	QueueOverdue     = "Overdue"
	QueueIncomingDue = "Incoming Due"
	QueueBorrowed    = "Borrowed"
	QueueReturned    = "Returned"
	QueueUnknown     = "Unknown"
)

const incomingDueWindow = 48 * time.Hour

// QueueStatus classifies a transaction on the return desk.
func QueueStatus(tx model.BorrowTransaction, due *time.Time, now time.Time) string {
	if tx.ReturnStatus == ReturnDone {
		return QueueReturned
	}
	if due == nil {
		return QueueUnknown
	}
	if now.After(*due) {
		return QueueOverdue
	}
	if due.Sub(now) <= incomingDueWindow {
		return QueueIncomingDue
	}
	return QueueBorrowed
}

type ReturnQueue[T any] struct {
	Overdue     []T `json:"overdue"`
	IncomingDue []T `json:"incomingDue"`
	Borrowed    []T `json:"borrowed"`
	All         []T `json:"all"`
}

// Add files v under its category. Every entry also lands in All.
func (q *ReturnQueue[T]) Add(category string, v T) {
	switch category {
	case QueueOverdue:
		q.Overdue = append(q.Overdue, v)
	case QueueIncomingDue:
		q.IncomingDue = append(q.IncomingDue, v)
	case QueueBorrowed:
		q.Borrowed = append(q.Borrowed, v)
	}
	q.All = append(q.All, v)
}
