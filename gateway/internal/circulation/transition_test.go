package circulation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kcls/circulation/gateway/internal/model"
)

func TestAllowed(t *testing.T) {
	pending := model.BorrowTransaction{ApprovalStatus: ApprovalPending}
	approved := model.BorrowTransaction{ApprovalStatus: ApprovalApproved}
	retrieved := model.BorrowTransaction{ApprovalStatus: ApprovalApproved, RetrievalStatus: RetrievalDone}
	returned := model.BorrowTransaction{ApprovalStatus: ApprovalApproved, RetrievalStatus: RetrievalDone, ReturnStatus: ReturnDone}
	rejected := model.BorrowTransaction{ApprovalStatus: ApprovalRejected}

	tests := []struct {
		name    string
		tx      model.BorrowTransaction
		action  Action
		allowed bool
	}{
		{"approve pending", pending, ActionApprove, true},
		{"reject pending", pending, ActionReject, true},
		{"approve twice", approved, ActionApprove, false},
		{"retrieve pending", pending, ActionRetrieve, false},
		{"retrieve approved", approved, ActionRetrieve, true},
		{"retrieve rejected", rejected, ActionRetrieve, false},
		{"return before pickup", approved, ActionReturn, false},
		{"return retrieved", retrieved, ActionReturn, true},
		{"return twice", returned, ActionReturn, false},
		{"unknown action", pending, Action("delete"), false},
	}
	for _, tt := range tests {
		err := Allowed(tt.tx, tt.action)
		if tt.allowed {
			require.NoError(t, err, tt.name)
			continue
		}
		require.ErrorIs(t, err, ErrTransition, tt.name)
	}
}

func TestApply(t *testing.T) {
	tx := model.BorrowTransaction{ApprovalStatus: ApprovalPending}

	tx = Apply(tx, ActionApprove)
	require.Equal(t, ApprovalApproved, tx.ApprovalStatus)
	require.NoError(t, Allowed(tx, ActionRetrieve))

	tx = Apply(tx, ActionRetrieve)
	require.Equal(t, RetrievalDone, tx.RetrievalStatus)
	require.NoError(t, Allowed(tx, ActionReturn))

	tx = Apply(tx, ActionReturn)
	require.Equal(t, ReturnDone, tx.ReturnStatus)
	require.ErrorIs(t, Allowed(tx, ActionReturn), ErrTransition)

	require.Equal(t, ApprovalRejected, Apply(model.BorrowTransaction{ApprovalStatus: ApprovalPending}, ActionReject).ApprovalStatus)
}
