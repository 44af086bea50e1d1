package audit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kcls/circulation/gateway/internal/model"
)

func TestFilterQuery(t *testing.T) {
	require.Equal(t, "limit=100", filterQuery(model.AuditFilter{}).Encode())
	require.Equal(t, "limit=1000", filterQuery(model.AuditFilter{Limit: 5000}).Encode())
	require.Equal(t,
		"action=BORROW_RETURN&from=2024-03-01&limit=20&targetId=4&targetType=Borrow&to=2024-03-31&userId=42",
		filterQuery(model.AuditFilter{
			UserID:     "42",
			Action:     "BORROW_RETURN",
			TargetType: "Borrow",
			TargetID:   "4",
			From:       "2024-03-01",
			To:         "2024-03-31",
			Limit:      20,
		}).Encode())
}
