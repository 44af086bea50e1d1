package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEventCirculation_Decode(t *testing.T) {
	ev := EventCirculation{
		EventID:   "7c1b",
		Timestamp: time.Date(2024, 3, 10, 2, 0, 0, 0, time.UTC),
		BorrowID:  12,
		Action:    ActionReturn,
		Items:     2,
		FineTotal: 15,
		FinePaid:  5,
	}
	data, err := ev.Encode()
	require.NoError(t, err)
	require.JSONEq(t, `{"eventId":"7c1b","timestamp":"2024-03-10T02:00:00Z","borrowId":12,"action":"RETURN","items":2,"fineTotal":15,"finePaid":5}`, string(data))

	got, err := DecodeEventCirculation(data)
	require.NoError(t, err)
	require.Equal(t, ev, got)
	require.NoError(t, got.Validate())

	_, err = DecodeEventCirculation([]byte(`{"borrowId":"x"`))
	require.Error(t, err)
}

func TestEventCirculation_Validate(t *testing.T) {
	ok := EventCirculation{EventID: "a", BorrowID: 1, Action: ActionLost}
	require.NoError(t, ok.Validate())

	for name, ev := range map[string]EventCirculation{
		"no id":         {BorrowID: 1, Action: ActionLost},
		"no borrow":     {EventID: "a", Action: ActionLost},
		"bad action":    {EventID: "a", BorrowID: 1, Action: "RENEW"},
		"negative fine": {EventID: "a", BorrowID: 1, Action: ActionReturn, FineTotal: -1},
	} {
		require.ErrorIs(t, ev.Validate(), ErrInvalidEvent, name)
	}
}
