package kafka

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Action string

const (
	ActionApprove  Action = "APPROVE"
	ActionReject   Action = "REJECT"
	ActionRetrieve Action = "RETRIEVE"
	ActionReturn   Action = "RETURN"
	ActionLost     Action = "LOST"
)

// EventCirculation is published by the gateway after every lifecycle
// transition that the backend accepted.
type EventCirculation struct {
	EventID   string    `json:"eventId"`
	Timestamp time.Time `json:"timestamp"`
	BorrowID  int       `json:"borrowId"`
	Action    Action    `json:"action"`
	Role      string    `json:"role,omitempty"`
	UserID    string    `json:"userId,omitempty"`
	Items     int       `json:"items"`
	FineTotal float64   `json:"fineTotal"`
	FinePaid  float64   `json:"finePaid"`
}

func (e EventCirculation) Encode() ([]byte, error) {
	return json.Marshal(e)
}

func DecodeEventCirculation(data []byte) (EventCirculation, error) {
	var e EventCirculation
	err := json.Unmarshal(data, &e)
	return e, err
}

var ErrInvalidEvent = errors.New("invalid circulation event")

func (a Action) Valid() bool {
	switch a {
	case ActionApprove, ActionReject, ActionRetrieve, ActionReturn, ActionLost:
		return true
	}
	return false
}

func (e EventCirculation) Validate() error {
	switch {
	case e.EventID == "":
		return errors.Wrap(ErrInvalidEvent, "empty eventId")
	case e.BorrowID <= 0:
		return errors.Wrapf(ErrInvalidEvent, "borrowId %d", e.BorrowID)
	case !e.Action.Valid():
		return errors.Wrapf(ErrInvalidEvent, "action %q", e.Action)
	case e.FineTotal < 0 || e.FinePaid < 0:
		return errors.Wrap(ErrInvalidEvent, "negative fine")
	}
	return nil
}
