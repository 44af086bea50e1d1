package circulation

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/kcls/circulation/gateway/internal/model"
)

const (
	ConditionGood            = "Good"
	ConditionSlightlyDamaged = "Slightly Damaged"
	ConditionHeavilyDamaged  = "Heavily Damaged"
	ConditionLost            = "Lost"
)

var ReturnConditions = []string{ConditionGood, ConditionSlightlyDamaged, ConditionHeavilyDamaged, ConditionLost}

const (
	FinePaidYes = "Yes"
	FinePaidNo  = "No"
)

var (
	ErrInvalidCondition = errors.New("invalid return condition")
	ErrNegativeFine     = errors.New("fine must not be negative")
	ErrUnknownItem      = errors.New("item does not belong to the transaction")
	ErrNothingToReturn  = errors.New("transaction has no items")
	ErrAlreadyReturned  = errors.New("transaction is already returned")
)

// Amount accepts a JSON number, a numeric string or null. Anything that does
// not parse counts as zero, the same as an empty fine field.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	s := strings.Trim(string(b), `"`)
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		*a = 0
		return nil
	}
	*a = Amount(v)
	return nil
}

// ItemInput is what the librarian filled in for one borrowed item.
type ItemInput struct {
	BorrowedItemID int    `json:"borrowedItemId"`
	Condition      string `json:"condition"`
	Fine           Amount `json:"fine"`
	FinePaid       bool   `json:"finePaid"`
	Lost           bool   `json:"lost"`
}

type ReturnItem struct {
	BorrowedItemID  int     `json:"borrowedItemId"`
	ReturnCondition string  `json:"returnCondition"`
	Fine            float64 `json:"fine"`
	FinePaid        string  `json:"finePaid"`
}

type ReturnSubmission struct {
	BorrowID   int          `json:"borrowId"`
	ReturnDate string       `json:"returnDate"`
	Items      []ReturnItem `json:"items"`
	Remarks    string       `json:"remarks,omitempty"`
}

type LostItem struct {
	BorrowedItemID int     `json:"borrowedItemId"`
	Fine           float64 `json:"fine"`
	FinePaid       string  `json:"finePaid"`
}

type LostSubmission struct {
	BorrowID int        `json:"borrowId"`
	Items    []LostItem `json:"items"`
	Remarks  string     `json:"remarks,omitempty"`
}

// Totals sums the assessed and the paid fines of the returned items.
func (s ReturnSubmission) Totals() (fine, paid float64) {
	for _, it := range s.Items {
		fine += it.Fine
		if it.FinePaid == FinePaidYes {
			paid += it.Fine
		}
	}
	return roundCents(fine), roundCents(paid)
}

// Totals sums the assessed and the paid fines of the lost items.
func (s LostSubmission) Totals() (fine, paid float64) {
	for _, it := range s.Items {
		fine += it.Fine
		if it.FinePaid == FinePaidYes {
			paid += it.Fine
		}
	}
	return roundCents(fine), roundCents(paid)
}

// ReturnPlan holds what has to be posted to the backend. Either part is nil
// when it has no items.
type ReturnPlan struct {
	Return    *ReturnSubmission
	Lost      *LostSubmission
	FineTotal float64
	FinePaid  float64
}

func (p ReturnPlan) Items() int {
	n := 0
	if p.Return != nil {
		n += len(p.Return.Items)
	}
	if p.Lost != nil {
		n += len(p.Lost.Items)
	}
	return n
}

// NewReturnDraft pre-fills every item with the defaults offered to the
// librarian: good condition, the suggested fine, unpaid.
func NewReturnDraft(tx model.BorrowTransaction, suggestedFine float64) []ItemInput {
	out := make([]ItemInput, 0, len(tx.Items))
	for _, it := range tx.Items {
		out = append(out, ItemInput{
			BorrowedItemID: it.BorrowedItemID,
			Condition:      ConditionGood,
			Fine:           Amount(suggestedFine),
		})
	}
	return out
}

func validCondition(c string) bool {
	for _, v := range ReturnConditions {
		if v == c {
			return true
		}
	}
	return false
}

func finePaid(paid bool) string {
	if paid {
		return FinePaidYes
	}
	return FinePaidNo
}

// BuildReturn assembles the payloads for returning tx today. Items without
// input fall back to the draft defaults with no fine. Items flagged lost are
// split into the lost submission.
func BuildReturn(tx model.BorrowTransaction, inputs []ItemInput, remarks string, now time.Time) (ReturnPlan, error) {
	if tx.ReturnStatus == ReturnDone {
		return ReturnPlan{}, ErrAlreadyReturned
	}
	if len(tx.Items) == 0 {
		return ReturnPlan{}, ErrNothingToReturn
	}

	byID := make(map[int]ItemInput, len(inputs))
	for _, in := range inputs {
		byID[in.BorrowedItemID] = in
	}
	known := make(map[int]struct{}, len(tx.Items))
	for _, it := range tx.Items {
		known[it.BorrowedItemID] = struct{}{}
	}
	for id := range byID {
		if _, ok := known[id]; !ok {
			return ReturnPlan{}, errors.Wrapf(ErrUnknownItem, "borrowedItemId %d", id)
		}
	}

	remarks = strings.TrimSpace(remarks)
	var (
		plan     ReturnPlan
		returned []ReturnItem
		lost     []LostItem
	)
	for _, it := range tx.Items {
		in, ok := byID[it.BorrowedItemID]
		if !ok {
			in = ItemInput{BorrowedItemID: it.BorrowedItemID, Condition: ConditionGood}
		}
		fine := roundCents(float64(in.Fine))
		if fine < 0 {
			return ReturnPlan{}, errors.Wrapf(ErrNegativeFine, "borrowedItemId %d", it.BorrowedItemID)
		}
		plan.FineTotal += fine
		if in.FinePaid {
			plan.FinePaid += fine
		}

		if in.Lost {
			lost = append(lost, LostItem{
				BorrowedItemID: it.BorrowedItemID,
				Fine:           fine,
				FinePaid:       finePaid(in.FinePaid),
			})
			continue
		}

		cond := strings.TrimSpace(in.Condition)
		if cond == "" {
			cond = ConditionGood
		}
		if !validCondition(cond) {
			return ReturnPlan{}, errors.Wrapf(ErrInvalidCondition, "%q", cond)
		}
		returned = append(returned, ReturnItem{
			BorrowedItemID:  it.BorrowedItemID,
			ReturnCondition: cond,
			Fine:            fine,
			FinePaid:        finePaid(in.FinePaid),
		})
	}

	if len(lost) > 0 {
		plan.Lost = &LostSubmission{BorrowID: tx.BorrowID, Items: lost, Remarks: remarks}
	}
	if len(returned) > 0 {
		plan.Return = &ReturnSubmission{
			BorrowID:   tx.BorrowID,
			ReturnDate: FormatDate(now),
			Items:      returned,
			Remarks:    remarks,
		}
	}
	plan.FineTotal = roundCents(plan.FineTotal)
	plan.FinePaid = roundCents(plan.FinePaid)
	return plan, nil
}
