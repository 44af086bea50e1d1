package circulation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/kcls/circulation/gateway/internal/model"
)

type Filter string

const (
	FilterAll            Filter = "All"
	FilterPending        Filter = "Pending approval"
	FilterAwaitingPickup Filter = "Awaiting pickup"
	FilterBorrowed       Filter = "Borrowed"
	FilterOverdue        Filter = "Overdue"
	FilterReturned       Filter = "Returned"
	FilterRejected       Filter = "Rejected"
)

// ParseFilter matches case-insensitively; anything unknown means All.
func ParseFilter(s string) Filter {
	for _, f := range []Filter{FilterPending, FilterAwaitingPickup, FilterBorrowed, FilterOverdue, FilterReturned, FilterRejected} {
		if strings.EqualFold(strings.TrimSpace(s), string(f)) {
			return f
		}
	}
	return FilterAll
}

func (f Filter) Match(s Status) bool {
	switch f {
	case FilterPending:
		return s.Label == LabelPendingApproval
	case FilterAwaitingPickup:
		return s.Label == LabelApproved
	case FilterBorrowed:
		return s.Label == LabelBorrowed
	case FilterOverdue:
		return strings.HasPrefix(s.Label, LabelOverdue)
	case FilterReturned:
		return s.Label == LabelReturned
	case FilterRejected:
		return s.Label == LabelRejected
	}
	return true
}

type Tallies struct {
	Total          int `json:"total"`
	Pending        int `json:"pending"`
	AwaitingPickup int `json:"awaitingPickup"`
	Borrowed       int `json:"borrowed"`
	Overdue        int `json:"overdue"`
	Returned       int `json:"returned"`
	Rejected       int `json:"rejected"`
	Active         int `json:"active"`
}

func (t *Tallies) Add(s Status) {
	t.Total++
	switch {
	case strings.HasPrefix(s.Label, LabelOverdue):
		t.Overdue++
	case s.Label == LabelPendingApproval:
		t.Pending++
	case s.Label == LabelApproved:
		t.AwaitingPickup++
		t.Active++
	case s.Label == LabelBorrowed:
		t.Borrowed++
		t.Active++
	case s.Label == LabelReturned:
		t.Returned++
	case s.Label == LabelRejected:
		t.Rejected++
	}
}

// MatchSearch reports whether the trimmed query is a case-insensitive
// substring of any field. An empty query matches everything.
func MatchSearch(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// SortNewestFirst orders by borrow date descending, then by id descending.
// Unparseable borrow dates sort last.
func SortNewestFirst(txs []model.BorrowTransaction, loc *time.Location) {
	key := func(tx model.BorrowTransaction) int64 {
		t, ok := ParseDue(tx.BorrowDate, loc)
		if !ok {
			return 0
		}
		return t.UnixMilli()
	}
	sort.SliceStable(txs, func(i, j int) bool {
		ti, tj := key(txs[i]), key(txs[j])
		if ti != tj {
			return ti > tj
		}
		return txs[i].BorrowID > txs[j].BorrowID
	})
}

// BorrowerName renders "First M. Last", falling back to the username and
// then to the id.
func BorrowerName(id int, b *model.Borrower) string {
	if b != nil {
		f := strings.TrimSpace(b.Firstname)
		m := strings.TrimSpace(b.Middlename)
		l := strings.TrimSpace(b.Lastname)
		name := f
		if m != "" {
			name += " " + string([]rune(m)[:1]) + "."
		}
		name = strings.TrimSpace(name + " " + l)
		if name != "" {
			return name
		}
		if b.Username != "" {
			return b.Username
		}
	}
	if id == 0 {
		return ""
	}
	return fmt.Sprintf("Borrower #%d", id)
}
