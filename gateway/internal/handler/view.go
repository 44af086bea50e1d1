package handler

import (
	"time"

	"github.com/kcls/circulation/gateway/internal/circulation"
	"github.com/kcls/circulation/gateway/internal/model"
)

type ItemView struct {
	model.BorrowedItem
	Title  string `json:"title,omitempty"`
	Author string `json:"author,omitempty"`
}

// BorrowView is a backend transaction plus everything derived from it.
type BorrowView struct {
	model.BorrowTransaction
	Items         []ItemView         `json:"items"`
	Status        circulation.Status `json:"status"`
	DueDate       string             `json:"dueDate"`
	DueDescriptor string             `json:"dueDescriptor"`
	DaysOverdue   int                `json:"daysOverdue"`
	SuggestedFine float64            `json:"suggestedFine"`
	BorrowerName  string             `json:"borrowerName"`

	due *time.Time
}

type listBorrowsResponse struct {
	Transactions []BorrowView        `json:"transactions"`
	Tallies      circulation.Tallies `json:"tallies"`
	FinePerDay   float64             `json:"finePerDay"`
	Filter       circulation.Filter  `json:"filter"`
}

type fineResponse struct {
	BorrowID   int     `json:"borrowId"`
	DueDate    string  `json:"dueDate"`
	Days       int     `json:"days"`
	FinePerDay float64 `json:"finePerDay"`
	Fine       float64 `json:"fine"`
}

type returnDraftResponse struct {
	BorrowID      int                     `json:"borrowId"`
	DueDate       string                  `json:"dueDate"`
	SuggestedFine float64                 `json:"suggestedFine"`
	Conditions    []string                `json:"conditions"`
	Items         []circulation.ItemInput `json:"items"`
}

type returnRequest struct {
	Items   []circulation.ItemInput `json:"items"`
	Remarks string                  `json:"remarks"`
}

type returnResponse struct {
	BorrowID   int                `json:"borrowId"`
	ReturnDate string             `json:"returnDate,omitempty"`
	Returned   int                `json:"returned"`
	Lost       int                `json:"lost"`
	FineTotal  float64            `json:"fineTotal"`
	FinePaid   float64            `json:"finePaid"`
	Status     circulation.Status `json:"status"`
}

type transitionResponse struct {
	BorrowID int                `json:"borrowId"`
	Action   circulation.Action `json:"action"`
	Status   circulation.Status `json:"status"`
}
