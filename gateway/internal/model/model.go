package model

// Field names mirror the KCLS backend payloads, which are raw column names.

type ItemType string

const (
	ItemBook     ItemType = "Book"
	ItemDocument ItemType = "Document"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleLibrarian Role = "librarian"
	RoleBorrower  Role = "borrower"
)

type BorrowTransaction struct {
	BorrowID        int            `json:"BorrowID"`
	BorrowerID      int            `json:"BorrowerID"`
	BorrowDate      string         `json:"BorrowDate"`
	Purpose         string         `json:"Purpose"`
	ApprovalStatus  string         `json:"ApprovalStatus"`
	RetrievalStatus string         `json:"RetrievalStatus"`
	ReturnStatus    string         `json:"ReturnStatus"`
	ReturnDate      string         `json:"ReturnDate"`
	Items           []BorrowedItem `json:"items"`
}

type BorrowedItem struct {
	BorrowedItemID    int      `json:"BorrowedItemID"`
	ItemType          ItemType `json:"ItemType"`
	BookCopyID        int      `json:"BookCopyID,omitempty"`
	DocumentStorageID int      `json:"DocumentStorageID,omitempty"`
	InitialCondition  string   `json:"InitialCondition,omitempty"`
}

type DueDate struct {
	DueDate string `json:"DueDate"`
}

type BookCopy struct {
	CopyID          int    `json:"Copy_ID"`
	BookID          int    `json:"Book_ID"`
	AccessionNumber string `json:"Accession_Number"`
	Availability    string `json:"Availability"`
	BookCondition   string `json:"BookCondition"`
}

type Book struct {
	BookID int    `json:"Book_ID"`
	Title  string `json:"Title"`
	Author string `json:"Author"`
}

type DocumentStorage struct {
	StorageID    int    `json:"Storage_ID"`
	DocumentID   int    `json:"Document_ID"`
	Availability string `json:"Availability"`
	Condition    string `json:"Condition"`
}

type Document struct {
	DocumentID int    `json:"Document_ID"`
	Title      string `json:"Title"`
	Author     string `json:"Author"`
}

type Borrower struct {
	UserID     int    `json:"UserID"`
	Username   string `json:"Username"`
	Firstname  string `json:"Firstname"`
	Middlename string `json:"Middlename"`
	Lastname   string `json:"Lastname"`
}

type AuditEntry struct {
	ActionCode string `json:"actionCode"`
	TargetType string `json:"targetType,omitempty"`
	TargetID   int    `json:"targetId,omitempty"`
	Details    string `json:"details,omitempty"`
	UserID     string `json:"userId,omitempty"`
}

type AuditFilter struct {
	UserID     string `query:"userId"`
	Action     string `query:"action"`
	TargetType string `query:"targetType"`
	TargetID   string `query:"targetId"`
	From       string `query:"from"`
	To         string `query:"to"`
	Limit      int    `query:"limit"`
}

type AuditRecord struct {
	AuditID        int    `json:"AuditID"`
	UserID         *int   `json:"UserID"`
	ActionCode     string `json:"ActionCode"`
	TargetTypeCode string `json:"TargetTypeCode"`
	TargetID       *int   `json:"TargetID"`
	Details        string `json:"Details"`
	IPAddress      string `json:"IPAddress"`
	UserAgent      string `json:"UserAgent"`
	CreatedAt      string `json:"CreatedAt"`
}

type Settings struct {
	Fine        float64 `json:"fine"`
	BorrowLimit int     `json:"borrow_limit"`
	Source      string  `json:"_source"`
}
