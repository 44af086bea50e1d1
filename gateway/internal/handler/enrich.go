package handler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kcls/circulation/gateway/internal/circulation"
	"github.com/kcls/circulation/gateway/internal/model"
)

type itemMeta struct {
	title, author string
}

// lookups holds what one request resolved; nothing outlives the request.
type lookups struct {
	mu        sync.Mutex
	due       map[int]time.Time
	borrowers map[int]model.Borrower
	books     map[int]itemMeta
	docs      map[int]itemMeta
}

func (l *lookups) set(fn func()) {
	l.mu.Lock()
	fn()
	l.mu.Unlock()
}

// resolve fetches due dates, borrower names and item titles for txs with at
// most h.concurrency calls in flight. Failed lookups are left out and the
// views fall back to placeholders.
func (h *Handler) resolve(ctx context.Context, txs []model.BorrowTransaction) *lookups {
	l := &lookups{
		due:       make(map[int]time.Time),
		borrowers: make(map[int]model.Borrower),
		books:     make(map[int]itemMeta),
		docs:      make(map[int]itemMeta),
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.concurrency)

	seenBorrower := make(map[int]struct{})
	seenCopy := make(map[int]struct{})
	seenStorage := make(map[int]struct{})
	for _, tx := range txs {
		tx := tx
		if due, ok := circulation.ParseDue(tx.ReturnDate, h.loc); ok {
			l.set(func() { l.due[tx.BorrowID] = due })
		} else {
			g.Go(func() error {
				if due, ok := h.fetchDue(gctx, tx.BorrowID); ok {
					l.set(func() { l.due[tx.BorrowID] = due })
				}
				return nil
			})
		}

		if _, ok := seenBorrower[tx.BorrowerID]; !ok && tx.BorrowerID > 0 {
			seenBorrower[tx.BorrowerID] = struct{}{}
			id := tx.BorrowerID
			g.Go(func() error {
				b, _, err := h.userSvc.Borrower(gctx, id)
				if err != nil {
					h.log.Debug("borrower lookup", zap.Int("borrowerId", id), zap.Error(err))
					return nil
				}
				l.set(func() { l.borrowers[id] = b })
				return nil
			})
		}

		for _, it := range tx.Items {
			switch {
			case it.ItemType == model.ItemBook && it.BookCopyID > 0:
				if _, ok := seenCopy[it.BookCopyID]; ok {
					continue
				}
				seenCopy[it.BookCopyID] = struct{}{}
				id := it.BookCopyID
				g.Go(func() error {
					if m, ok := h.bookMeta(gctx, id); ok {
						l.set(func() { l.books[id] = m })
					}
					return nil
				})
			case it.ItemType == model.ItemDocument && it.DocumentStorageID > 0:
				if _, ok := seenStorage[it.DocumentStorageID]; ok {
					continue
				}
				seenStorage[it.DocumentStorageID] = struct{}{}
				id := it.DocumentStorageID
				g.Go(func() error {
					if m, ok := h.documentMeta(gctx, id); ok {
						l.set(func() { l.docs[id] = m })
					}
					return nil
				})
			}
		}
	}
	// lookups degrade on their own and never fail the group
	if err := g.Wait(); err != nil {
		h.log.Warn("resolve lookups", zap.Error(err))
	}
	return l
}

func (h *Handler) fetchDue(ctx context.Context, borrowID int) (time.Time, bool) {
	raw, _, err := h.borrowSvc.DueDate(ctx, borrowID)
	if err != nil {
		h.log.Debug("due date lookup", zap.Int("borrowId", borrowID), zap.Error(err))
		return time.Time{}, false
	}
	return circulation.ParseDue(raw, h.loc)
}

// dueFor resolves the due date of a single transaction.
func (h *Handler) dueFor(ctx context.Context, tx model.BorrowTransaction) *time.Time {
	if due, ok := circulation.ParseDue(tx.ReturnDate, h.loc); ok {
		return &due
	}
	if due, ok := h.fetchDue(ctx, tx.BorrowID); ok {
		return &due
	}
	return nil
}

func (h *Handler) bookMeta(ctx context.Context, copyID int) (itemMeta, bool) {
	inv, _, err := h.catalogSvc.BookCopy(ctx, copyID)
	if err != nil {
		h.log.Debug("book copy lookup", zap.Int("copyId", copyID), zap.Error(err))
		return itemMeta{}, false
	}
	bookID := inv.BookID
	if bookID == 0 {
		bookID = copyID
	}
	book, _, err := h.catalogSvc.Book(ctx, bookID)
	if err != nil || book.Title == "" {
		h.log.Debug("book lookup", zap.Int("bookId", bookID), zap.Error(err))
		return itemMeta{}, false
	}
	return itemMeta{title: book.Title, author: book.Author}, true
}

func (h *Handler) documentMeta(ctx context.Context, storageID int) (itemMeta, bool) {
	inv, _, err := h.catalogSvc.DocumentStorage(ctx, storageID)
	if err != nil {
		h.log.Debug("document storage lookup", zap.Int("storageId", storageID), zap.Error(err))
		return itemMeta{}, false
	}
	docID := inv.DocumentID
	if docID == 0 {
		docID = storageID
	}
	doc, _, err := h.catalogSvc.Document(ctx, docID)
	if err != nil || doc.Title == "" {
		h.log.Debug("document lookup", zap.Int("documentId", docID), zap.Error(err))
		return itemMeta{}, false
	}
	return itemMeta{title: doc.Title, author: doc.Author}, true
}

func (h *Handler) views(ctx context.Context, txs []model.BorrowTransaction, finePerDay float64) []BorrowView {
	l := h.resolve(ctx, txs)
	now := h.clock.Now()

	out := make([]BorrowView, 0, len(txs))
	for _, tx := range txs {
		var due *time.Time
		if d, ok := l.due[tx.BorrowID]; ok {
			due = &d
		}
		var borrower *model.Borrower
		if b, ok := l.borrowers[tx.BorrowerID]; ok {
			borrower = &b
		}
		out = append(out, h.view(tx, due, borrower, l, finePerDay, now))
	}
	return out
}

func (h *Handler) view(tx model.BorrowTransaction, due *time.Time, borrower *model.Borrower, l *lookups, finePerDay float64, now time.Time) BorrowView {
	v := BorrowView{
		BorrowTransaction: tx,
		Items:             make([]ItemView, 0, len(tx.Items)),
		Status:            circulation.Derive(tx, due, now),
		DueDescriptor:     circulation.DueDescriptor(due, now),
		BorrowerName:      circulation.BorrowerName(tx.BorrowerID, borrower),
		due:               due,
	}
	if due != nil {
		v.DueDate = circulation.FormatDate(due.In(h.loc))
	}
	if tx.RetrievalStatus == circulation.RetrievalDone && tx.ReturnStatus != circulation.ReturnDone {
		if due != nil {
			v.DaysOverdue = circulation.DaysOverdue(*due, now)
		}
		v.SuggestedFine = circulation.Fine(due, now, finePerDay)
	}
	for _, it := range tx.Items {
		iv := ItemView{BorrowedItem: it}
		var m itemMeta
		switch it.ItemType {
		case model.ItemBook:
			m = l.books[it.BookCopyID]
		case model.ItemDocument:
			m = l.docs[it.DocumentStorageID]
		}
		iv.Title, iv.Author = m.title, m.author
		v.Items = append(v.Items, iv)
	}
	return v
}
