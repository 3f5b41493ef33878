package entity

import "time"

// Kind classifies a transaction as money coming in or going out.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Valid reports whether k is one of the two persisted kinds.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Transaction represents a single income or expense record
type Transaction struct {
	ID      string    `json:"id"`
	OwnerID string    `json:"ownerId"`
	Amount  float64   `json:"amount"`
	Date    time.Time `json:"date"`
	Kind    Kind      `json:"kind"`
	Note    string    `json:"note,omitempty"`

	// Seq is a store-assigned insertion counter used to order listings.
	Seq uint64 `json:"seq"`
}

// Validate ensures the transaction meets all requirements. Amount
// carries no constraint: zero is a valid value, presence is enforced at
// the request boundary, and the sign is not checked against Kind; the
// kind alone distinguishes income from expense.
func (t *Transaction) Validate() error {
	if t.OwnerID == "" {
		return &ValidationError{Field: "ownerId", Reason: "owner is required"}
	}

	if t.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "date is required"}
	}

	if !t.Kind.Valid() {
		return &ValidationError{Field: "kind", Reason: `kind must be "income" or "expense"`}
	}

	return nil
}

// TransactionUpdate carries the fields a caller may overwrite on an
// existing transaction. Nil pointers mean "leave unchanged". The owner
// is deliberately absent: it is assigned at creation and never moves.
type TransactionUpdate struct {
	Amount *float64
	Date   *time.Time
	Kind   *Kind
	Note   *string
}

// Apply overwrites the supplied fields on t. ID, OwnerID and Seq are
// never touched.
func (u *TransactionUpdate) Apply(t *Transaction) {
	if u.Amount != nil {
		t.Amount = *u.Amount
	}
	if u.Date != nil {
		t.Date = *u.Date
	}
	if u.Kind != nil {
		t.Kind = *u.Kind
	}
	if u.Note != nil {
		t.Note = *u.Note
	}
}
