package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validTransaction() *Transaction {
	return &Transaction{
		ID:      "tx-1",
		OwnerID: "user-1",
		Amount:  100,
		Date:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Kind:    KindIncome,
		Note:    "salary",
	}
}

func TestTransactionValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr string
	}{
		{
			name:   "valid income",
			mutate: func(tx *Transaction) {},
		},
		{
			name:   "valid expense with negative amount",
			mutate: func(tx *Transaction) { tx.Kind = KindExpense; tx.Amount = -42.5 },
		},
		{
			name:   "zero amount",
			mutate: func(tx *Transaction) { tx.Amount = 0 },
		},
		{
			name:    "missing owner",
			mutate:  func(tx *Transaction) { tx.OwnerID = "" },
			wantErr: "invalid ownerId",
		},
		{
			name:    "missing date",
			mutate:  func(tx *Transaction) { tx.Date = time.Time{} },
			wantErr: "invalid date",
		},
		{
			name:    "kind outside enumeration",
			mutate:  func(tx *Transaction) { tx.Kind = "transfer" },
			wantErr: "invalid kind",
		},
		{
			name:    "empty kind",
			mutate:  func(tx *Transaction) { tx.Kind = "" },
			wantErr: "invalid kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(tx)

			err := tx.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			var ve *ValidationError
			assert.True(t, errors.As(err, &ve), "validation failures must be ValidationError")
		})
	}
}

func TestTransactionUpdateApply(t *testing.T) {
	tx := validTransaction()

	newAmount := 150.0
	newNote := "bonus"
	newKind := KindExpense
	newDate := time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)

	update := &TransactionUpdate{
		Amount: &newAmount,
		Note:   &newNote,
		Kind:   &newKind,
		Date:   &newDate,
	}
	update.Apply(tx)

	assert.Equal(t, 150.0, tx.Amount)
	assert.Equal(t, "bonus", tx.Note)
	assert.Equal(t, KindExpense, tx.Kind)
	assert.Equal(t, newDate, tx.Date)

	// Identity fields are untouchable
	assert.Equal(t, "tx-1", tx.ID)
	assert.Equal(t, "user-1", tx.OwnerID)
}

func TestTransactionUpdateApplyPartial(t *testing.T) {
	tx := validTransaction()

	newAmount := 150.0
	update := &TransactionUpdate{Amount: &newAmount}
	update.Apply(tx)

	assert.Equal(t, 150.0, tx.Amount)
	assert.Equal(t, KindIncome, tx.Kind, "unset fields stay unchanged")
	assert.Equal(t, "salary", tx.Note)
	assert.Equal(t, "user-1", tx.OwnerID)
}

func TestKindValid(t *testing.T) {
	assert.True(t, KindIncome.Valid())
	assert.True(t, KindExpense.Valid())
	assert.False(t, Kind("transfer").Valid())
	assert.False(t, Kind("").Valid())
	assert.False(t, Kind("Income").Valid(), "enumeration is case sensitive")
}
