package trackit

import (
	"reflect"
	"testing"
	"time"
)

func TestNotebook_AddTransaction(t *testing.T) {
	nb := Notebook{ID: "nb", Name: "Home", Currency: "$"}

	got := nb.AddTransaction(TransactionForm{
		Date:        "2024-06-01",
		Item:        "Coffee",
		Type:        Expenditure,
		Category:    "Food & Drink",
		Amount:      "4.50",
		PaymentMode: "Cash",
	})

	if len(nb.Transactions) != 0 {
		t.Error("AddTransaction mutated the receiver")
	}
	if len(got.Transactions) != 1 {
		t.Fatalf("got %d transactions, want 1", len(got.Transactions))
	}
	tx := got.Transactions[0]
	if tx.ID == "" {
		t.Error("transaction id not assigned")
	}
	if !tx.Amount.Equal(A(4.5)) {
		t.Errorf("Amount = %s, want 4.5", tx.Amount)
	}
	if tx.Item != "Coffee" || tx.Category != "Food & Drink" || tx.PaymentMode != "Cash" {
		t.Errorf("fields not carried over: %+v", tx)
	}
}

func TestNotebook_AddTransaction_AmountFallback(t *testing.T) {
	cases := map[string]string{
		"unparsable": "twelve",
		"empty":      "",
		"negative":   "-5",
	}
	for name, amount := range cases {
		t.Run(name, func(t *testing.T) {
			nb := Notebook{}.AddTransaction(TransactionForm{Item: "X", Type: Expenditure, Amount: amount})
			if got := nb.Transactions[0].Amount; !got.IsZero() {
				t.Errorf("Amount = %s, want 0", got)
			}
		})
	}
}

func TestNotebook_EditTransaction(t *testing.T) {
	nb := Notebook{Transactions: []Transaction{
		{ID: "t1", Item: "Coffee", Type: Expenditure, Amount: ParseAmount("4.50"), Comments: "morning"},
		{ID: "t2", Item: "Rent", Type: Expenditure, Amount: ParseAmount("800")},
	}}

	got := nb.EditTransaction("t1", TransactionForm{
		Date:   "2024-06-02",
		Item:   "Espresso",
		Type:   Expenditure,
		Amount: "5.00",
	})

	tx, ok := got.FindTransaction("t1")
	if !ok {
		t.Fatal("edited transaction disappeared")
	}
	if tx.Item != "Espresso" || !tx.Amount.Equal(A(5)) {
		t.Errorf("edit not applied: %+v", tx)
	}
	// The merge covers every form field: an empty form value clears the old one.
	if tx.Comments != "" {
		t.Errorf("Comments = %q, want cleared", tx.Comments)
	}
	if other, _ := got.FindTransaction("t2"); other.Item != "Rent" {
		t.Errorf("unrelated transaction changed: %+v", other)
	}
	if nb.Transactions[0].Item != "Coffee" {
		t.Error("EditTransaction mutated the receiver")
	}
}

func TestNotebook_EditTransaction_UnknownIDIsNoop(t *testing.T) {
	nb := Notebook{Transactions: []Transaction{{ID: "t1", Item: "Coffee"}}}
	got := nb.EditTransaction("nope", TransactionForm{Item: "Changed"})
	if !reflect.DeepEqual(got, nb) {
		t.Errorf("edit of unknown id changed the notebook: %+v", got)
	}
}

func TestNotebook_DeleteTransaction(t *testing.T) {
	nb := Notebook{Transactions: []Transaction{{ID: "t1"}, {ID: "t2"}}}

	got := nb.DeleteTransaction("t1")
	if len(got.Transactions) != 1 || got.Transactions[0].ID != "t2" {
		t.Errorf("delete result: %+v", got.Transactions)
	}

	// Unknown id is a no-op.
	got = got.DeleteTransaction("t1")
	if len(got.Transactions) != 1 {
		t.Errorf("second delete changed the list: %+v", got.Transactions)
	}
}

func TestNotebook_Backfill(t *testing.T) {
	t.Run("createdAt from id timestamp", func(t *testing.T) {
		nb := Notebook{ID: "notebook-1716899000000-abcd1234"}
		nb.backfill()
		if nb.CreatedAt != 1716899000000 {
			t.Errorf("CreatedAt = %d, want the id's embedded timestamp", nb.CreatedAt)
		}
		if nb.Currency != DefaultCurrency {
			t.Errorf("Currency = %q, want default", nb.Currency)
		}
		if nb.Transactions == nil {
			t.Error("Transactions still nil after backfill")
		}
	})

	t.Run("createdAt falls back to now", func(t *testing.T) {
		before := time.Now().UnixMilli()
		nb := Notebook{ID: "legacy-id"}
		nb.backfill()
		if nb.CreatedAt < before {
			t.Errorf("CreatedAt = %d, want a current timestamp", nb.CreatedAt)
		}
	})

	t.Run("existing values kept", func(t *testing.T) {
		nb := Notebook{ID: "n", Currency: "$", CreatedAt: 42, Transactions: []Transaction{{ID: "t"}}}
		nb.backfill()
		if nb.Currency != "$" || nb.CreatedAt != 42 || len(nb.Transactions) != 1 {
			t.Errorf("backfill overwrote existing values: %+v", nb)
		}
	})
}
