package trackit

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Notebook is a named ledger holding one currency and its transactions.
//
// The transaction list is insertion-ordered; display order is always
// re-derived by the view functions. Every mutating method returns a modified
// copy and leaves the receiver untouched.
type Notebook struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Currency     string        `json:"currency"`
	Transactions []Transaction `json:"transactions"`
	CreatedAt    int64         `json:"createdAt"` // epoch milliseconds
}

// MarshalJSON writes the notebook with canonical key order.
func (n Notebook) MarshalJSON() ([]byte, error) {
	txs := n.Transactions
	if txs == nil {
		txs = []Transaction{}
	}
	var w jsonObjectWriter
	w.Append("id", n.ID)
	w.Append("name", n.Name)
	w.Append("currency", n.Currency)
	w.Append("transactions", txs)
	w.Append("createdAt", n.CreatedAt)
	return w.MarshalJSON()
}

// NewNotebookID returns a fresh unique notebook id with an embedded creation
// timestamp; the loader backfill rule for createdAt depends on it.
func NewNotebookID() string {
	return fmt.Sprintf("notebook-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// TransactionForm is the textual input recorded for a transaction, as
// captured at the edge (a CLI flag set or an import row). The store parses
// the amount and assigns ids; it does not re-validate the rest.
type TransactionForm struct {
	Date        string
	Item        string
	Type        TransactionType
	Category    Category
	Amount      string
	PaymentMode string
	Description string
	Comments    string
}

func (f TransactionForm) apply(t Transaction) Transaction {
	t.Date = DateOf(f.Date)
	t.Item = f.Item
	t.Type = f.Type
	t.Category = f.Category
	t.Amount = ParseAmount(f.Amount)
	t.PaymentMode = f.PaymentMode
	t.Description = f.Description
	t.Comments = f.Comments
	return t
}

// AddTransaction appends a new transaction built from the form, assigning a
// fresh unique id and normalizing the textual amount (unparsable becomes 0).
func (n Notebook) AddTransaction(f TransactionForm) Notebook {
	tx := f.apply(Transaction{ID: NewTransactionID()})
	txs := make([]Transaction, 0, len(n.Transactions)+1)
	txs = append(txs, n.Transactions...)
	n.Transactions = append(txs, tx)
	return n
}

// EditTransaction replaces the fields of the transaction with the given id by
// the form's values, re-parsing the amount the same way as AddTransaction.
// The notebook is returned unchanged when the id is not found.
func (n Notebook) EditTransaction(id string, f TransactionForm) Notebook {
	txs := make([]Transaction, len(n.Transactions))
	copy(txs, n.Transactions)
	for i, tx := range txs {
		if tx.ID == id {
			txs[i] = f.apply(tx)
			n.Transactions = txs
			return n
		}
	}
	return n
}

// DeleteTransaction removes the transaction with the given id; it is a no-op
// when the id is not found.
func (n Notebook) DeleteTransaction(id string) Notebook {
	txs := make([]Transaction, 0, len(n.Transactions))
	found := false
	for _, tx := range n.Transactions {
		if tx.ID == id {
			found = true
			continue
		}
		txs = append(txs, tx)
	}
	if found {
		n.Transactions = txs
	}
	return n
}

// FindTransaction returns the transaction with the given id, if present.
func (n Notebook) FindTransaction(id string) (Transaction, bool) {
	for _, tx := range n.Transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return Transaction{}, false
}

// backfill applies the backward-compatibility defaults on load: records
// written by older revisions may miss currency, createdAt, or the
// transaction list entirely.
func (n *Notebook) backfill() {
	if n.Currency == "" {
		n.Currency = DefaultCurrency
	}
	if n.CreatedAt == 0 {
		if ms, ok := idTimestamp(n.ID); ok {
			n.CreatedAt = ms
		} else {
			n.CreatedAt = time.Now().UnixMilli()
		}
	}
	if n.Transactions == nil {
		n.Transactions = []Transaction{}
	}
}
