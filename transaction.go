package trackit

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TransactionType distinguishes money going out from money coming in.
type TransactionType string

// The two transaction types. The wire strings are fixed by the persisted
// schema.
const (
	Expenditure TransactionType = "Expenditure"
	Earning     TransactionType = "Earning"
)

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Expenditure:
		return Expenditure, nil
	case Earning:
		return Earning, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Category labels an expenditure or earning. The reference set is closed, but
// the field is optional in the data model: legacy records without a category
// are accepted and round-trip with the field absent.
type Category string

// Categories returns the fixed reference set offered when recording a
// transaction.
func Categories() []Category {
	return []Category{
		"Food & Drink", "Shopping", "Transport", "Bills & Utilities",
		"Entertainment", "Health", "Salary", "Investment", "Gift", "Others",
	}
}

// Transaction is one earning or expenditure record within a notebook.
type Transaction struct {
	ID          string          `json:"id"`
	Date        Date            `json:"date"`
	Item        string          `json:"item"`
	Type        TransactionType `json:"type"`
	Category    Category        `json:"category,omitempty"`
	Amount      Amount          `json:"amount"`
	PaymentMode string          `json:"paymentMode"`
	Description string          `json:"description"`
	Comments    string          `json:"comments"`
}

// MarshalJSON writes the transaction with canonical key order. The category
// field is omitted when empty (it is optional in the schema).
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("date", t.Date)
	w.Append("item", t.Item)
	w.Append("type", t.Type)
	w.Optional("category", t.Category)
	w.Append("amount", t.Amount)
	w.Append("paymentMode", t.PaymentMode)
	w.Append("description", t.Description)
	w.Append("comments", t.Comments)
	return w.MarshalJSON()
}

// NewTransactionID returns a fresh unique transaction id. The embedded
// timestamp keeps ids roughly chronological; the random suffix makes two ids
// minted in the same millisecond distinct.
func NewTransactionID() string {
	return fmt.Sprintf("txn-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// idTimestamp extracts the epoch-millisecond timestamp embedded in an id of
// the form "<prefix>-<millis>[-<suffix>]".
func idTimestamp(id string) (int64, bool) {
	parts := strings.Split(id, "-")
	if len(parts) < 2 {
		return 0, false
	}
	ms, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || ms <= 0 {
		return 0, false
	}
	return ms, true
}
