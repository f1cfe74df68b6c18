package trackit

import (
	"errors"
	"strings"
	"time"
)

// Collection is the full set of notebooks. It is a caller-owned snapshot:
// every store operation takes a collection and returns a new one, leaving the
// argument untouched. There is no global state.
type Collection []Notebook

// ErrEmptyName is returned when a notebook name trims to empty.
var ErrEmptyName = errors.New("notebook name must not be empty")

// CreateNotebook appends a fresh notebook with the given name and currency.
// The name must not trim to empty. An empty currency falls back to the
// default symbol. The created notebook is returned alongside the new
// collection; append position does not matter since display order is always
// re-derived by sort.
func CreateNotebook(c Collection, name, currency string) (Collection, Notebook, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return c, Notebook{}, ErrEmptyName
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	nb := Notebook{
		ID:           NewNotebookID(),
		Name:         name,
		Currency:     currency,
		Transactions: []Transaction{},
		CreatedAt:    time.Now().UnixMilli(),
	}
	out := make(Collection, 0, len(c)+1)
	out = append(out, c...)
	return append(out, nb), nb, nil
}

// DeleteNotebook removes the notebook with the given id; it is a no-op when
// the id is not found. Clearing any external "currently viewing" reference
// equal to this id is the caller's responsibility.
func DeleteNotebook(c Collection, id string) Collection {
	out := make(Collection, 0, len(c))
	for _, nb := range c {
		if nb.ID == id {
			continue
		}
		out = append(out, nb)
	}
	return out
}

// UpdateNotebook replaces the entry whose id matches nb.ID with the given
// value wholesale. It is a no-op when no entry matches.
func UpdateNotebook(c Collection, nb Notebook) Collection {
	out := make(Collection, len(c))
	copy(out, c)
	for i, existing := range out {
		if existing.ID == nb.ID {
			out[i] = nb
			break
		}
	}
	return out
}

// ImportNotebooks merges incoming notebooks into the collection,
// deduplicating by id: an incoming notebook whose id already exists is
// dropped entirely (its transactions are not merged), all others are
// appended. Repeated application with the same incoming set is idempotent.
func ImportNotebooks(c Collection, incoming []Notebook) Collection {
	existing := make(map[string]struct{}, len(c))
	for _, nb := range c {
		existing[nb.ID] = struct{}{}
	}
	out := make(Collection, 0, len(c)+len(incoming))
	out = append(out, c...)
	for _, nb := range incoming {
		if _, ok := existing[nb.ID]; ok {
			continue
		}
		existing[nb.ID] = struct{}{}
		out = append(out, nb)
	}
	return out
}

// Find returns the notebook with the given id, if present.
func (c Collection) Find(id string) (Notebook, bool) {
	for _, nb := range c {
		if nb.ID == id {
			return nb, true
		}
	}
	return Notebook{}, false
}
