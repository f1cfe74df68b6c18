package trackit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// EncodeNotebooks writes the collection to w as a pretty-printed JSON array
// of notebooks in canonical key order. The same encoding serves as the
// persisted state and as the backup file format.
func EncodeNotebooks(w io.Writer, c Collection) error {
	if c == nil {
		c = Collection{}
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal notebooks: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write notebooks: %w", err)
	}
	return nil
}

// DecodeNotebooks reads a collection from r. The top-level value must be a
// JSON array of notebook records; anything else is rejected before any merge
// can happen. The backward-compatibility defaults are applied to every
// record on every load: a missing currency falls back to the default symbol,
// a missing createdAt is derived from the timestamp embedded in the id (or
// from now), and a missing transaction list becomes empty.
func DecodeNotebooks(r io.Reader) (Collection, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("cannot read notebooks: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("notebooks data must be a JSON array, got %v", tok)
	}

	c := Collection{}
	for dec.More() {
		var nb Notebook
		if err := dec.Decode(&nb); err != nil {
			return nil, fmt.Errorf("cannot decode notebook record: %w", err)
		}
		nb.backfill()
		c = append(c, nb)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("cannot read notebooks: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after the notebooks array")
	}
	return c, nil
}
