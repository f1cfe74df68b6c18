package trackit

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// DefaultFile is the default collection file name.
const DefaultFile = "notebooks.json"

// LoadCollection reads the collection from the given JSON file. A missing
// file is not an error: it loads as an empty collection, so a fresh
// directory works out of the box.
func LoadCollection(path string) (Collection, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning, notebooks file %q does not exist, starting with an empty collection", path)
		return Collection{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open notebooks file %q: %w", path, err)
	}
	defer f.Close()

	c, err := DecodeNotebooks(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode notebooks file %q: %w", path, err)
	}
	return c, nil
}

// SaveCollection writes the collection to the given file, creating parent
// directories as needed. Persistence is best effort: the write is not
// atomic and there is no journaling.
func SaveCollection(path string, c Collection) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for %q: %w", path, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open notebooks file %q for writing: %w", path, err)
	}
	defer f.Close()

	return EncodeNotebooks(f, c)
}
