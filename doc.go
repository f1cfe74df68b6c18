// Package trackit provides the core types and functions for managing a set
// of personal finance notebooks. It is designed to be local-first and
// auditable, keeping the whole state in a single human-readable JSON file
// the user fully owns.
//
// The core functionalities include:
//   - Notebook Store: pure operations over a caller-owned Collection
//     snapshot (create, update, delete, import with id-based deduplication).
//   - Transaction Edits: notebook-level add, edit, and delete of earning and
//     expenditure records, with text amounts normalized on entry.
//   - Derived Views: stateless aggregation (totals, balance, category
//     breakdown), filtering, searching, and sorting of transaction lists,
//     and notebook ordering for overview listings.
//   - Interchange: CSV export of transaction listings and JSON
//     backup/restore of the full collection, with backward-compatible
//     defaults applied on every load.
//
// This package serves as the foundational logic for the `track` command-line
// tool; it performs no I/O besides the explicit load and save helpers.
package trackit
