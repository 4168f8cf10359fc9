// Implements the generic table backed by a single JSON array file.

package jsondb

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

// Row is the constraint for table row types.
//
// T is expected to be a pointer to a struct. Clone must return a deep copy so
// that table accessors never leak aliased state.
type Row[T any] interface {
	// Clone returns a deep copy of the row.
	Clone() T
	// GetID returns the row's unique ID.
	GetID() ID
	// SetID assigns the row's unique ID. Called by the table on insert.
	SetID(ID)
	// Validate checks that the row is well-formed.
	Validate() error
}

// Table is a generic, concurrent-safe collection of rows persisted to a JSON
// array file. The zero value is not usable; create instances with [NewTable].
type Table[T Row[T]] struct {
	path string

	mu     sync.RWMutex
	rows   []T
	byID   map[ID]int // row ID -> index in rows
	nextID ID
}

// NewTable creates a table backed by the given file path, loading existing
// rows if the file exists.
func NewTable[T Row[T]](path string) (*Table[T], error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:gosec // G301: 0o755 is intentional for data directories
			return nil, fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
	}
	t := &Table[T]{path: path}
	if err := t.load(); err != nil {
		return nil, err
	}
	return t, nil
}

// Len returns the number of rows in the table.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// Last returns a clone of the last row, or false if empty.
func (t *Table[T]) Last() (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.rows) == 0 {
		var zero T
		return zero, false
	}
	return t.rows[len(t.rows)-1].Clone(), true
}

// Get returns a clone of the row with the given ID, or the zero value of T
// when no row has the ID.
func (t *Table[T]) Get(id ID) T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if idx, ok := t.byID[id]; ok {
		return t.rows[idx].Clone()
	}
	var zero T
	return zero
}

// All iterates over clones of all rows in insertion order. The read lock is
// held for the duration of the iteration; do not mutate the table from inside
// the loop.
func (t *Table[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.mu.RLock()
		defer t.mu.RUnlock()
		for _, row := range t.rows {
			if !yield(row.Clone()) {
				return
			}
		}
	}
}

// Append adds a row to the table and persists it. When the row's ID is zero
// the table assigns the next sequential ID; the assignment is visible to the
// caller through the row itself.
//
// On error the table is unchanged and any assigned ID is not consumed.
func (t *Table[T]) Append(row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := row.GetID()
	if id.IsZero() {
		id = t.nextID
		row.SetID(id)
	}
	if _, ok := t.byID[id]; ok {
		return fmt.Errorf("duplicate ID %s in %s", id, t.path)
	}
	if err := row.Validate(); err != nil {
		return err
	}

	rows := append(slices.Clone(t.rows), row)
	if err := t.save(rows); err != nil {
		return err
	}
	t.rows = rows
	t.byID[id] = len(rows) - 1
	if id >= t.nextID {
		t.nextID = id + 1
	}
	return nil
}

// Update replaces the row with the same ID and persists the change, returning
// the previous row. The zero value of T is returned when no row has the ID;
// absence is not an error.
func (t *Table[T]) Update(row T) (T, error) {
	var prev T
	t.mu.Lock()
	defer t.mu.Unlock()

	idx, ok := t.byID[row.GetID()]
	if !ok {
		return prev, nil
	}
	if err := row.Validate(); err != nil {
		return prev, err
	}

	rows := slices.Clone(t.rows)
	prev = rows[idx]
	rows[idx] = row
	if err := t.save(rows); err != nil {
		var zero T
		return zero, err
	}
	t.rows = rows
	return prev, nil
}

// Delete removes the row with the given ID and persists the change. Returns
// false when no row has the ID; absence is not an error. Deleting a row does
// not release its ID for reuse.
func (t *Table[T]) Delete(id ID) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx, ok := t.byID[id]
	if !ok {
		return false, nil
	}

	rows := slices.Delete(slices.Clone(t.rows), idx, idx+1)
	if err := t.save(rows); err != nil {
		return false, err
	}
	t.rows = rows
	delete(t.byID, id)
	// Rows past the deleted one shifted down by one.
	for i := idx; i < len(rows); i++ {
		t.byID[rows[i].GetID()] = i
	}
	return true, nil
}

//

// load reads the entire file into memory, replacing any current state. The
// next ID resumes at one past the highest ID on file.
func (t *Table[T]) load() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rows = nil
	t.byID = make(map[ID]int)
	t.nextID = 1

	data, err := os.ReadFile(t.path) //nolint:gosec // G304: path comes from the service layer, not user input
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", t.path, err)
	}

	var rows []T
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("failed to parse %s: %w", t.path, err)
	}

	for i, row := range rows {
		id := row.GetID()
		if id.IsZero() {
			return fmt.Errorf("row %d in %s has no ID", i, t.path)
		}
		if _, ok := t.byID[id]; ok {
			return fmt.Errorf("duplicate ID %s in %s", id, t.path)
		}
		if err := row.Validate(); err != nil {
			return fmt.Errorf("invalid row %s in %s: %w", id, t.path, err)
		}
		t.byID[id] = i
		if id >= t.nextID {
			t.nextID = id + 1
		}
	}
	t.rows = rows
	return nil
}

// save writes rows to the file as an indented JSON array. Callers must hold
// the write lock.
func (t *Table[T]) save(rows []T) error {
	if rows == nil {
		rows = []T{}
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", t.path, err)
	}
	data = append(data, '\n')

	// Write to a temp file in the same directory, then rename. Rename is
	// atomic on POSIX so a crash mid-write leaves the previous file intact.
	dir := filepath.Dir(t.path)
	f, err := os.CreateTemp(dir, filepath.Base(t.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpPath := f.Name()
	if _, err := f.Write(data); err != nil {
		return errors.Join(fmt.Errorf("failed to write %s: %w", tmpPath, err), f.Close(), os.Remove(tmpPath))
	}
	if err := f.Close(); err != nil {
		return errors.Join(fmt.Errorf("failed to close %s: %w", tmpPath, err), os.Remove(tmpPath))
	}
	if err := os.Rename(tmpPath, t.path); err != nil {
		return errors.Join(fmt.Errorf("failed to rename %s to %s: %w", tmpPath, t.path, err), os.Remove(tmpPath))
	}
	return nil
}
