package jsondb

import (
	"fmt"
	"strconv"
)

// ID is a sequential 64-bit row identifier assigned by a [Table].
//
// IDs start at 1 and grow monotonically. A table never hands out the same ID
// twice within a process, even after the row it belonged to is deleted. The
// zero value means "not assigned yet"; no stored row ever has ID 0.
type ID int64

// ParseID parses a decimal string into an ID.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid ID %q", s)
	}
	return ID(v), nil
}

// String returns the decimal representation of the ID.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// IsZero returns true if the ID is the zero value.
func (id ID) IsZero() bool {
	return id == 0
}
