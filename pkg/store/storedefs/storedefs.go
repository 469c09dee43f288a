// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the store API
// do not need to depend on the concrete implementation.
package storedefs

import "errors"

// ErrNoMatchingEntry is returned when a query for a history entry has no
// result.
var ErrNoMatchingEntry = errors.New("no matching history entry")

// Store is the interface of the history storage.
type Store interface {
	// NextSeq returns the sequence number the next added entry will get.
	NextSeq() (int, error)
	// AddEntry adds an entry and returns its sequence number.
	AddEntry(text string) (int, error)
	// DelEntry deletes the entry with the given sequence number. Deleting a
	// nonexistent entry is not an error.
	DelEntry(seq int) error
	// Entry returns the text of the entry with the given sequence number.
	Entry(seq int) (string, error)
	// Entries returns all entries with sequence numbers in [from, upto).
	Entries(from, upto int) ([]Entry, error)
	// PrevEntry returns the last entry before upto with the given prefix.
	PrevEntry(upto int, prefix string) (Entry, error)
}

// Entry is an entry in the history.
type Entry struct {
	Text string
	Seq  int
}
