// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	. "src.echolib.dev/pkg/store/storedefs"
)

var (
	entries = []string{
		"[1, 2]",
		"{a: 1}",
		"[1, [2, 3]]",
		"hello",
	}
	// All entries after they are added, with 1-based sequence numbers.
	allEntries = []Entry{
		{Text: "[1, 2]", Seq: 1},
		{Text: "{a: 1}", Seq: 2},
		{Text: "[1, [2, 3]]", Seq: 3},
		{Text: "hello", Seq: 4},
	}
)

// TestHistory tests the history functionality of a Store.
func TestHistory(t *testing.T, store Store) {
	startSeq, err := store.NextSeq()
	if startSeq != 1 || err != nil {
		t.Errorf("store.NextSeq() -> %v, %v, want %v, nil", startSeq, err, 1)
	}

	for i, text := range entries {
		wantSeq := startSeq + i
		seq, err := store.AddEntry(text)
		if seq != wantSeq || err != nil {
			t.Errorf("store.AddEntry(%q) -> %v, %v, want %v, nil", text, seq, err, wantSeq)
		}
	}

	endSeq, err := store.NextSeq()
	if wantEndSeq := startSeq + len(entries); endSeq != wantEndSeq || err != nil {
		t.Errorf("store.NextSeq() -> %v, %v, want %v, nil", endSeq, err, wantEndSeq)
	}

	for _, want := range allEntries {
		text, err := store.Entry(want.Seq)
		if text != want.Text || err != nil {
			t.Errorf("store.Entry(%v) -> %q, %v, want %q, nil", want.Seq, text, err, want.Text)
		}
	}
	if _, err := store.Entry(endSeq); err != ErrNoMatchingEntry {
		t.Errorf("store.Entry(%v) -> error %v, want %v", endSeq, err, ErrNoMatchingEntry)
	}

	got, err := store.Entries(0, endSeq)
	if diff := cmp.Diff(allEntries, got); diff != "" || err != nil {
		t.Errorf("store.Entries(0, %v) -> error %v, diff (-want +got):\n%s", endSeq, err, diff)
	}
	got, _ = store.Entries(2, 4)
	if diff := cmp.Diff(allEntries[1:3], got); diff != "" {
		t.Errorf("store.Entries(2, 4) diff (-want +got):\n%s", diff)
	}

	prevTests := []struct {
		upto   int
		prefix string
		want   Entry
		err    error
	}{
		{endSeq, "", allEntries[3], nil},
		{100, "[1", allEntries[2], nil},
		{3, "[1", allEntries[0], nil},
		{4, "{", allEntries[1], nil},
		{1, "", Entry{}, ErrNoMatchingEntry},
		{endSeq, "nope", Entry{}, ErrNoMatchingEntry},
	}
	for _, test := range prevTests {
		entry, err := store.PrevEntry(test.upto, test.prefix)
		if entry != test.want || err != test.err {
			t.Errorf("store.PrevEntry(%v, %q) -> %v, %v, want %v, %v",
				test.upto, test.prefix, entry, err, test.want, test.err)
		}
	}

	if err := store.DelEntry(1); err != nil {
		t.Errorf("store.DelEntry(1) -> error %v", err)
	}
	if _, err := store.Entry(1); err != ErrNoMatchingEntry {
		t.Errorf("store.Entry(1) after deletion -> error %v, want %v", err, ErrNoMatchingEntry)
	}
	if err := store.DelEntry(1); err != nil {
		t.Errorf("deleting a deleted entry -> error %v", err)
	}
}
