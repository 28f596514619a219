package workflow

import "sort"

// History is the append-only routing ledger of a document. Insertion order is
// chronological order; entries are never reordered or mutated in place. All
// mutation happens through Append, which copies.
type History []RoutingEntry

// Append returns a new History with the entry added. The receiver is left
// untouched so document snapshots stay immutable.
func (h History) Append(entry RoutingEntry) History {
	out := make(History, len(h), len(h)+1)
	copy(out, h)
	return append(out, entry)
}

// First returns the earliest entry in the total order (timestamp ascending,
// ties by insertion order). Used as the submission anchor for approval-time
// analytics; callers fall back to the upload date when the ledger is empty.
func (h History) First() (RoutingEntry, bool) {
	if len(h) == 0 {
		return RoutingEntry{}, false
	}
	first := h[0]
	for _, e := range h[1:] {
		if e.Timestamp.Before(first.Timestamp) {
			first = e
		}
	}
	return first, true
}

// LatestByAction returns the most recent entry with the given action, by
// timestamp descending. Equal timestamps resolve to the later insertion.
func (h History) LatestByAction(action EntryAction) (RoutingEntry, bool) {
	var latest RoutingEntry
	found := false
	for _, e := range h {
		if e.Action != action {
			continue
		}
		if !found || !e.Timestamp.Before(latest.Timestamp) {
			latest = e
			found = true
		}
	}
	return latest, found
}

// AllByAction returns every entry with the given action, in ledger order.
// Used for multi-hop forwarding history.
func (h History) AllByAction(action EntryAction) History {
	var out History
	for _, e := range h {
		if e.Action == action {
			out = append(out, e)
		}
	}
	return out
}

// Sorted returns a copy ordered by timestamp ascending with ties broken by
// insertion order. The ledger itself is normally already chronological; this
// guards against stores that return rows unordered.
func (h History) Sorted() History {
	out := make(History, len(h))
	copy(out, h)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}
