// Package ranking defines the ordering contract for board listings,
// independent of how threads are fetched.
//
// Sticky threads always precede non-sticky threads. Sticky threads are
// ordered by creation time, newest first, and are never windowed.
// Non-sticky threads are ordered by bump time, newest first, and only
// the first window of them appears in a listing. Ties break on id,
// higher first, so ordering is deterministic when timestamps collide.
package ranking

import (
	"sort"

	"github.com/ashchan-dev/ashchan/internal/domain"
)

// Less reports whether a ranks above b in a board listing.
func Less(a, b domain.ThreadMetadata) bool {
	if a.IsSticky != b.IsSticky {
		return a.IsSticky
	}
	if a.IsSticky {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.Id > b.Id
	}
	if !a.BumpTime.Equal(b.BumpTime) {
		return a.BumpTime.After(b.BumpTime)
	}
	return a.Id > b.Id
}

// Order sorts threads in place into listing order.
func Order(threads []domain.ThreadMetadata) {
	sort.SliceStable(threads, func(i, j int) bool {
		return Less(threads[i], threads[j])
	})
}

// Listing orders threads and applies the non-sticky window. All sticky
// threads survive; at most window non-sticky threads do.
func Listing(threads []domain.ThreadMetadata, window int) []domain.ThreadMetadata {
	Order(threads)

	listing := make([]domain.ThreadMetadata, 0, len(threads))
	bumped := 0
	for _, t := range threads {
		if !t.IsSticky {
			if bumped >= window {
				continue
			}
			bumped++
		}
		listing = append(listing, t)
	}
	return listing
}
