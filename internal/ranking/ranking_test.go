package ranking

import (
	"fmt"
	"testing"
	"time"

	"github.com/ashchan-dev/ashchan/internal/domain"
	"github.com/stretchr/testify/assert"
)

var base = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func thread(id int64, sticky bool, created, bumped time.Duration) domain.ThreadMetadata {
	return domain.ThreadMetadata{
		Id:        id,
		Board:     "b",
		IsSticky:  sticky,
		CreatedAt: base.Add(created),
		BumpTime:  base.Add(bumped),
	}
}

func ids(threads []domain.ThreadMetadata) []int64 {
	out := make([]int64, len(threads))
	for i, t := range threads {
		out[i] = t.Id
	}
	return out
}

func TestLess(t *testing.T) {
	tests := []struct {
		name string
		a, b domain.ThreadMetadata
		want bool
	}{
		{
			name: "sticky beats fresher bump",
			a:    thread(1, true, 0, 0),
			b:    thread(2, false, time.Hour, 48*time.Hour),
			want: true,
		},
		{
			name: "non-sticky never beats sticky",
			a:    thread(2, false, time.Hour, 48*time.Hour),
			b:    thread(1, true, 0, 0),
			want: false,
		},
		{
			name: "sticky pair orders by created_at desc",
			a:    thread(1, true, 2*time.Hour, 0),
			b:    thread(2, true, time.Hour, 10*time.Hour),
			want: true,
		},
		{
			name: "non-sticky pair orders by bump_time desc",
			a:    thread(1, false, 0, 3*time.Hour),
			b:    thread(2, false, time.Hour, 2*time.Hour),
			want: true,
		},
		{
			name: "equal bump_time breaks on higher id",
			a:    thread(9, false, 0, time.Hour),
			b:    thread(4, false, 0, time.Hour),
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Less(tt.a, tt.b))
		})
	}
}

func TestOrder(t *testing.T) {
	threads := []domain.ThreadMetadata{
		thread(1, false, 0, time.Hour),
		thread(2, true, time.Minute, time.Minute),
		thread(3, false, 0, 3*time.Hour),
		thread(4, true, 2*time.Minute, 0),
		thread(5, false, 0, 2*time.Hour),
	}

	Order(threads)

	// sticky by created_at desc, then non-sticky by bump_time desc
	assert.Equal(t, []int64{4, 2, 3, 5, 1}, ids(threads))
}

func TestListing_WindowAppliesToNonStickyOnly(t *testing.T) {
	var threads []domain.ThreadMetadata
	for i := int64(1); i <= 25; i++ {
		threads = append(threads, thread(i, false, 0, time.Duration(i)*time.Minute))
	}
	threads = append(threads, thread(100, true, 0, 0), thread(101, true, time.Minute, 0))

	listing := Listing(threads, 20)

	assert.Len(t, listing, 22)
	assert.Equal(t, int64(101), listing[0].Id)
	assert.Equal(t, int64(100), listing[1].Id)
	for _, meta := range listing[2:] {
		assert.False(t, meta.IsSticky)
	}
	// newest bump first, oldest five fell out of the window
	assert.Equal(t, int64(25), listing[2].Id)
	assert.Equal(t, int64(6), listing[21].Id)
}

func TestListing_NewBumpPushesOldestOut(t *testing.T) {
	var threads []domain.ThreadMetadata
	for i := int64(1); i <= 20; i++ {
		threads = append(threads, thread(i, false, 0, time.Duration(i)*time.Minute))
	}

	listing := Listing(threads, 20)
	assert.Len(t, listing, 20)
	assert.Contains(t, ids(listing), int64(1))

	// a 21st thread with the freshest bump displaces the oldest-bumped
	threads = append(threads, thread(21, false, time.Hour, time.Hour))
	listing = Listing(threads, 20)

	assert.Len(t, listing, 20)
	assert.Equal(t, int64(21), listing[0].Id)
	assert.NotContains(t, ids(listing), int64(1))
}

func TestListing_Empty(t *testing.T) {
	assert.Empty(t, Listing(nil, 20))
}

func TestListing_FewerThanWindow(t *testing.T) {
	threads := []domain.ThreadMetadata{
		thread(1, false, 0, time.Minute),
		thread(2, false, 0, 2*time.Minute),
	}

	listing := Listing(threads, 20)

	assert.Equal(t, []int64{2, 1}, ids(listing))
}

func ExampleListing() {
	threads := []domain.ThreadMetadata{
		{Id: 1, BumpTime: base.Add(time.Hour)},
		{Id: 2, IsSticky: true, CreatedAt: base},
		{Id: 3, BumpTime: base.Add(2 * time.Hour)},
	}
	for _, meta := range Listing(threads, 20) {
		fmt.Println(meta.Id)
	}
	// Output:
	// 2
	// 3
	// 1
}
