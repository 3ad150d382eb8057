package domain

import (
	"time"
)

// Stats is a point-in-time snapshot of global counters.
type Stats struct {
	Boards     int64      `json:"boards"`
	Threads    int64      `json:"threads"`
	Posts      int64      `json:"posts"`
	LastPostAt *time.Time `json:"last_post_at,omitempty"`
}
