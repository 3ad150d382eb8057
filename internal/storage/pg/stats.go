package pg

import (
	"database/sql"

	"github.com/ashchan-dev/ashchan/internal/domain"

	_ "github.com/lib/pq"
)

// Stats counts boards, threads and posts and reports the newest post's
// timestamp. Counts come from one statement so they describe a single
// snapshot.
func (s *Storage) Stats() (domain.Stats, error) {
	var stats domain.Stats
	var lastPostAt sql.NullTime
	err := s.db.QueryRow(`
	SELECT
		(SELECT count(*) FROM boards),
		(SELECT count(*) FROM threads),
		(SELECT count(*) FROM posts),
		(SELECT max(created_at) FROM posts)`).Scan(&stats.Boards, &stats.Threads, &stats.Posts, &lastPostAt)
	if err != nil {
		return domain.Stats{}, err
	}
	if lastPostAt.Valid {
		stats.LastPostAt = &lastPostAt.Time
	}
	return stats, nil
}
