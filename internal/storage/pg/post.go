package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ashchan-dev/ashchan/internal/domain"
	internal_errors "github.com/ashchan-dev/ashchan/internal/errors"

	_ "github.com/lib/pq"
)

// CreatePost saves a post and bumps its thread in one transaction.
//
// The thread update runs first: reply_count increments server-side and
// bump_time moves forward via GREATEST, never backward. The WHERE clause
// skips locked threads, so a locked or missing thread matches zero rows
// and nothing is written. Returns the new post id and the thread's
// reply_count after the bump.
func (s *Storage) CreatePost(data domain.PostCreationData) (domain.PostId, int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return -1, 0, err
	}
	defer tx.Rollback() // The rollback will be ignored if the tx has been committed later in the function.

	var replyCount int
	createdTs := time.Now().UTC().Round(time.Microsecond) // database anyway round to microsecond
	err = tx.QueryRow(`
	UPDATE threads
	SET reply_count = reply_count + 1, bump_time = GREATEST(bump_time, $1)
	WHERE id = $2 AND NOT is_locked
	RETURNING reply_count`, createdTs, data.Thread).Scan(&replyCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return -1, 0, s.disambiguateThread(tx, data.Thread, err)
		}
		return -1, 0, err
	}

	var id domain.PostId
	err = tx.QueryRow(`
	INSERT INTO posts(thread_id, name, text, password_hash, image_url, ip_address, created_at)
	VALUES($1, $2, $3, $4, $5, $6, $7)
	RETURNING id`,
		data.Thread, data.Name, data.Text, data.PasswordHash, data.ImageURL, data.IP, createdTs).Scan(&id)
	if err != nil {
		return -1, 0, err
	}

	if err := tx.Commit(); err != nil {
		return -1, 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return id, replyCount, nil
}

// disambiguateThread explains why the bump update matched zero rows:
// either the thread does not exist or it is locked.
func (s *Storage) disambiguateThread(tx *sql.Tx, id domain.ThreadId, cause error) error {
	var locked bool
	err := tx.QueryRow(`SELECT is_locked FROM threads WHERE id = $1`, id).Scan(&locked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &internal_errors.ErrorWithStatusCode{Message: "Thread not found", StatusCode: 404}
		}
		return err
	}
	if locked {
		return &internal_errors.ErrorWithStatusCode{Message: "Thread is locked", StatusCode: 423}
	}
	return fmt.Errorf("failed to bump thread %d: %w", id, cause)
}

// PostCredentials fetches the stored password hash for a post. A nil hash
// means the post was created without a deletion password.
func (s *Storage) PostCredentials(id domain.PostId) ([]byte, error) {
	var hash []byte
	err := s.db.QueryRow(`SELECT password_hash FROM posts WHERE id = $1`, id).Scan(&hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &internal_errors.ErrorWithStatusCode{Message: "Post not found", StatusCode: 404}
		}
		return nil, err
	}
	return hash, nil
}

// DeletePost removes a post permanently. The owning thread's reply_count
// and bump_time are left as they are.
func (s *Storage) DeletePost(id domain.PostId) error {
	result, err := s.db.Exec(`DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return &internal_errors.ErrorWithStatusCode{Message: "Post not found", StatusCode: 404}
	}
	return nil
}

// RecentPosts returns the newest posts across all boards, freshest first.
func (s *Storage) RecentPosts(limit int) ([]domain.Post, error) {
	rows, err := s.db.Query(`
	SELECT id, thread_id, name, text, image_url, created_at
	FROM posts
	ORDER BY created_at DESC, id DESC
	LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var post domain.Post
		err := rows.Scan(&post.Id, &post.Thread, &post.Name, &post.Text, &post.ImageURL, &post.CreatedAt)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}
