package pg

import (
	"database/sql"
	"errors"

	"github.com/ashchan-dev/ashchan/internal/domain"
	internal_errors "github.com/ashchan-dev/ashchan/internal/errors"

	_ "github.com/lib/pq"
)

// CreateThread saves a new thread. The board reference is resolved inside
// the insert itself, so a missing board makes the statement match zero rows
// instead of needing a prior lookup. bump_time and created_at share the
// statement's now(), keeping them equal on a fresh thread.
func (s *Storage) CreateThread(data domain.ThreadCreationData) (domain.ThreadId, error) {
	var id domain.ThreadId
	err := s.db.QueryRow(`
	INSERT INTO threads(board_id, subject, name, text, password_hash, image_url, ip_address)
	SELECT id, $2, $3, $4, $5, $6, $7
	FROM boards
	WHERE code = $1
	RETURNING id`,
		data.Board, data.Subject, data.Name, data.Text, data.PasswordHash, data.ImageURL, data.IP).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return -1, &internal_errors.ErrorWithStatusCode{Message: "Board not found", StatusCode: 404}
		}
		return -1, err
	}
	return id, nil
}

func (s *Storage) GetThread(id domain.ThreadId) (*domain.Thread, error) {
	var thread domain.Thread
	err := s.db.QueryRow(`
	SELECT t.id, b.code, t.subject, t.name, t.text, t.image_url, t.bump_time, t.created_at, t.reply_count, t.is_sticky, t.is_locked
	FROM threads t
	JOIN boards b ON b.id = t.board_id
	WHERE t.id = $1`, id).Scan(
		&thread.Id, &thread.Board, &thread.Subject, &thread.Name, &thread.Text, &thread.ImageURL,
		&thread.BumpTime, &thread.CreatedAt, &thread.ReplyCount, &thread.IsSticky, &thread.IsLocked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &internal_errors.ErrorWithStatusCode{Message: "Thread not found", StatusCode: 404}
		}
		return nil, err
	}

	rows, err := s.db.Query(`
	SELECT id, thread_id, name, text, image_url, created_at
	FROM posts
	WHERE thread_id = $1
	ORDER BY created_at, id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var post domain.Post
		err := rows.Scan(&post.Id, &post.Thread, &post.Name, &post.Text, &post.ImageURL, &post.CreatedAt)
		if err != nil {
			return nil, err
		}
		thread.Posts = append(thread.Posts, &post)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &thread, nil
}
