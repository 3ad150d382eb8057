package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/ashchan-dev/ashchan/internal/domain"
	internal_errors "github.com/ashchan-dev/ashchan/internal/errors"

	_ "github.com/lib/pq"
)

// SeedBoards inserts any boards missing from the given set. Existing rows
// are left untouched, so running it on every startup is safe.
func (s *Storage) SeedBoards(boards []domain.BoardMetadata) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() // The rollback will be ignored if the tx has been committed later in the function.

	for _, board := range boards {
		_, err := tx.Exec(`
		INSERT INTO boards(code, name, description)
		VALUES($1, $2, $3)
		ON CONFLICT (code) DO NOTHING`, board.Code, board.Name, board.Description)
		if err != nil {
			return fmt.Errorf("failed to seed board %q: %w", board.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetBoards returns all boards in seed order.
func (s *Storage) GetBoards() ([]domain.BoardMetadata, error) {
	rows, err := s.db.Query(`
	SELECT code, name, description, created_at
	FROM boards
	ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var boards []domain.BoardMetadata
	for rows.Next() {
		var board domain.BoardMetadata
		if err := rows.Scan(&board.Code, &board.Name, &board.Description, &board.CreatedAt); err != nil {
			return nil, err
		}
		boards = append(boards, board)
	}
	return boards, rows.Err()
}

func (s *Storage) GetBoard(code domain.BoardCode) (*domain.BoardMetadata, error) {
	var board domain.BoardMetadata
	err := s.db.QueryRow(`
	SELECT code, name, description, created_at
	FROM boards
	WHERE code = $1`, code).Scan(&board.Code, &board.Name, &board.Description, &board.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &internal_errors.ErrorWithStatusCode{Message: "Board not found", StatusCode: 404}
		}
		return nil, err
	}
	return &board, nil
}

// ListThreads returns every sticky thread on the board plus the `window`
// most recently bumped non-sticky ones. Callers put them into final listing
// order via the ranking package.
func (s *Storage) ListThreads(code domain.BoardCode, window int) ([]domain.ThreadMetadata, error) {
	sticky, err := s.queryThreads(`
	SELECT t.id, b.code, t.subject, t.name, t.text, t.image_url, t.bump_time, t.created_at, t.reply_count, t.is_sticky, t.is_locked
	FROM threads t
	JOIN boards b ON b.id = t.board_id
	WHERE b.code = $1 AND t.is_sticky
	ORDER BY t.created_at DESC, t.id DESC`, code)
	if err != nil {
		return nil, err
	}

	bumped, err := s.queryThreads(`
	SELECT t.id, b.code, t.subject, t.name, t.text, t.image_url, t.bump_time, t.created_at, t.reply_count, t.is_sticky, t.is_locked
	FROM threads t
	JOIN boards b ON b.id = t.board_id
	WHERE b.code = $1 AND NOT t.is_sticky
	ORDER BY t.bump_time DESC, t.id DESC
	LIMIT $2`, code, window)
	if err != nil {
		return nil, err
	}

	return append(sticky, bumped...), nil
}

func (s *Storage) queryThreads(query string, args ...any) ([]domain.ThreadMetadata, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var threads []domain.ThreadMetadata
	for rows.Next() {
		var t domain.ThreadMetadata
		err := rows.Scan(&t.Id, &t.Board, &t.Subject, &t.Name, &t.Text, &t.ImageURL,
			&t.BumpTime, &t.CreatedAt, &t.ReplyCount, &t.IsSticky, &t.IsLocked)
		if err != nil {
			return nil, err
		}
		threads = append(threads, t)
	}
	return threads, rows.Err()
}
