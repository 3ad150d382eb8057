package service

import (
	"github.com/ashchan-dev/ashchan/internal/domain"
	"github.com/ashchan-dev/ashchan/internal/ranking"
)

type BoardService interface {
	List() ([]domain.BoardMetadata, error)
	Get(code domain.BoardCode) (*domain.Board, error)
}

type Board struct {
	storage   BoardStorage
	validator BoardValidator
	window    int
}

type BoardStorage interface {
	GetBoards() ([]domain.BoardMetadata, error)
	GetBoard(code domain.BoardCode) (*domain.BoardMetadata, error)
	ListThreads(code domain.BoardCode, window int) ([]domain.ThreadMetadata, error)
}

type BoardValidator interface {
	Code(code string) error
}

func NewBoard(storage BoardStorage, validator BoardValidator, window int) BoardService {
	return &Board{storage, validator, window}
}

func (b *Board) List() ([]domain.BoardMetadata, error) {
	return b.storage.GetBoards()
}

func (b *Board) Get(code domain.BoardCode) (*domain.Board, error) {
	if err := b.validator.Code(code); err != nil {
		return nil, err
	}

	metadata, err := b.storage.GetBoard(code)
	if err != nil {
		return nil, err
	}

	threads, err := b.storage.ListThreads(code, b.window)
	if err != nil {
		return nil, err
	}

	return &domain.Board{
		BoardMetadata: *metadata,
		Threads:       ranking.Listing(threads, b.window),
	}, nil
}
