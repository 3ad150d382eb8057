package service

import (
	"github.com/ashchan-dev/ashchan/internal/domain"
)

type ThreadService interface {
	Create(data domain.ThreadCreationData) (domain.ThreadId, error)
	Get(id domain.ThreadId) (*domain.Thread, error)
}

type Thread struct {
	storage   ThreadStorage
	validator ThreadValidator
	sanitizer Sanitizer
}

type ThreadStorage interface {
	CreateThread(data domain.ThreadCreationData) (domain.ThreadId, error)
	GetThread(id domain.ThreadId) (*domain.Thread, error)
}

type ThreadValidator interface {
	Subject(subject string) error
	Name(name string) error
	Text(text string) error
	Password(password string) error
	ImageURL(url string) error
}

type Sanitizer interface {
	Clean(text string) string
}

func NewThread(storage ThreadStorage, validator ThreadValidator, sanitizer Sanitizer) ThreadService {
	return &Thread{storage, validator, sanitizer}
}

func (b *Thread) Create(data domain.ThreadCreationData) (domain.ThreadId, error) {
	data.Subject = b.sanitizer.Clean(data.Subject)
	data.Name = b.sanitizer.Clean(data.Name)
	data.Text = b.sanitizer.Clean(data.Text)
	if data.Name == "" {
		data.Name = domain.AnonymousName
	}

	if err := b.validator.Subject(data.Subject); err != nil {
		return -1, err
	}
	if err := b.validator.Name(data.Name); err != nil {
		return -1, err
	}
	if err := b.validator.Text(data.Text); err != nil {
		return -1, err
	}
	if err := b.validator.Password(data.Password); err != nil {
		return -1, err
	}
	if err := b.validator.ImageURL(data.ImageURL); err != nil {
		return -1, err
	}

	hash, err := hashPassword(data.Password)
	if err != nil {
		return -1, err
	}
	data.PasswordHash = hash
	data.Password = ""

	return b.storage.CreateThread(data)
}

func (b *Thread) Get(id domain.ThreadId) (*domain.Thread, error) {
	thread, err := b.storage.GetThread(id)
	if err != nil {
		return nil, err
	}
	return thread, nil
}
