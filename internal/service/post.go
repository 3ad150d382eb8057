package service

import (
	"errors"

	"github.com/ashchan-dev/ashchan/internal/domain"
	internal_errors "github.com/ashchan-dev/ashchan/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

type PostService interface {
	Create(data domain.PostCreationData) (domain.PostId, int, error)
	Delete(id domain.PostId, password string) error
	Recent(limit int) ([]domain.Post, error)
}

type Post struct {
	storage   PostStorage
	validator PostValidator
	sanitizer Sanitizer
}

type PostStorage interface {
	CreatePost(data domain.PostCreationData) (domain.PostId, int, error)
	PostCredentials(id domain.PostId) ([]byte, error)
	DeletePost(id domain.PostId) error
	RecentPosts(limit int) ([]domain.Post, error)
}

type PostValidator interface {
	Name(name string) error
	Text(text string) error
	Password(password string) error
	ImageURL(url string) error
}

func NewPost(storage PostStorage, validator PostValidator, sanitizer Sanitizer) PostService {
	return &Post{storage, validator, sanitizer}
}

// Create validates and stores a reply. The storage layer increments the
// thread's reply_count and advances bump_time in the same transaction, so
// a rejected post leaves the thread untouched.
func (b *Post) Create(data domain.PostCreationData) (domain.PostId, int, error) {
	data.Name = b.sanitizer.Clean(data.Name)
	data.Text = b.sanitizer.Clean(data.Text)
	if data.Name == "" {
		data.Name = domain.AnonymousName
	}

	if err := b.validator.Name(data.Name); err != nil {
		return -1, 0, err
	}
	if err := b.validator.Text(data.Text); err != nil {
		return -1, 0, err
	}
	if err := b.validator.Password(data.Password); err != nil {
		return -1, 0, err
	}
	if err := b.validator.ImageURL(data.ImageURL); err != nil {
		return -1, 0, err
	}

	hash, err := hashPassword(data.Password)
	if err != nil {
		return -1, 0, err
	}
	data.PasswordHash = hash
	data.Password = ""

	return b.storage.CreatePost(data)
}

// Delete removes a post when the password matches its stored hash.
// Missing post, passwordless post and wrong password all collapse into
// the same DeleteDenied error; only storage failures surface separately.
func (b *Post) Delete(id domain.PostId, password string) error {
	hash, err := b.storage.PostCredentials(id)
	if err != nil {
		if isNotFound(err) {
			return internal_errors.DeleteDenied
		}
		return err
	}
	if len(hash) == 0 {
		return internal_errors.DeleteDenied
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
		return internal_errors.DeleteDenied
	}

	if err := b.storage.DeletePost(id); err != nil {
		if isNotFound(err) { // lost a race with another deletion
			return internal_errors.DeleteDenied
		}
		return err
	}
	return nil
}

func (b *Post) Recent(limit int) ([]domain.Post, error) {
	if limit <= 0 {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Limit should be positive", StatusCode: 400}
	}
	return b.storage.RecentPosts(limit)
}

func isNotFound(err error) bool {
	var statusErr *internal_errors.ErrorWithStatusCode
	return errors.As(err, &statusErr) && statusErr.StatusCode == 404
}
