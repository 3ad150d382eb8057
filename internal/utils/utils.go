package utils

import (
	"unicode"
	"unicode/utf8"

	"github.com/ashchan-dev/ashchan/internal/errors"
)

func IsSlug(s string) bool {
	for _, r := range s {
		if !unicode.IsLower(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

type BoardCodeValidator struct{}

func (e *BoardCodeValidator) Code(code string) error {
	if code == "" {
		return &errors.ErrorWithStatusCode{Message: "Board code is required", StatusCode: 400}
	}
	if utf8.RuneCountInString(code) > 10 {
		return &errors.ErrorWithStatusCode{Message: "Board code is too long", StatusCode: 400}
	}
	if !IsSlug(code) {
		return &errors.ErrorWithStatusCode{Message: "Board code should contain only lowercase letters and digits", StatusCode: 400}
	}
	return nil
}

type PostValidator struct{}

func (e *PostValidator) Name(name string) error {
	if utf8.RuneCountInString(name) > 50 {
		return &errors.ErrorWithStatusCode{Message: "Name is too long", StatusCode: 400}
	}
	return nil
}

func (e *PostValidator) Text(text string) error {
	if len(text) == 0 {
		return &errors.ErrorWithStatusCode{Message: "Text is too short", StatusCode: 400}
	}
	if utf8.RuneCountInString(text) > 10_000 {
		return &errors.ErrorWithStatusCode{Message: "Text is too long", StatusCode: 400}
	}
	return nil
}

// bcrypt only reads the first 72 bytes, so longer passwords are rejected
// instead of being silently truncated.
func (e *PostValidator) Password(password string) error {
	if len(password) > 72 {
		return &errors.ErrorWithStatusCode{Message: "Password is too long", StatusCode: 400}
	}
	return nil
}

func (e *PostValidator) ImageURL(url string) error {
	if utf8.RuneCountInString(url) > 500 {
		return &errors.ErrorWithStatusCode{Message: "Image URL is too long", StatusCode: 400}
	}
	return nil
}

type ThreadValidator struct {
	PostValidator
}

func (e *ThreadValidator) Subject(subject string) error {
	if utf8.RuneCountInString(subject) > 100 {
		return &errors.ErrorWithStatusCode{Message: "Subject is too long", StatusCode: 400}
	}
	return nil
}
