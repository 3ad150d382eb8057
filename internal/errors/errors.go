package errors

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// DeleteDenied covers every failed post deletion: wrong password, missing
// password on the post, or no such post. Keeping one opaque error prevents
// probing which of those happened.
var DeleteDenied = &ErrorWithStatusCode{Message: "Deletion denied", StatusCode: 403}
