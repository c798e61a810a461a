package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("enregistrement introuvable")
	ErrBadRequest = errors.New("requête invalide")
)

// HttpError porte un message destiné à l'utilisateur et la cause technique,
// qui reste côté logs et n'est jamais renvoyée au client.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details interface{}) *HttpError {
	return &HttpError{
		Code:    code,
		Message: message,
		Err:     err,
		Details: details,
	}
}
