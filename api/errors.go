package api

import "errors"

var (
	// api errors
	ErrInvalidParams     = errors.New("invalid params")
	ErrInputTooLarge     = errors.New("input is too large")
	ErrInvalidDocumentID = errors.New("invalid document id")
	ErrDocumentNotFound  = errors.New("document not found")
	ErrInternal          = errors.New("internal server error")
)
