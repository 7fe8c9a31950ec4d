package models

import "errors"

// Error constants for document request handling
var (
	ErrInvalidDocumentCount = errors.New("count must be a positive integer")
	ErrTooManyDocuments     = errors.New("count exceeds the maximum allowed")
	ErrInvalidBoolParam     = errors.New("invalid boolean parameter")
)
