package common

import "github.com/cockroachdb/errors"

var (
	ErrMovementNotFound = errors.New("movement not found")
	ErrDocumentNotFound = errors.New("document not found")
	ErrDuplicate        = errors.New("duplicate movement")
)
