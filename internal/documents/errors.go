package documents

import "errors"

var (
	ErrNotFound     = errors.New("document not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotPDF       = errors.New("only PDF files are accepted")
	ErrTooLarge     = errors.New("file exceeds upload limit")
)
