package md2pptx

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown     = errors.New("markdown content cannot be empty")
	ErrInvalidFontConfig = errors.New("invalid font configuration")
)
