package content

import "errors"

var (
	ErrContentNotFound  = errors.New("content not found")
	ErrNotPublished     = errors.New("content not published")
	ErrSlugExists       = errors.New("content slug already exists")
	ErrInvalidStatus    = errors.New("invalid content status")
)
