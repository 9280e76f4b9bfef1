package shortsyntax

import "errors"

var (
	ErrInvalidTitle = errors.New("task title is not valid UTF-8 text")
	ErrCatalog      = errors.New("reference catalog unavailable")
)
