package repository

import "errors"

var (
	ErrCatalogRead    = errors.New("catalog: cannot read snapshot file")
	ErrCatalogDecode  = errors.New("catalog: cannot decode snapshot")
	ErrCatalogInvalid = errors.New("catalog: invalid entry")
)
