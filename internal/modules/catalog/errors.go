package catalog

import "errors"

var (
	ErrSpaceNotFound    = errors.New("space not found")
	ErrInvalidCategory  = errors.New("invalid space category")
	ErrInvalidSpaceData = errors.New("invalid space data")
)
