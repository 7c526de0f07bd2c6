package club

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means a referenced team, player or match does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConstraintViolation means input was rejected before reaching the database.
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrGatewayFailure means the database was unreachable or rejected the statement.
	ErrGatewayFailure = errors.New("gateway failure")
	// ErrInvalidCategory means a training session category is not recognised.
	ErrInvalidCategory = errors.New("invalid session category")
)

func notFound(entity string, id int64) error {
	return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
}

func gatewayFailure(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrGatewayFailure, err)
}

func invalidCategory(s string) error {
	return fmt.Errorf("%q: %w", s, ErrInvalidCategory)
}
