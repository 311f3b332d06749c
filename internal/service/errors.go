package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrValidation = errors.New("validation") // 422
	ErrNotFound   = errors.New("not found")  // 404
)

func notFound(resource string, id int, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", resource, id, ErrNotFound)
	}
	return err
}

func requireNotNull(field string, v interface{ IsNull() bool }) error {
	if v.IsNull() {
		return fmt.Errorf("%w: %s must not be null", ErrValidation, field)
	}
	return nil
}
