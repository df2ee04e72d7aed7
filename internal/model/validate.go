package model

import (
	"fmt"
	"math"
)

// FieldError reports a single field that breaks the product shape.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ValidationError points at the offending item of a collection.
type ValidationError struct {
	Index int
	ID    int64
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("product[%d] (id=%d): %v", e.Index, e.ID, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validate checks the value constraints of a single product.
func (p Product) Validate() error {
	if p.Name == "" {
		return &FieldError{Field: "name", Reason: "must not be empty"}
	}
	if math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
		return &FieldError{Field: "price", Reason: "must be finite"}
	}
	if p.Price < 0 {
		return &FieldError{Field: "price", Reason: "must be >= 0"}
	}
	if _, err := ParseCreatedAt(p.CreatedAt); err != nil {
		return &FieldError{Field: "created_at", Reason: err.Error()}
	}
	return nil
}

// Validate checks every item and that ids are unique within the collection.
func (c Collection) Validate() error {
	seen := make(map[int64]int, len(c))
	for i, p := range c {
		if err := p.Validate(); err != nil {
			return &ValidationError{Index: i, ID: p.ID, Err: err}
		}
		if first, dup := seen[p.ID]; dup {
			return &ValidationError{Index: i, ID: p.ID, Err: &FieldError{
				Field:  "id",
				Reason: fmt.Sprintf("duplicate of product[%d]", first),
			}}
		}
		seen[p.ID] = i
	}
	return nil
}
