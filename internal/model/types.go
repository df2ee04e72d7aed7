// Package model defines domain types used by the service.
package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Product is one item as returned by the upstream product API.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CreatedAt   string  `json:"created_at"`
}

// Collection is the ordered product sequence held by a page.
type Collection []Product

// productKeys are the exact object keys of a product. encoding/json matches struct tags
// case-insensitively, so presence is checked on the raw object first.
var productKeys = [...]string{"id", "name", "description", "price", "created_at"}

// UnmarshalJSON requires every key to be present, spelled exactly, with the right type.
func (p *Product) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		return &FieldError{Field: "product", Reason: "must be an object"}
	}
	for _, k := range productKeys {
		v, ok := raw[k]
		if !ok {
			return &FieldError{Field: k, Reason: "missing"}
		}
		if string(v) == "null" {
			return &FieldError{Field: k, Reason: "must not be null"}
		}
	}
	var out Product
	fields := []struct {
		key string
		dst any
	}{
		{"id", &out.ID},
		{"name", &out.Name},
		{"description", &out.Description},
		{"price", &out.Price},
		{"created_at", &out.CreatedAt},
	}
	for _, f := range fields {
		if err := json.Unmarshal(raw[f.key], f.dst); err != nil {
			return &FieldError{Field: f.key, Reason: err.Error()}
		}
	}
	*p = out
	return nil
}

// createdAtLayouts lists the accepted created_at formats, most specific first.
var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseCreatedAt parses a created_at value. Timestamps without an offset are read as UTC.
func ParseCreatedAt(s string) (time.Time, error) {
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
