// Package store wraps the MongoDB collections behind small per-resource
// interfaces so handlers can be exercised without a live mongod.
package store

import "errors"

var (
	// ErrNotFound is returned when no document matches the given id.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicateName is returned when a write violates the unique name
	// index on the folders or tags collection.
	ErrDuplicateName = errors.New("name already exists")
)
