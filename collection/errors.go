package collection

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned whenever an index argument falls outside the valid range of an operation.
var ErrOutOfRange = errors.New("index out of range")

// RangeError describes a rejected index.
type RangeError struct {
	Op    string
	Index int
	Count int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s: index %d out of range for count %d", e.Op, e.Index, e.Count)
}

// Unwrap lets errors.Is match ErrOutOfRange.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// ErrInvalidCapacity is returned when a requested capacity is negative or above MaxCapacity.
var ErrInvalidCapacity = errors.New("invalid capacity")

// CapacityError describes a rejected capacity request.
type CapacityError struct {
	Requested int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("capacity %d must be between 0 and %d", e.Requested, MaxCapacity)
}

// Unwrap lets errors.Is match ErrInvalidCapacity.
func (e *CapacityError) Unwrap() error {
	return ErrInvalidCapacity
}
