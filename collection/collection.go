// Package collection provides a generic resizable array with an explicit capacity growth policy.
package collection

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/samber/lo"
)

// DefaultCapacity is the size of the first allocation made by any collection.
const DefaultCapacity = 16

// MaxCapacity is the largest capacity EnsureCapacity accepts.
const MaxCapacity = 1 << 30

// Collection is an ordered sequence of elements backed by a contiguous buffer that doubles when full.
// The zero value is an empty collection ready to use.
//
// A Collection is not safe for concurrent mutation.
type Collection[T any] struct {
	items []T
	count int
}

// New creates a collection with the default capacity and appends the given items in order.
func New[T any](items ...T) *Collection[T] {
	c := &Collection[T]{items: make([]T, DefaultCapacity)}
	c.AddRange(items...)
	return c
}

// Count returns the number of elements currently stored.
func (c *Collection[T]) Count() int {
	return c.count
}

// Capacity returns the size of the allocated buffer.
func (c *Collection[T]) Capacity() int {
	return len(c.items)
}

// Get returns the element at index.
func (c *Collection[T]) Get(index int) (item T, err error) {
	if err = c.check("get", index, c.count); err != nil {
		return
	}
	return c.items[index], nil
}

// Set replaces the element at index.
func (c *Collection[T]) Set(index int, item T) error {
	if err := c.check("set", index, c.count); err != nil {
		return err
	}
	c.items[index] = item
	return nil
}

// Add appends an element, doubling the capacity if the buffer is full.
func (c *Collection[T]) Add(item T) {
	if c.count == len(c.items) {
		c.grow(c.count + 1)
	}
	c.items[c.count] = item
	c.count++
}

// AddRange appends all items in order.
// The buffer is grown once to the first doubling that fits every item.
func (c *Collection[T]) AddRange(items ...T) {
	if len(items) == 0 {
		return
	}
	c.grow(c.count + len(items))
	copy(c.items[c.count:], items)
	c.count += len(items)
}

// InsertAt places item at index, shifting every element from index onwards one slot to the right.
// An index equal to Count appends.
func (c *Collection[T]) InsertAt(index int, item T) error {
	if err := c.check("insert", index, c.count+1); err != nil {
		return err
	}
	if c.count == len(c.items) {
		c.grow(c.count + 1)
	}
	copy(c.items[index+1:c.count+1], c.items[index:c.count])
	c.items[index] = item
	c.count++
	return nil
}

// RemoveAt deletes the element at index, shifting the following elements one slot to the left.
// The capacity is left untouched.
func (c *Collection[T]) RemoveAt(index int) error {
	if err := c.check("remove", index, c.count); err != nil {
		return err
	}
	copy(c.items[index:], c.items[index+1:c.count])
	c.count--

	var zero T
	c.items[c.count] = zero
	return nil
}

// Exchange swaps the elements at i and j. Both indices are validated before anything moves.
func (c *Collection[T]) Exchange(i, j int) error {
	if err := c.check("exchange", i, c.count); err != nil {
		return err
	}
	if err := c.check("exchange", j, c.count); err != nil {
		return err
	}
	c.items[i], c.items[j] = c.items[j], c.items[i]
	return nil
}

// Clear removes every element without releasing the buffer.
func (c *Collection[T]) Clear() {
	clear(c.items[:c.count])
	c.count = 0
}

// EnsureCapacity grows the buffer by doubling until it holds at least n elements.
// Requests below zero or above MaxCapacity are rejected with a *CapacityError and leave c unchanged.
func (c *Collection[T]) EnsureCapacity(n int) error {
	if n < 0 || n > MaxCapacity {
		return &CapacityError{Requested: n}
	}
	c.grow(n)
	return nil
}

// Items returns a copy of the stored elements.
func (c *Collection[T]) Items() []T {
	items := make([]T, c.count)
	copy(items, c.items[:c.count])
	return items
}

// String renders the elements as "[a, b, c]". Nested collections render recursively.
func (c *Collection[T]) String() string {
	rendered := lo.Map(c.items[:c.count], func(item T, _ int) string {
		return fmt.Sprint(item)
	})
	return "[" + strings.Join(rendered, ", ") + "]"
}

// MarshalJSON encodes the stored elements as a JSON array.
func (c *Collection[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Items())
}

// grow reallocates the buffer to the smallest doubling of the current capacity that fits required.
func (c *Collection[T]) grow(required int) {
	capacity := len(c.items)
	if required <= capacity {
		return
	}
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	for capacity < required && capacity <= math.MaxInt/2 {
		capacity *= 2
	}
	capacity = max(capacity, required)

	items := make([]T, capacity)
	copy(items, c.items[:c.count])
	c.items = items
}

// check reports whether 0 <= index < limit.
func (c *Collection[T]) check(op string, index, limit int) error {
	if index < 0 || index >= limit {
		return &RangeError{Op: op, Index: index, Count: c.count}
	}
	return nil
}
