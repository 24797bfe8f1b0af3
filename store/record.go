package store

import (
	"fmt"
	"time"

	"github.com/coll-cli/coll/collection"
)

// Record is the persisted form of a named collection.
type Record struct {
	Name      string    `json:"name"`
	Items     []string  `json:"items"`
	Capacity  int       `json:"capacity"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newRecord(name string, c *collection.Collection[string]) *Record {
	return &Record{
		Name:      name,
		Items:     c.Items(),
		Capacity:  c.Capacity(),
		UpdatedAt: time.Now(),
	}
}

// Collection rebuilds the live collection, restoring the saved capacity.
func (r *Record) Collection() (*collection.Collection[string], error) {
	c := collection.New(r.Items...)
	if err := c.EnsureCapacity(r.Capacity); err != nil {
		return nil, fmt.Errorf("stored collection %s: %w", r.Name, err)
	}
	return c, nil
}
