// Package store persists named string collections between command invocations.
package store

import (
	"errors"
	"fmt"
	"sort"

	"github.com/coll-cli/coll/collection"
	"github.com/coll-cli/coll/filesystem"
	"github.com/coll-cli/coll/log"
	"github.com/coll-cli/coll/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
)

// ErrNotFound is returned when no collection is stored under the requested name.
var ErrNotFound = errors.New("collection not found")

// cacher provides a disk-backed registry of named collections.
var cacher = gache.New[map[string]*Record](
	&gache.Options{
		Path:       where.Store(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns every stored record keyed by name.
func Get() (map[string]*Record, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Record), nil
	}
	return cached, nil
}

// Load returns the collection stored under name.
func Load(name string) (*collection.Collection[string], error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	record, ok := saved[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return record.Collection()
}

// LoadOrNew returns the collection stored under name, or a new empty one.
func LoadOrNew(name string) (*collection.Collection[string], error) {
	c, err := Load(name)
	if errors.Is(err, ErrNotFound) {
		return collection.New[string](), nil
	}
	return c, err
}

// Save persists c under name, replacing any previous contents.
func Save(name string, c *collection.Collection[string]) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	saved[name] = newRecord(name, c)
	log.WithFields(log.Fields{"name": name, "count": c.Count(), "capacity": c.Capacity()}).Debug("saved collection")
	return cacher.Set(saved)
}

// Remove deletes the collection stored under name.
func Remove(name string) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	if _, ok := saved[name]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	delete(saved, name)
	return cacher.Set(saved)
}

// Names returns the sorted names of stored collections.
// A non-empty filter keeps only names that fuzzily match it.
func Names(filter string) ([]string, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	names := lo.Keys(saved)
	if filter != "" {
		names = fuzzy.FindFold(filter, names)
	}

	sort.Strings(names)
	return names, nil
}
