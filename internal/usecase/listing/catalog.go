package listing

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/payzee/dashboard/internal/domain"
	"github.com/payzee/dashboard/internal/domain/listview"
	"github.com/payzee/dashboard/internal/domain/load"
	"github.com/payzee/dashboard/internal/domain/record"
	"github.com/payzee/dashboard/internal/metrics"
)

// Records converts typed rows to the engine's record slice.
func Records[T record.Record](rows []T) []record.Record {
	out := make([]record.Record, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return out
}

type entry struct {
	def     listview.Definition
	sample  []record.Record
	records []record.Record
	load    load.State
}

// Snapshot is a consistent read of one list.
type Snapshot struct {
	Definition listview.Definition
	Records    []record.Record
	Load       load.State
}

// Catalog holds the current collection of every list. Collections are
// immutable slices swapped whole, so a reader never sees a partial update.
type Catalog struct {
	mu    sync.RWMutex
	lists map[string]*entry
	order []string
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{lists: make(map[string]*entry)}
}

// Register adds a list seeded with its sample set.
func (c *Catalog) Register(def listview.Definition, sample []record.Record) error {
	if err := def.Validate(); err != nil {
		return fmt.Errorf("register list: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.lists[def.Name]; ok {
		return fmt.Errorf("register list: %s already registered", def.Name)
	}
	c.lists[def.Name] = &entry{
		def:     def,
		sample:  sample,
		records: sample,
		load:    load.Initial(len(sample)),
	}
	c.order = append(c.order, def.Name)
	metrics.ListRecords.WithLabelValues(def.Name).Set(float64(len(sample)))
	return nil
}

// Definitions returns every list definition in registration order.
func (c *Catalog) Definitions() []listview.Definition {
	c.mu.RLock()
	defer c.mu.RUnlock()

	defs := make([]listview.Definition, 0, len(c.order))
	for _, name := range c.order {
		defs = append(defs, c.lists[name].def)
	}
	return defs
}

// Snapshot returns the current state of list.
func (c *Catalog) Snapshot(list string) (Snapshot, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.lists[list]
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: %s", domain.ErrUnknownList, list)
	}
	return Snapshot{Definition: e.def, Records: e.records, Load: e.load}, nil
}

// Sample returns the built-in collection of list.
func (c *Catalog) Sample(list string) ([]record.Record, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.lists[list]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownList, list)
	}
	return e.sample, nil
}

// BeginLoad marks list as loading. It reports false, with the current
// state, when a load is already in flight.
func (c *Catalog) BeginLoad(list string, now time.Time) (load.State, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.lists[list]
	if !ok {
		return load.State{}, false, fmt.Errorf("%w: %s", domain.ErrUnknownList, list)
	}
	if e.load.Phase == load.Loading {
		return e.load, false, nil
	}
	e.load = e.load.Start(now)
	return e.load, true, nil
}

// Replace swaps the collection of list together with its load state.
func (c *Catalog) Replace(list string, records []record.Record, st load.State) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.lists[list]
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownList, list)
	}
	e.records = records
	e.load = st
	metrics.ListRecords.WithLabelValues(list).Set(float64(len(records)))
	return nil
}

// Update replaces the record with key in list by applying fn to it.
// The collection is copied, never mutated in place.
func (c *Catalog) Update(list, key string, fn func(record.Record) (record.Record, error)) (record.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.lists[list]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownList, list)
	}
	i := slices.IndexFunc(e.records, func(r record.Record) bool { return r.Key() == key })
	if i < 0 {
		return nil, fmt.Errorf("%s %s: %w", list, key, domain.ErrNotFound)
	}

	updated, err := fn(e.records[i])
	if err != nil {
		return nil, err
	}
	records := slices.Clone(e.records)
	records[i] = updated
	e.records = records
	return updated, nil
}

// LoadStates returns the load state of every list keyed by name.
func (c *Catalog) LoadStates() map[string]load.State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]load.State, len(c.lists))
	for name, e := range c.lists {
		out[name] = e.load
	}
	return out
}
