// Package catalog holds the elective catalog: an ordered, read-only list of
// elective courses and their module labels.
//
// A Catalog is built once and passed to whatever needs it. Nothing in this
// package keeps a shared instance, so tests and callers may hold several
// catalogs side by side.
package catalog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/alexanderramin/advisor/internal/domain"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func entryValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Catalog is an immutable, ordered set of electives. Titles are unique under
// domain.NormalizeKey.
type Catalog struct {
	version string
	entries []domain.CatalogEntry
	index   map[string]int
}

// New validates entries and builds a Catalog preserving their order.
// Every entry needs a non-blank title and module; duplicate titles are
// rejected. All problems are reported together.
func New(version string, entries []domain.CatalogEntry) (*Catalog, error) {
	c := &Catalog{
		version: version,
		entries: make([]domain.CatalogEntry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	var errs []error
	for i, e := range entries {
		if err := entryValidator().Struct(e); err != nil {
			errs = append(errs, fmt.Errorf("electives[%d]: %w", i, err))
			continue
		}
		if e.Key() == "" {
			errs = append(errs, fmt.Errorf("electives[%d]: title is blank", i))
			continue
		}
		if prev, dup := c.index[e.Key()]; dup {
			errs = append(errs, fmt.Errorf("electives[%d]: title %q duplicates electives[%d]", i, e.Title, prev))
			continue
		}
		c.index[e.Key()] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid catalog: %w", errors.Join(errs...))
	}
	return c, nil
}

// Default returns a new Catalog holding the bundled electives.
func Default() *Catalog {
	c, err := New(DefaultVersion, defaultEntries())
	if err != nil {
		panic(fmt.Sprintf("bundled catalog is invalid: %v", err))
	}
	return c
}

// Version returns the dataset label the catalog was built with.
func (c *Catalog) Version() string { return c.version }

// Len returns the number of electives.
func (c *Catalog) Len() int { return len(c.entries) }

// Entries returns a copy of the electives in catalog order.
func (c *Catalog) Entries() []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup finds an elective by title, ignoring case and surrounding whitespace.
func (c *Catalog) Lookup(title string) (domain.CatalogEntry, bool) {
	i, ok := c.index[domain.NormalizeKey(title)]
	if !ok {
		return domain.CatalogEntry{}, false
	}
	return c.entries[i], true
}

// Contains reports whether an elective with the given title exists.
func (c *Catalog) Contains(title string) bool {
	_, ok := c.Lookup(title)
	return ok
}
