package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownEntry   = errors.New("entry not in catalog")
	ErrUnknownSection = errors.New("section not in catalog")
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// Entry is one cleanup target: a path template under a named section.
type Entry struct {
	Section     string
	Pattern     string
	Description string
}

// ID returns the identity of the entry.
func (e Entry) ID() EntryID {
	return EntryID{Section: e.Section, Pattern: e.Pattern}
}

// EntryID identifies an entry within a catalog.
type EntryID struct {
	Section string
	Pattern string
}

// Section is an ordered group of entries.
type Section struct {
	Name    string
	Entries []Entry
}

// Catalog is an immutable, ordered set of sections.
type Catalog struct {
	sections []Section
	index    map[EntryID]int
	size     int
}

// New builds a catalog from sections, keeping their order. Entries get
// their Section field set from the enclosing section.
func New(sections []Section) (*Catalog, error) {
	c := &Catalog{index: make(map[EntryID]int)}
	seenSection := make(map[string]bool, len(sections))
	for _, s := range sections {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: section without a name", ErrInvalidCatalog)
		}
		if seenSection[s.Name] {
			return nil, fmt.Errorf("%w: duplicate section %q", ErrInvalidCatalog, s.Name)
		}
		seenSection[s.Name] = true

		entries := make([]Entry, 0, len(s.Entries))
		for _, e := range s.Entries {
			e.Section = s.Name
			if e.Pattern == "" {
				return nil, fmt.Errorf("%w: empty pattern in section %q", ErrInvalidCatalog, s.Name)
			}
			if e.Description == "" {
				e.Description = e.Pattern
			}
			if _, dup := c.index[e.ID()]; dup {
				return nil, fmt.Errorf("%w: duplicate pattern %q in section %q", ErrInvalidCatalog, e.Pattern, s.Name)
			}
			c.index[e.ID()] = c.size
			c.size++
			entries = append(entries, e)
		}
		c.sections = append(c.sections, Section{Name: s.Name, Entries: entries})
	}
	return c, nil
}

// Sections returns a copy of the catalog's sections in order.
func (c *Catalog) Sections() []Section {
	out := make([]Section, len(c.sections))
	for i, s := range c.sections {
		out[i] = Section{Name: s.Name, Entries: append([]Entry(nil), s.Entries...)}
	}
	return out
}

// Section returns the named section.
func (c *Catalog) Section(name string) (Section, bool) {
	for _, s := range c.sections {
		if s.Name == name {
			return Section{Name: s.Name, Entries: append([]Entry(nil), s.Entries...)}, true
		}
	}
	return Section{}, false
}

// Entries returns every entry in catalog order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, c.size)
	for _, s := range c.sections {
		out = append(out, s.Entries...)
	}
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return c.size
}

// Contains reports whether id names an entry of the catalog.
func (c *Catalog) Contains(id EntryID) bool {
	_, ok := c.index[id]
	return ok
}

// Resolve returns the selected entries in catalog order.
func (c *Catalog) Resolve(sel Selection) ([]Entry, error) {
	for id := range sel {
		if !c.Contains(id) {
			return nil, fmt.Errorf("%w: %s / %s", ErrUnknownEntry, id.Section, id.Pattern)
		}
	}
	out := make([]Entry, 0, len(sel))
	for _, s := range c.sections {
		for _, e := range s.Entries {
			if sel.Has(e.ID()) {
				out = append(out, e)
			}
		}
	}
	return out, nil
}
