package catalog

import "fmt"

// Selection is the set of entries chosen for a run.
type Selection map[EntryID]struct{}

// NewSelection returns a selection holding ids.
func NewSelection(ids ...EntryID) Selection {
	s := make(Selection, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s Selection) Add(id EntryID) {
	s[id] = struct{}{}
}

func (s Selection) Has(id EntryID) bool {
	_, ok := s[id]
	return ok
}

// SelectAll selects every entry of c.
func SelectAll(c *Catalog) Selection {
	s := make(Selection, c.Len())
	for _, e := range c.Entries() {
		s.Add(e.ID())
	}
	return s
}

// SelectSection adds every entry of the named section to s.
func (s Selection) SelectSection(c *Catalog, name string) error {
	sec, ok := c.Section(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSection, name)
	}
	for _, e := range sec.Entries {
		s.Add(e.ID())
	}
	return nil
}

// SelectDescription adds every entry whose description matches.
func (s Selection) SelectDescription(c *Catalog, description string) error {
	found := false
	for _, e := range c.Entries() {
		if e.Description == description {
			s.Add(e.ID())
			found = true
		}
	}
	if !found {
		return fmt.Errorf("%w: no entry described as %q", ErrUnknownEntry, description)
	}
	return nil
}

// SectionState summarizes how much of a section is selected.
type SectionState int

const (
	SectionNone SectionState = iota
	SectionPartial
	SectionAll
)

func (s SectionState) String() string {
	switch s {
	case SectionAll:
		return "all"
	case SectionPartial:
		return "partial"
	default:
		return "none"
	}
}

// DeriveSectionState maps a selected/total count pair to a SectionState.
func DeriveSectionState(selected, total int) SectionState {
	switch {
	case selected <= 0:
		return SectionNone
	case selected >= total:
		return SectionAll
	default:
		return SectionPartial
	}
}

// StateOf reports the selection state of the named section.
func (s Selection) StateOf(c *Catalog, name string) SectionState {
	sec, ok := c.Section(name)
	if !ok {
		return SectionNone
	}
	selected := 0
	for _, e := range sec.Entries {
		if s.Has(e.ID()) {
			selected++
		}
	}
	return DeriveSectionState(selected, len(sec.Entries))
}
