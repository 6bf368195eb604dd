package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type fileCatalog struct {
	Sections []fileSection `yaml:"sections"`
}

type fileSection struct {
	Name    string      `yaml:"name"`
	Entries []fileEntry `yaml:"entries"`
}

type fileEntry struct {
	Pattern     string `yaml:"pattern"`
	Description string `yaml:"description"`
}

// Parse decodes a YAML catalog document.
func Parse(r io.Reader) (*Catalog, error) {
	var doc fileCatalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidCatalog)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	if len(doc.Sections) == 0 {
		return nil, fmt.Errorf("%w: no sections", ErrInvalidCatalog)
	}

	sections := make([]Section, 0, len(doc.Sections))
	for _, fs := range doc.Sections {
		s := Section{Name: fs.Name}
		for _, fe := range fs.Entries {
			s.Entries = append(s.Entries, Entry{Pattern: fe.Pattern, Description: fe.Description})
		}
		sections = append(sections, s)
	}
	return New(sections)
}

// Load reads a YAML catalog from path on fsys.
func Load(fsys afero.Fs, path string) (*Catalog, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	c, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}
