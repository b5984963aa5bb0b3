package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ErrEmptyCatalog indicates the coordinate dataset contained no usable entries.
// It is fatal: the server cannot pose quizzes without coordinates.
var ErrEmptyCatalog = errors.New("coordinate catalog is empty")

//go:embed dataset.toml
var defaultDataset []byte

// Entry is one labeled coordinate the quiz can be built around.
//
// Entries are immutable after loading. Domestic entries lie inside the map
// provider's full-coverage home region and get hybrid (roads + labels) answer
// imagery; non-domestic entries fall back to a generic map link because the
// provider's international coverage and zoom range are limited.
type Entry struct {
	// ID uniquely identifies the entry within the dataset.
	ID string `toml:"id"`

	// Name is the expected answer, e.g. "Seoul" or "Hallasan".
	Name string `toml:"name"`

	// AnswerType is the unit of the expected answer (city, province,
	// mountain, island, ...). It is shown to the player in the question so
	// they know what kind of answer is expected, never the answer itself.
	AnswerType string `toml:"answer_type"`

	Lat float64 `toml:"lat"`
	Lon float64 `toml:"lon"`

	// Tags are lowercase keywords matched against quiz conditions
	// ("peninsula", "coastal", "desert", ...).
	Tags []string `toml:"tags"`

	// DefaultZoom is used when the caller does not request a zoom level.
	DefaultZoom int `toml:"default_zoom"`

	// Domestic reports whether the entry is inside the provider's home
	// region (the Korean peninsula for VWorld).
	Domestic bool `toml:"domestic"`

	// Blurb is a one-sentence explanation revealed with the answer.
	Blurb string `toml:"blurb"`
}

// Catalog is the immutable set of coordinate entries loaded at startup.
type Catalog struct {
	entries []Entry
}

type dataset struct {
	Entries []Entry `toml:"entry"`
}

// Load reads a coordinate dataset from the given TOML file. If path is empty
// the bundled default dataset is used.
//
// Returns ErrEmptyCatalog if the dataset contains no entries, or a validation
// error for malformed entries. Both are configuration errors and prevent
// startup.
func Load(path string) (*Catalog, error) {
	data := defaultDataset
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading dataset: %w", err)
		}
		data = b
	}
	return Parse(data)
}

// Parse decodes and validates a TOML coordinate dataset.
func Parse(data []byte) (*Catalog, error) {
	var ds dataset
	if err := toml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}
	if len(ds.Entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[string]bool, len(ds.Entries))
	for i := range ds.Entries {
		e := &ds.Entries[i]
		if e.ID == "" {
			return nil, fmt.Errorf("entry %d: missing id", i)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("entry %q: duplicate id", e.ID)
		}
		seen[e.ID] = true
		if e.Name == "" {
			return nil, fmt.Errorf("entry %q: missing name", e.ID)
		}
		if e.Lat < -90 || e.Lat > 90 {
			return nil, fmt.Errorf("entry %q: latitude %v out of range", e.ID, e.Lat)
		}
		if e.Lon < -180 || e.Lon > 180 {
			return nil, fmt.Errorf("entry %q: longitude %v out of range", e.ID, e.Lon)
		}
		if e.DefaultZoom <= 0 {
			return nil, fmt.Errorf("entry %q: default_zoom must be positive", e.ID)
		}
	}

	return &Catalog{entries: ds.Entries}, nil
}

// Entries returns all catalog entries. Callers must not modify the result.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Len returns the number of entries in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}
