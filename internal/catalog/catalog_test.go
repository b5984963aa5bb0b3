package catalog

import (
	"errors"
	"testing"
)

const validDataset = `
[[entry]]
id = "seoul"
name = "Seoul"
answer_type = "city"
lat = 37.57
lon = 126.98
tags = ["peninsula", "city", "coastal"]
default_zoom = 12
domestic = true
blurb = "Capital of South Korea."

[[entry]]
id = "sahara"
name = "Sahara"
answer_type = "desert"
lat = 23.4
lon = 25.66
tags = ["desert", "africa"]
default_zoom = 7
domestic = false
`

func TestParse_Valid(t *testing.T) {
	c, err := Parse([]byte(validDataset))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}

	e := c.Entries()[0]
	if e.ID != "seoul" || e.Name != "Seoul" || !e.Domestic {
		t.Errorf("unexpected first entry: %+v", e)
	}
	if e.Lat != 37.57 || e.Lon != 126.98 {
		t.Errorf("unexpected coordinates: %v, %v", e.Lat, e.Lon)
	}
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse([]byte(""))
	if !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		dataset string
	}{
		{
			name: "duplicate id",
			dataset: `
[[entry]]
id = "a"
name = "A"
lat = 0.0
lon = 0.0
default_zoom = 10

[[entry]]
id = "a"
name = "B"
lat = 0.0
lon = 0.0
default_zoom = 10
`,
		},
		{
			name: "missing id",
			dataset: `
[[entry]]
name = "A"
lat = 0.0
lon = 0.0
default_zoom = 10
`,
		},
		{
			name: "missing name",
			dataset: `
[[entry]]
id = "a"
lat = 0.0
lon = 0.0
default_zoom = 10
`,
		},
		{
			name: "latitude out of range",
			dataset: `
[[entry]]
id = "a"
name = "A"
lat = 91.0
lon = 0.0
default_zoom = 10
`,
		},
		{
			name: "longitude out of range",
			dataset: `
[[entry]]
id = "a"
name = "A"
lat = 0.0
lon = -200.0
default_zoom = 10
`,
		},
		{
			name: "zero default zoom",
			dataset: `
[[entry]]
id = "a"
name = "A"
lat = 0.0
lon = 0.0
default_zoom = 0
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.dataset)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoad_BundledDefault(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("loading bundled dataset: %v", err)
	}
	if c.Len() == 0 {
		t.Fatal("bundled dataset is empty")
	}

	var domestic, international int
	for _, e := range c.Entries() {
		if e.Domestic {
			domestic++
		} else {
			international++
		}
	}
	if domestic == 0 || international == 0 {
		t.Errorf("bundled dataset should cover both regions: domestic=%d international=%d", domestic, international)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/dataset.toml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
