package catalog

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
)

// MatchPolicy controls how condition keywords are compared against entry tags.
type MatchPolicy string

const (
	// MatchSubstring treats a keyword as matching when it contains a tag or
	// a tag contains it ("coast" matches "coastal").
	MatchSubstring MatchPolicy = "substring"

	// MatchExact requires keyword and tag to be equal.
	MatchExact MatchPolicy = "exact"
)

// SelectionPolicy controls which entry is chosen from the filtered set.
type SelectionPolicy string

const (
	// SelectRandom picks uniformly at random from the filtered set.
	SelectRandom SelectionPolicy = "random"

	// SelectFirst deterministically picks the first filtered entry in
	// dataset order.
	SelectFirst SelectionPolicy = "first"
)

// Matcher selects a quiz target for a free-text condition.
type Matcher interface {
	Match(condition string) (Entry, error)
}

// KeywordMatcher filters the catalog by keyword/tag intersection.
//
// A condition like "peninsula city coastal" is tokenized into keywords; entries
// whose tags intersect the keyword set form the candidate pool. An empty pool
// falls back to the entire catalog, so Match never fails on a non-empty
// catalog.
type KeywordMatcher struct {
	catalog   *Catalog
	match     MatchPolicy
	selection SelectionPolicy

	mu  sync.Mutex
	rng *rand.Rand
}

// NewKeywordMatcher builds a matcher over the given catalog. The seed feeds
// the random selection policy; it is ignored for SelectFirst.
func NewKeywordMatcher(c *Catalog, match MatchPolicy, selection SelectionPolicy, seed int64) (*KeywordMatcher, error) {
	switch match {
	case MatchSubstring, MatchExact:
	default:
		return nil, fmt.Errorf("unknown match policy %q", match)
	}
	switch selection {
	case SelectRandom, SelectFirst:
	default:
		return nil, fmt.Errorf("unknown selection policy %q", selection)
	}
	if c == nil || c.Len() == 0 {
		return nil, ErrEmptyCatalog
	}
	return &KeywordMatcher{
		catalog:   c,
		match:     match,
		selection: selection,
		rng:       rand.New(rand.NewSource(seed)),
	}, nil
}

// Match returns a catalog entry for the condition. When at least one entry's
// tags intersect the condition keywords, the result is drawn from that subset;
// otherwise it is drawn from the full catalog.
func (m *KeywordMatcher) Match(condition string) (Entry, error) {
	keywords := Tokenize(condition)

	var candidates []Entry
	for _, e := range m.catalog.Entries() {
		if m.entryMatches(e, keywords) {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		candidates = m.catalog.Entries()
	}

	if m.selection == SelectFirst {
		return candidates[0], nil
	}

	m.mu.Lock()
	idx := m.rng.Intn(len(candidates))
	m.mu.Unlock()
	return candidates[idx], nil
}

func (m *KeywordMatcher) entryMatches(e Entry, keywords []string) bool {
	for _, kw := range keywords {
		for _, tag := range e.Tags {
			if m.tagMatches(strings.ToLower(tag), kw) {
				return true
			}
		}
	}
	return false
}

func (m *KeywordMatcher) tagMatches(tag, keyword string) bool {
	if m.match == MatchExact {
		return tag == keyword
	}
	return strings.Contains(tag, keyword) || strings.Contains(keyword, tag)
}

// Tokenize lowercases a condition string and splits it into keywords on
// whitespace, commas, and semicolons. Empty tokens are dropped.
func Tokenize(condition string) []string {
	return strings.FieldsFunc(strings.ToLower(condition), func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', ',', ';', '/':
			return true
		}
		return false
	})
}
