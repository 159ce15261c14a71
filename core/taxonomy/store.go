package taxonomy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// =============================================================================
// Errors
// =============================================================================

var (
	// ErrDocumentUnavailable indicates the taxonomy source could not be read.
	ErrDocumentUnavailable = errors.New("taxonomy document unavailable")

	// ErrInvalidDocument indicates the taxonomy source is structurally invalid.
	ErrInvalidDocument = errors.New("invalid taxonomy document")
)

// =============================================================================
// Store
// =============================================================================

// Store is the read-only skill record store. It holds every skill from a
// loaded taxonomy document plus a derived alias index mapping the lowercased
// canonical name and every lowercased alias to the owning skill ID.
//
// A Store is immutable after construction; concurrent readers need no
// synchronization.
type Store struct {
	id     uuid.UUID
	skills map[string]*Skill
	order  []*Skill
	alias  map[string]string
}

// NewStore builds a store from an ordered skill slice. Skill order is
// preserved and becomes the iteration order for search and statistics.
// Alias index construction is last-write-wins; the data-integrity invariant
// that no two skills share a name or alias makes collisions a validator
// concern, not a store concern. An empty slice yields a valid empty store.
func NewStore(skills []*Skill) (*Store, error) {
	store := &Store{
		id:     uuid.New(),
		skills: make(map[string]*Skill, len(skills)),
		order:  make([]*Skill, 0, len(skills)),
		alias:  make(map[string]string),
	}

	for _, skill := range skills {
		if skill == nil || skill.ID == "" {
			return nil, fmt.Errorf("%w: skill record without id", ErrInvalidDocument)
		}
		store.skills[skill.ID] = skill
		store.order = append(store.order, skill)

		store.alias[strings.ToLower(skill.CanonicalName)] = skill.ID
		for _, alias := range skill.Aliases {
			store.alias[strings.ToLower(alias)] = skill.ID
		}
	}

	return store, nil
}

// NewStoreFromDocument builds a store from a parsed taxonomy document.
func NewStoreFromDocument(doc *Document) (*Store, error) {
	if doc == nil {
		return nil, ErrDocumentUnavailable
	}
	return NewStore(doc.Skills())
}

// Load reads a taxonomy file and builds a store from it. Any read or decode
// failure is fatal; a partially populated store is never produced.
func Load(path string) (*Store, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return NewStoreFromDocument(doc)
}

// ID returns the snapshot identity of this store instance. Each load gets a
// fresh ID so reload swaps are observable in logs.
func (s *Store) ID() uuid.UUID {
	return s.id
}

// Len returns the number of skill records.
func (s *Store) Len() int {
	return len(s.order)
}

// =============================================================================
// Lookup Engine
// =============================================================================

// Normalize resolves a free-text skill name or alias to its canonical name.
// Matching is case-insensitive and nothing more: no fuzzy matching, no
// whitespace or punctuation folding. The second return is false when the
// name does not resolve.
func (s *Store) Normalize(name string) (string, bool) {
	skill, ok := s.Find(name)
	if !ok {
		return "", false
	}
	return skill.CanonicalName, true
}

// Find resolves a free-text skill name or alias to its full record.
func (s *Store) Find(name string) (*Skill, bool) {
	id, ok := s.alias[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	skill, ok := s.skills[id]
	return skill, ok
}

// Get returns the skill with the given ID.
func (s *Store) Get(id string) (*Skill, bool) {
	skill, ok := s.skills[id]
	return skill, ok
}

// All returns every skill in store order. The returned slice is a copy;
// the records themselves are shared and must not be mutated.
func (s *Store) All() []*Skill {
	out := make([]*Skill, len(s.order))
	copy(out, s.order)
	return out
}

// ByCategory returns all skills whose category matches, case-insensitively,
// in store order.
func (s *Store) ByCategory(category string) []*Skill {
	var out []*Skill
	for _, skill := range s.order {
		if strings.EqualFold(skill.Category, category) {
			out = append(out, skill)
		}
	}
	return out
}

// BySubcategory returns all skills whose subcategory matches,
// case-insensitively, in store order.
func (s *Store) BySubcategory(subcategory string) []*Skill {
	var out []*Skill
	for _, skill := range s.order {
		if strings.EqualFold(skill.Subcategory, subcategory) {
			out = append(out, skill)
		}
	}
	return out
}

// Roles returns the typical roles for a skill, or nil if the name does not
// resolve.
func (s *Store) Roles(name string) []string {
	skill, ok := s.Find(name)
	if !ok {
		return nil
	}
	return skill.TypicalRoles
}

// ProficiencyMarkers returns the proficiency level map for a skill, or nil
// if the name does not resolve.
func (s *Store) ProficiencyMarkers(name string) map[Level]ProficiencyLevel {
	skill, ok := s.Find(name)
	if !ok {
		return nil
	}
	return skill.ProficiencyLevels
}
