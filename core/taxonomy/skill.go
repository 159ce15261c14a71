// Package taxonomy provides the in-memory skills knowledge base: a read-only
// store of skill records with alias normalization, relationship navigation,
// transferability scoring, substring search, and aggregate statistics.
//
// The store is built once from a validated taxonomy document and never
// mutated afterward. Reloads construct a fresh store and swap the reference
// atomically (see Manager).
package taxonomy

import "strings"

// =============================================================================
// Proficiency Levels
// =============================================================================

// Level identifies a proficiency tier.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
	LevelExpert       Level = "expert"
)

// Levels is the canonical tier ordering. Operations that break ties between
// levels (proficiency assessment) resolve them in this order.
var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}

// ProficiencyLevel describes one tier of proficiency for a skill.
type ProficiencyLevel struct {
	// Markers are keyword phrases that signal this tier in free text.
	Markers []string `json:"markers" yaml:"markers"`

	// TypicalExperience describes experience usually seen at this tier.
	TypicalExperience string `json:"typical_experience" yaml:"typical_experience"`

	// ExampleProjects are optional illustrative projects.
	ExampleProjects []string `json:"example_projects,omitempty" yaml:"example_projects,omitempty"`
}

// =============================================================================
// Industry Demand
// =============================================================================

// Demand classifies current industry demand for a skill.
type Demand string

const (
	DemandVeryHigh  Demand = "very_high"
	DemandHigh      Demand = "high"
	DemandMedium    Demand = "medium"
	DemandLow       Demand = "low"
	DemandDeclining Demand = "declining"
)

// Demands lists the valid demand values.
var Demands = []Demand{DemandVeryHigh, DemandHigh, DemandMedium, DemandLow, DemandDeclining}

// Valid reports whether d is one of the known demand values.
func (d Demand) Valid() bool {
	switch d {
	case DemandVeryHigh, DemandHigh, DemandMedium, DemandLow, DemandDeclining:
		return true
	}
	return false
}

// Weight returns the learning-path priority contribution of this demand
// level. Low and declining demand contribute nothing.
func (d Demand) Weight() float64 {
	switch d {
	case DemandVeryHigh:
		return 3.0
	case DemandHigh:
		return 2.0
	case DemandMedium:
		return 1.0
	}
	return 0.0
}

// Display returns the demand value with underscores replaced by spaces,
// e.g. "very_high" -> "very high".
func (d Demand) Display() string {
	return strings.ReplaceAll(string(d), "_", " ")
}

// =============================================================================
// Skill
// =============================================================================

// Skill is a single record in the taxonomy.
//
// IDs are lowercase snake_case and unique across the store. Canonical names
// and aliases are unique case-insensitively across the whole store. Edge
// lists (parents, children, related, prerequisites) and transferability keys
// reference other skills by ID; unresolved references are tolerated at read
// time and skipped.
type Skill struct {
	ID            string `json:"id" yaml:"id"`
	CanonicalName string `json:"canonical_name" yaml:"canonical_name"`

	Aliases []string `json:"aliases" yaml:"aliases"`

	Category    string   `json:"category" yaml:"category"`
	Subcategory string   `json:"subcategory" yaml:"subcategory"`
	Tags        []string `json:"tags" yaml:"tags"`
	Description string   `json:"description" yaml:"description"`

	ParentSkills  []string `json:"parent_skills" yaml:"parent_skills"`
	ChildSkills   []string `json:"child_skills" yaml:"child_skills"`
	RelatedSkills []string `json:"related_skills" yaml:"related_skills"`

	// Transferability maps a target skill ID to a directional score in
	// [0, 1]. A -> B may differ from B -> A.
	Transferability map[string]float64 `json:"transferability" yaml:"transferability"`

	ProficiencyLevels map[Level]ProficiencyLevel `json:"proficiency_levels" yaml:"proficiency_levels"`

	TypicalRoles   []string `json:"typical_roles" yaml:"typical_roles"`
	IndustryDemand Demand   `json:"industry_demand" yaml:"industry_demand"`
	Prerequisites  []string `json:"prerequisites" yaml:"prerequisites"`

	LastUpdated string `json:"last_updated,omitempty" yaml:"last_updated,omitempty"`
	Deprecated  bool   `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
}
