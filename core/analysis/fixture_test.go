package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adalundhe/skillgraph/core/taxonomy"
)

// =============================================================================
// Test Fixture
// =============================================================================
//
// A compact taxonomy crossing two categories, with authored transfer links in
// both directions, a dangling prerequisite, and marker phrases for the skills
// the proficiency tests exercise.

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()

	skills := []*taxonomy.Skill{
		{
			ID:            "javascript",
			CanonicalName: "JavaScript",
			Aliases:       []string{"JS", "ECMAScript"},
			Category:      "technology",
			Subcategory:   "frontend_development",
			Description:   "Dynamic language of the web platform.",
			ChildSkills:   []string{"react", "vue"},
			RelatedSkills: []string{"typescript"},
			Transferability: map[string]float64{
				"typescript": 0.9,
			},
			ProficiencyLevels: map[taxonomy.Level]taxonomy.ProficiencyLevel{
				taxonomy.LevelBeginner:     {Markers: []string{"simple scripts", "following tutorials"}},
				taxonomy.LevelIntermediate: {Markers: []string{"async programming", "interactive pages"}},
				taxonomy.LevelAdvanced:     {Markers: []string{"performance profiling", "complex architecture"}},
				taxonomy.LevelExpert:       {Markers: []string{"engine internals", "language specification"}},
			},
			TypicalRoles:   []string{"Frontend Developer"},
			IndustryDemand: taxonomy.DemandVeryHigh,
		},
		{
			ID:             "typescript",
			CanonicalName:  "TypeScript",
			Aliases:        []string{"TS"},
			Category:       "technology",
			Subcategory:    "frontend_development",
			Description:    "Typed superset of JavaScript.",
			ParentSkills:   []string{"javascript"},
			RelatedSkills:  []string{"javascript"},
			TypicalRoles:   []string{"Frontend Developer"},
			IndustryDemand: taxonomy.DemandVeryHigh,
			Prerequisites:  []string{"javascript"},
		},
		{
			ID:            "react",
			CanonicalName: "React",
			Aliases:       []string{"react.js", "ReactJS"},
			Category:      "technology",
			Subcategory:   "frontend_development",
			Description:   "Component-based UI library for the web.",
			ParentSkills:  []string{"javascript"},
			RelatedSkills: []string{"vue"},
			ProficiencyLevels: map[taxonomy.Level]taxonomy.ProficiencyLevel{
				taxonomy.LevelBeginner:     {Markers: []string{"simple todo app", "tutorial basics"}},
				taxonomy.LevelIntermediate: {Markers: []string{"hooks state management", "production app"}},
				taxonomy.LevelAdvanced:     {Markers: []string{"performance optimization", "architecture design"}},
				taxonomy.LevelExpert:       {Markers: []string{"framework internals", "open source maintainer"}},
			},
			TypicalRoles:   []string{"Frontend Developer"},
			IndustryDemand: taxonomy.DemandVeryHigh,
			Prerequisites:  []string{"javascript"},
		},
		{
			ID:            "vue",
			CanonicalName: "Vue.js",
			Aliases:       []string{"Vue", "VueJS"},
			Category:      "technology",
			Subcategory:   "frontend_development",
			Description:   "Progressive UI framework for the web.",
			ParentSkills:  []string{"javascript"},
			RelatedSkills: []string{"react"},
			Transferability: map[string]float64{
				"react": 0.85,
			},
			TypicalRoles:   []string{"Frontend Developer"},
			IndustryDemand: taxonomy.DemandHigh,
		},
		{
			ID:             "nodejs",
			CanonicalName:  "Node.js",
			Aliases:        []string{"Node", "NodeJS"},
			Category:       "technology",
			Subcategory:    "backend_development",
			Description:    "Server-side JavaScript runtime environment.",
			ParentSkills:   []string{"javascript"},
			TypicalRoles:   []string{"Backend Developer"},
			IndustryDemand: taxonomy.DemandHigh,
			Prerequisites:  []string{"javascript"},
		},
		{
			ID:             "python",
			CanonicalName:  "Python",
			Aliases:        []string{"Python3", "py"},
			Category:       "technology",
			Subcategory:    "backend_development",
			Description:    "General-purpose language for services and data work.",
			TypicalRoles:   []string{"Backend Developer", "Data Engineer"},
			IndustryDemand: taxonomy.DemandVeryHigh,
		},
		{
			ID:            "golang",
			CanonicalName: "Go",
			Aliases:       []string{"Golang"},
			Category:      "technology",
			Subcategory:   "backend_development",
			Description:   "Compiled language for networked services.",
			Transferability: map[string]float64{
				"python": 0.6,
			},
			ProficiencyLevels: map[taxonomy.Level]taxonomy.ProficiencyLevel{
				taxonomy.LevelBeginner:     {Markers: []string{"basic syntax", "small tools"}},
				taxonomy.LevelIntermediate: {Markers: []string{"goroutines channels", "http services"}},
				taxonomy.LevelAdvanced:     {Markers: []string{"runtime tuning", "distributed systems"}},
				taxonomy.LevelExpert:       {Markers: []string{"compiler contributions", "runtime internals"}},
			},
			TypicalRoles:   []string{"Backend Developer"},
			IndustryDemand: taxonomy.DemandHigh,
		},
		{
			ID:            "postgresql",
			CanonicalName: "PostgreSQL",
			Aliases:       []string{"Postgres"},
			Category:      "technology",
			Subcategory:   "databases",
			Description:   "Relational database with rich SQL support.",
			Transferability: map[string]float64{
				"mysql": 0.9,
			},
			TypicalRoles:   []string{"Backend Developer", "Data Engineer"},
			IndustryDemand: taxonomy.DemandHigh,
			// Dangling on purpose: "sql" is not in the fixture.
			Prerequisites: []string{"sql"},
		},
		{
			ID:             "mysql",
			CanonicalName:  "MySQL",
			Aliases:        []string{"MariaDB"},
			Category:       "technology",
			Subcategory:    "databases",
			Description:    "Widely deployed relational database.",
			TypicalRoles:   []string{"Backend Developer"},
			IndustryDemand: taxonomy.DemandMedium,
		},
		{
			ID:            "aws",
			CanonicalName: "AWS",
			Aliases:       []string{"Amazon Web Services"},
			Category:      "technology",
			Subcategory:   "cloud_platforms",
			Description:   "Amazon's cloud computing platform.",
			Transferability: map[string]float64{
				"gcp": 0.85,
			},
			TypicalRoles:   []string{"Cloud Engineer"},
			IndustryDemand: taxonomy.DemandVeryHigh,
		},
		{
			ID:             "gcp",
			CanonicalName:  "GCP",
			Aliases:        []string{"Google Cloud"},
			Category:       "technology",
			Subcategory:    "cloud_platforms",
			Description:    "Google's cloud computing platform.",
			TypicalRoles:   []string{"Cloud Engineer"},
			IndustryDemand: taxonomy.DemandHigh,
		},
		{
			ID:             "b2b_sales",
			CanonicalName:  "B2B Sales",
			Aliases:        []string{"Business to Business Sales"},
			Category:       "business",
			Subcategory:    "sales",
			Description:    "Selling products and services to other businesses.",
			TypicalRoles:   []string{"Account Executive"},
			IndustryDemand: taxonomy.DemandMedium,
		},
	}

	store, err := taxonomy.NewStore(skills)
	require.NoError(t, err)
	return NewAnalyzer(store)
}
