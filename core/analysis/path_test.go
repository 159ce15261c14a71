package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLearningPath_FrontendDeveloper(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	path := analyzer.LearningPath([]string{"JavaScript"}, "Frontend Developer")
	require.Len(t, path, 3)

	// TypeScript: demand 3 + prerequisite boost 2 + authored transfer 0.9.
	assert.Equal(t, "TypeScript", path[0].Skill)
	assert.InDelta(t, 5.9, path[0].PriorityScore, 1e-9)
	assert.Equal(t, PriorityHigh, path[0].Priority)
	assert.True(t, path[0].PrerequisitesMet)

	// React: demand 3 + boost 2 + subcategory transfer 0.5.
	assert.Equal(t, "React", path[1].Skill)
	assert.InDelta(t, 5.5, path[1].PriorityScore, 1e-9)
	assert.Equal(t, PriorityHigh, path[1].Priority)

	// Vue.js: demand 2 + boost 2 (no prerequisites) + subcategory transfer 0.5.
	assert.Equal(t, "Vue.js", path[2].Skill)
	assert.InDelta(t, 4.5, path[2].PriorityScore, 1e-9)
	assert.Equal(t, PriorityHigh, path[2].Priority)
}

func TestLearningPath_SkipsKnownSkills(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	path := analyzer.LearningPath([]string{"JS", "react.js", "TS", "Vue"}, "Frontend Developer")
	assert.Empty(t, path)
}

func TestLearningPath_BackendDeveloperFromScratch(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	path := analyzer.LearningPath(nil, "Backend Developer")
	require.Len(t, path, 5)

	assert.Equal(t, "Python", path[0].Skill)
	assert.InDelta(t, 5.0, path[0].PriorityScore, 1e-9)
	assert.Equal(t, "Go", path[1].Skill)
	assert.InDelta(t, 4.0, path[1].PriorityScore, 1e-9)
	assert.Equal(t, "MySQL", path[2].Skill)
	assert.InDelta(t, 3.0, path[2].PriorityScore, 1e-9)
	assert.Equal(t, PriorityMedium, path[2].Priority)

	// Node.js and PostgreSQL tie at 2.0; the stable sort keeps store order.
	assert.Equal(t, "Node.js", path[3].Skill)
	assert.Equal(t, "PostgreSQL", path[4].Skill)
	assert.Equal(t, PriorityMedium, path[3].Priority)
}

func TestLearningPath_DanglingPrerequisiteNeverMet(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	path := analyzer.LearningPath([]string{"MySQL"}, "Data Engineer")
	require.NotEmpty(t, path)

	for _, rec := range path {
		if rec.Skill == "PostgreSQL" {
			assert.False(t, rec.PrerequisitesMet)
			return
		}
	}
	t.Fatal("expected PostgreSQL in the recommendations")
}

func TestLearningPath_Reasons(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	frontend := analyzer.LearningPath([]string{"JavaScript"}, "Frontend Developer")
	require.NotEmpty(t, frontend)
	assert.Equal(t, "Extends your knowledge of JavaScript", frontend[0].Why)

	cloud := analyzer.LearningPath([]string{"B2B Sales"}, "Cloud Engineer")
	require.Len(t, cloud, 2)
	assert.Equal(t, "AWS", cloud[0].Skill)
	assert.Equal(t, "High market demand (very high)", cloud[0].Why)
	assert.Equal(t, "High market demand (high)", cloud[1].Why)
}

func TestLearningPath_UnknownRole(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	assert.Empty(t, analyzer.LearningPath([]string{"JavaScript"}, "Astronaut"))

	// Role matching is exact, not case-insensitive.
	assert.Empty(t, analyzer.LearningPath(nil, "frontend developer"))
}
