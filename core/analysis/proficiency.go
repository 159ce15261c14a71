package analysis

import (
	"strings"

	"github.com/adalundhe/skillgraph/core/taxonomy"
)

// =============================================================================
// Proficiency Assessor
// =============================================================================

// AssessProficiency estimates a proficiency level for a skill from a
// free-text description of experience.
//
// Each level is scored by counting its marker phrases for which any single
// word of the phrase appears as a case-insensitive substring of the context.
// The highest-scoring level wins; ties resolve to the level appearing first
// in the canonical tier ordering. The second return is false when the skill
// does not resolve or no marker matches at all.
func (a *Analyzer) AssessProficiency(skillName, context string) (taxonomy.Level, bool) {
	skill, ok := a.store.Find(skillName)
	if !ok {
		return "", false
	}

	contextLower := strings.ToLower(context)

	bestLevel := taxonomy.Level("")
	bestScore := 0
	for _, level := range taxonomy.Levels {
		prof, ok := skill.ProficiencyLevels[level]
		if !ok {
			continue
		}
		score := scoreMarkers(prof.Markers, contextLower)
		if score > bestScore {
			bestScore = score
			bestLevel = level
		}
	}

	if bestScore == 0 {
		return "", false
	}
	return bestLevel, true
}

// scoreMarkers counts markers with at least one word present in the context.
func scoreMarkers(markers []string, contextLower string) int {
	score := 0
	for _, marker := range markers {
		for _, word := range strings.Fields(marker) {
			if strings.Contains(contextLower, strings.ToLower(word)) {
				score++
				break
			}
		}
	}
	return score
}
