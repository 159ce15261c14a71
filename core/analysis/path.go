package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/adalundhe/skillgraph/core/taxonomy"
)

// =============================================================================
// Learning Path Planner
// =============================================================================

// Priority labels for learning-path recommendations.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

const (
	// HighPriorityScore is the minimum priority score for a high label.
	HighPriorityScore = 4.0

	// MediumPriorityScore is the minimum priority score for a medium label.
	MediumPriorityScore = 2.0

	// PrerequisiteBoost is added to the priority score when every
	// prerequisite of a skill is already in the current skill set.
	PrerequisiteBoost = 2.0
)

// maxReasonSkills caps how many current skills are named in an
// "extends your knowledge" reason.
const maxReasonSkills = 2

// Recommendation is one entry of a learning path.
type Recommendation struct {
	Skill            string  `json:"skill"`
	Priority         string  `json:"priority"`
	PriorityScore    float64 `json:"priority_score"`
	PrerequisitesMet bool    `json:"prerequisites_met"`
	Why              string  `json:"why"`
}

// LearningPath ranks the skills required by a target role that the candidate
// does not yet have, ordered by descending priority.
//
// Role membership is an exact, case-sensitive match against each skill's
// typical roles. The priority score combines industry demand weight, a boost
// when prerequisites are met, and the summed transfer score from every raw
// current-skill entry into the candidate skill. The sort is stable, so ties
// preserve store order.
func (a *Analyzer) LearningPath(currentSkills []string, targetRole string) []Recommendation {
	var roleSkills []*taxonomy.Skill
	for _, skill := range a.store.All() {
		if containsRole(skill.TypicalRoles, targetRole) {
			roleSkills = append(roleSkills, skill)
		}
	}

	currentSet := make(map[string]struct{}, len(currentSkills))
	for _, name := range currentSkills {
		key := name
		if canonical, ok := a.store.Normalize(name); ok {
			key = canonical
		}
		currentSet[key] = struct{}{}
	}

	var recommendations []Recommendation
	for _, skill := range roleSkills {
		if _, known := currentSet[skill.CanonicalName]; known {
			continue
		}

		prereqsMet := a.prerequisitesMet(skill, currentSet)

		score := skill.IndustryDemand.Weight()
		if prereqsMet {
			score += PrerequisiteBoost
		}
		for _, current := range currentSkills {
			score += a.store.Transferability(current, skill.CanonicalName)
		}

		recommendations = append(recommendations, Recommendation{
			Skill:            skill.CanonicalName,
			Priority:         priorityLabel(score),
			PriorityScore:    score,
			PrerequisitesMet: prereqsMet,
			Why:              a.learningReason(skill, currentSkills),
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].PriorityScore > recommendations[j].PriorityScore
	})
	return recommendations
}

// prerequisitesMet reports whether every prerequisite of skill, normalized
// to its canonical name, is present in the current set. A prerequisite that
// does not normalize can never be met.
func (a *Analyzer) prerequisitesMet(skill *taxonomy.Skill, currentSet map[string]struct{}) bool {
	for _, prereq := range skill.Prerequisites {
		canonical, ok := a.store.Normalize(prereq)
		if !ok {
			return false
		}
		if _, present := currentSet[canonical]; !present {
			return false
		}
	}
	return true
}

func priorityLabel(score float64) string {
	switch {
	case score >= HighPriorityScore:
		return PriorityHigh
	case score >= MediumPriorityScore:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// learningReason explains a recommendation for display. It prefers naming
// current skills related to the candidate skill, then high demand, then the
// skill's first parent, with a generic fallback.
func (a *Analyzer) learningReason(skill *taxonomy.Skill, currentSkills []string) string {
	var relatedCurrent []string
	for _, current := range currentSkills {
		if a.store.AreRelated(current, skill.CanonicalName) {
			relatedCurrent = append(relatedCurrent, current)
		}
	}
	if len(relatedCurrent) > 0 {
		if len(relatedCurrent) > maxReasonSkills {
			relatedCurrent = relatedCurrent[:maxReasonSkills]
		}
		return fmt.Sprintf("Extends your knowledge of %s", strings.Join(relatedCurrent, ", "))
	}

	if skill.IndustryDemand == taxonomy.DemandVeryHigh || skill.IndustryDemand == taxonomy.DemandHigh {
		return fmt.Sprintf("High market demand (%s)", skill.IndustryDemand.Display())
	}

	if len(skill.ParentSkills) > 0 {
		return fmt.Sprintf("Builds on %s", skill.ParentSkills[0])
	}

	return "Essential for role"
}

func containsRole(roles []string, role string) bool {
	for _, candidate := range roles {
		if candidate == role {
			return true
		}
	}
	return false
}
