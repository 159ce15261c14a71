package validate

import (
	"log/slog"
	"sort"

	"github.com/adalundhe/skillgraph/core/taxonomy"
)

// =============================================================================
// Reference Repair
// =============================================================================

// Repair removes references to skills that do not exist in the document:
// dangling parent, child, related, and prerequisite IDs and transferability
// targets. The document is modified in place. Returns the number of fields
// that were changed.
//
// Repair only drops references; it never invents data. Rerun Document
// afterward to confirm the remaining findings.
func Repair(doc *taxonomy.Document, logger *slog.Logger) int {
	if logger == nil {
		logger = slog.Default()
	}

	skills := doc.Skills()
	ids := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		ids[skill.ID] = struct{}{}
	}

	fixed := 0
	for _, skill := range skills {
		fields := []struct {
			name string
			list *[]string
		}{
			{"parent_skills", &skill.ParentSkills},
			{"child_skills", &skill.ChildSkills},
			{"related_skills", &skill.RelatedSkills},
			{"prerequisites", &skill.Prerequisites},
		}
		for _, field := range fields {
			if removed := dropMissing(field.list, ids); len(removed) > 0 {
				logger.Info("removed dangling references",
					"skill", skill.ID, "field", field.name, "removed", removed)
				fixed++
			}
		}

		if removed := dropMissingTransfer(skill.Transferability, ids); len(removed) > 0 {
			logger.Info("removed dangling references",
				"skill", skill.ID, "field", "transferability", "removed", removed)
			fixed++
		}
	}
	return fixed
}

func dropMissing(list *[]string, ids map[string]struct{}) []string {
	var kept, removed []string
	for _, id := range *list {
		if _, ok := ids[id]; ok {
			kept = append(kept, id)
		} else {
			removed = append(removed, id)
		}
	}
	if len(removed) > 0 {
		*list = kept
	}
	return removed
}

func dropMissingTransfer(transfer map[string]float64, ids map[string]struct{}) []string {
	var removed []string
	for target := range transfer {
		if _, ok := ids[target]; !ok {
			removed = append(removed, target)
		}
	}
	sort.Strings(removed)
	for _, target := range removed {
		delete(transfer, target)
	}
	return removed
}
