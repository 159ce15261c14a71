package taxonomy

import "strings"

// =============================================================================
// Search & Statistics
// =============================================================================

// Search returns skills matching the query as a case-insensitive substring
// of the canonical name, any alias, or any tag, tested in that order with a
// short-circuit per skill. Results preserve store order. A positive limit
// truncates the result; limit <= 0 means unlimited.
func (s *Store) Search(query string, limit int) []*Skill {
	queryLower := strings.ToLower(query)

	var results []*Skill
	for _, skill := range s.order {
		if skillMatches(skill, queryLower) {
			results = append(results, skill)
			if limit > 0 && len(results) == limit {
				break
			}
		}
	}
	return results
}

func skillMatches(skill *Skill, queryLower string) bool {
	if strings.Contains(strings.ToLower(skill.CanonicalName), queryLower) {
		return true
	}
	for _, alias := range skill.Aliases {
		if strings.Contains(strings.ToLower(alias), queryLower) {
			return true
		}
	}
	for _, tag := range skill.Tags {
		if strings.Contains(strings.ToLower(tag), queryLower) {
			return true
		}
	}
	return false
}

// Statistics aggregates counts over the whole store.
type Statistics struct {
	TotalSkills                 int            `json:"total_skills"`
	Categories                  int            `json:"categories"`
	Subcategories               int            `json:"subcategories"`
	TotalAliases                int            `json:"total_aliases"`
	DemandDistribution          map[Demand]int `json:"demand_distribution"`
	AverageTransferabilityLinks float64        `json:"average_transferability_links"`
}

// Statistics returns aggregate counts for the store. The average number of
// transferability links is 0 for an empty store.
func (s *Store) Statistics() Statistics {
	stats := Statistics{
		TotalSkills:        len(s.order),
		DemandDistribution: make(map[Demand]int),
	}

	categories := make(map[string]struct{})
	subcategories := make(map[string]struct{})
	totalTransfer := 0

	for _, skill := range s.order {
		categories[skill.Category] = struct{}{}
		subcategories[skill.Subcategory] = struct{}{}
		stats.TotalAliases += len(skill.Aliases)
		stats.DemandDistribution[skill.IndustryDemand]++
		totalTransfer += len(skill.Transferability)
	}

	stats.Categories = len(categories)
	stats.Subcategories = len(subcategories)
	if len(s.order) > 0 {
		stats.AverageTransferabilityLinks = float64(totalTransfer) / float64(len(s.order))
	}
	return stats
}
