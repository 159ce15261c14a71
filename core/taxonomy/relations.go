package taxonomy

// =============================================================================
// Relationship Navigator
// =============================================================================
//
// Parent/child/related edges are stored as skill IDs. Navigation resolves
// the query name through the alias index first; an unresolvable name yields
// an empty result rather than an error. Edge IDs that do not resolve to a
// stored record are skipped, keeping reads tolerant of stale data. Source
// order is preserved.

// Parents returns the parent skills of the named skill.
func (s *Store) Parents(name string) []*Skill {
	skill, ok := s.Find(name)
	if !ok {
		return nil
	}
	return s.resolveEdges(skill.ParentSkills)
}

// Children returns the child skills of the named skill.
func (s *Store) Children(name string) []*Skill {
	skill, ok := s.Find(name)
	if !ok {
		return nil
	}
	return s.resolveEdges(skill.ChildSkills)
}

// Related returns the explicitly related skills of the named skill.
func (s *Store) Related(name string) []*Skill {
	skill, ok := s.Find(name)
	if !ok {
		return nil
	}
	return s.resolveEdges(skill.RelatedSkills)
}

func (s *Store) resolveEdges(ids []string) []*Skill {
	var out []*Skill
	for _, id := range ids {
		if skill, ok := s.skills[id]; ok {
			out = append(out, skill)
		}
	}
	return out
}

// AreRelated reports whether two skills are related. Two independent signals
// are ORed: a structural one (either skill lists the other in its
// related_skills) and a taxonomic one (both share the same subcategory).
// False if either name fails to resolve.
func (s *Store) AreRelated(a, b string) bool {
	skillA, ok := s.Find(a)
	if !ok {
		return false
	}
	skillB, ok := s.Find(b)
	if !ok {
		return false
	}

	if containsID(skillA.RelatedSkills, skillB.ID) || containsID(skillB.RelatedSkills, skillA.ID) {
		return true
	}
	return skillA.Subcategory == skillB.Subcategory
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
