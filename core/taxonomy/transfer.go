package taxonomy

// =============================================================================
// Transferability Scorer
// =============================================================================

const (
	// SubcategoryTransfer is the heuristic score for two skills in the same
	// subcategory with no authored link in either direction.
	SubcategoryTransfer = 0.50

	// CategoryTransfer is the heuristic score for two skills in the same
	// category but different subcategories, with no authored link.
	CategoryTransfer = 0.30
)

// Transferability returns the directional transfer score from one skill to
// another, in [0, 1]. Both names resolve through the alias index; if either
// fails to resolve the score is 0.
//
// Evaluation order, first applicable rule wins:
//  1. the source skill's authored score for the target
//  2. the target skill's authored score for the source (reverse-authored
//     data is treated as equally authoritative evidence of a relationship)
//  3. SubcategoryTransfer when both share a subcategory
//  4. CategoryTransfer when both share a category
//  5. 0
func (s *Store) Transferability(from, to string) float64 {
	source, ok := s.Find(from)
	if !ok {
		return 0.0
	}
	target, ok := s.Find(to)
	if !ok {
		return 0.0
	}

	if score, ok := source.Transferability[target.ID]; ok {
		return score
	}
	if score, ok := target.Transferability[source.ID]; ok {
		return score
	}

	if source.Subcategory == target.Subcategory {
		return SubcategoryTransfer
	}
	if source.Category == target.Category {
		return CategoryTransfer
	}
	return 0.0
}
