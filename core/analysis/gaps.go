// Package analysis builds higher-level assessments on top of the taxonomy
// store: skill gap analysis between job requirements and candidate skills,
// priority-scored learning paths toward a target role, and proficiency
// estimation from free-text context.
//
// All inputs are free-text skill names resolved through the store's alias
// index. Names that fail to resolve are carried through as-is rather than
// rejected, since user-supplied skill strings are expected to be noisy.
package analysis

import "github.com/adalundhe/skillgraph/core/taxonomy"

// =============================================================================
// Thresholds
// =============================================================================

const (
	// TransferableThreshold is the minimum best transfer score for a missing
	// required skill to count as covered by a transferable candidate skill.
	TransferableThreshold = 0.70

	// MinorGapThreshold is the minimum best transfer score for a missing
	// required skill to count as a minor rather than critical gap.
	MinorGapThreshold = 0.50
)

// =============================================================================
// Analyzer
// =============================================================================

// Analyzer runs gap, learning-path, and proficiency assessments against a
// single store snapshot. The caller owns the store; the analyzer never
// reloads it.
type Analyzer struct {
	store *taxonomy.Store
}

// NewAnalyzer creates an analyzer over the given store.
func NewAnalyzer(store *taxonomy.Store) *Analyzer {
	return &Analyzer{store: store}
}

// =============================================================================
// Gap Analysis
// =============================================================================

// TransferMatch records a missing required skill together with the candidate
// skill that best transfers to it.
type TransferMatch struct {
	Required        string  `json:"required"`
	Has             string  `json:"has"`
	Transferability float64 `json:"transferability"`
}

// GapReport is the outcome of a gap analysis.
//
// Matches, CriticalGaps, and the required names of Transferable partition
// the normalized required set. MinorGaps is a re-filter of Transferable for
// scores in [MinorGapThreshold, TransferableThreshold), so a skill with a
// best score in that band appears in both MinorGaps and Transferable.
type GapReport struct {
	Matches      []string        `json:"matches"`
	CriticalGaps []string        `json:"critical_gaps"`
	MinorGaps    []string        `json:"minor_gaps"`
	Transferable []TransferMatch `json:"transferable"`
}

// AnalyzeGaps classifies a required skill list against a candidate skill
// list. Every name is normalized first; a name that fails to normalize keeps
// its original string as its key, so two identically typed unknown skills
// still match each other.
//
// For each required skill absent from the candidate set, the candidate skill
// with the highest transfer score is found. Candidate keys are scanned in
// first-appearance input order and only a strictly greater score replaces
// the best, so ties keep the earliest candidate.
func (a *Analyzer) AnalyzeGaps(required, candidate []string) *GapReport {
	requiredKeys := a.normalizeKeys(required)
	candidateKeys := a.normalizeKeys(candidate)

	candidateSet := make(map[string]struct{}, len(candidateKeys))
	for _, key := range candidateKeys {
		candidateSet[key] = struct{}{}
	}

	report := &GapReport{}

	var missing []string
	for _, key := range requiredKeys {
		if _, ok := candidateSet[key]; ok {
			report.Matches = append(report.Matches, key)
		} else {
			missing = append(missing, key)
		}
	}

	for _, requiredSkill := range missing {
		bestScore := 0.0
		bestMatch := ""
		for _, candidateSkill := range candidateKeys {
			score := a.store.Transferability(candidateSkill, requiredSkill)
			if score > bestScore {
				bestScore = score
				bestMatch = candidateSkill
			}
		}

		if bestScore >= MinorGapThreshold {
			report.Transferable = append(report.Transferable, TransferMatch{
				Required:        requiredSkill,
				Has:             bestMatch,
				Transferability: bestScore,
			})
		} else {
			report.CriticalGaps = append(report.CriticalGaps, requiredSkill)
		}
	}

	for _, match := range report.Transferable {
		if match.Transferability < TransferableThreshold {
			report.MinorGaps = append(report.MinorGaps, match.Required)
		}
	}

	return report
}

// normalizeKeys maps each name through Normalize, keeping unresolved names
// verbatim, and collapses duplicates while preserving first-appearance order.
func (a *Analyzer) normalizeKeys(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	keys := make([]string, 0, len(names))
	for _, name := range names {
		key := name
		if canonical, ok := a.store.Normalize(name); ok {
			key = canonical
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}
