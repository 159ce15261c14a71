// Package validate checks taxonomy documents against the data-integrity
// rules the runtime store assumes: unique identities, resolvable references,
// complete proficiency data, and consistent categorization. The store itself
// tolerates dirty data at read time; detecting and reporting it is this
// package's job, before the data ships.
package validate

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/adalundhe/skillgraph/core/taxonomy"
)

// =============================================================================
// Rules
// =============================================================================

// Rule identifies a validation rule.
type Rule string

const (
	RuleRequiredFields    Rule = "required_fields"
	RuleIDFormat          Rule = "id_format"
	RuleDuplicateID       Rule = "duplicate_id"
	RuleDuplicateName     Rule = "duplicate_name"
	RuleDuplicateAlias    Rule = "duplicate_alias"
	RuleDanglingReference Rule = "dangling_reference"
	RuleTransferScore     Rule = "transfer_score"
	RuleSelfReference     Rule = "self_reference"
	RuleLocationMismatch  Rule = "location_mismatch"
	RuleProficiency       Rule = "proficiency_levels"
	RuleDemand            Rule = "industry_demand"
	RuleAliases           Rule = "aliases"
	RuleRoles             Rule = "typical_roles"
	RuleDescription       Rule = "description_length"
)

const (
	// MinDescriptionLen and MaxDescriptionLen bound skill descriptions.
	MinDescriptionLen = 10
	MaxDescriptionLen = 500

	// MinMarkers is the minimum marker phrases per proficiency level.
	MinMarkers = 2
)

var idPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Issue is a single validation finding.
type Issue struct {
	Rule    Rule   `json:"rule"`
	SkillID string `json:"skill_id,omitempty"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.SkillID == "" {
		return fmt.Sprintf("[%s] %s", i.Rule, i.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", i.Rule, i.SkillID, i.Message)
}

// =============================================================================
// Validator
// =============================================================================

// Document validates a parsed taxonomy document and returns every finding.
// An empty result means the document satisfies all store invariants.
func Document(doc *taxonomy.Document) []Issue {
	var issues []Issue

	skills := doc.Skills()
	ids := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		ids[skill.ID] = struct{}{}
	}

	issues = append(issues, checkIdentities(skills)...)
	issues = append(issues, checkLocations(doc)...)
	for _, skill := range skills {
		issues = append(issues, checkSkill(skill, ids)...)
	}
	return issues
}

// checkIdentities flags duplicate IDs, canonical names, and aliases across
// the whole document. Canonical names and aliases share one case-folded
// namespace because both feed the alias index.
func checkIdentities(skills []*taxonomy.Skill) []Issue {
	var issues []Issue

	seenIDs := make(map[string]string)
	seenNames := make(map[string]string)

	for _, skill := range skills {
		if prior, dup := seenIDs[skill.ID]; dup {
			issues = append(issues, Issue{
				Rule:    RuleDuplicateID,
				SkillID: skill.ID,
				Message: fmt.Sprintf("id already used by %q", prior),
			})
		}
		seenIDs[skill.ID] = skill.ID

		name := strings.ToLower(skill.CanonicalName)
		if prior, dup := seenNames[name]; dup {
			issues = append(issues, Issue{
				Rule:    RuleDuplicateName,
				SkillID: skill.ID,
				Message: fmt.Sprintf("canonical name %q already used by %q", skill.CanonicalName, prior),
			})
		}
		seenNames[name] = skill.ID

		for _, alias := range skill.Aliases {
			key := strings.ToLower(alias)
			if prior, dup := seenNames[key]; dup && prior != skill.ID {
				issues = append(issues, Issue{
					Rule:    RuleDuplicateAlias,
					SkillID: skill.ID,
					Message: fmt.Sprintf("alias %q already used by %q", alias, prior),
				})
				continue
			}
			seenNames[key] = skill.ID
		}
	}
	return issues
}

// checkLocations verifies each skill's category and subcategory equal the
// keys of the containers it is nested under.
func checkLocations(doc *taxonomy.Document) []Issue {
	var issues []Issue

	categoryKeys := sortedKeys(doc.Categories)
	for _, categoryKey := range categoryKeys {
		category := doc.Categories[categoryKey]
		for _, subcategoryKey := range sortedKeys(category.Subcategories) {
			for _, skill := range category.Subcategories[subcategoryKey].Skills {
				if skill.Category != categoryKey {
					issues = append(issues, Issue{
						Rule:    RuleLocationMismatch,
						SkillID: skill.ID,
						Message: fmt.Sprintf("category %q does not match location %q", skill.Category, categoryKey),
					})
				}
				if skill.Subcategory != subcategoryKey {
					issues = append(issues, Issue{
						Rule:    RuleLocationMismatch,
						SkillID: skill.ID,
						Message: fmt.Sprintf("subcategory %q does not match location %q", skill.Subcategory, subcategoryKey),
					})
				}
			}
		}
	}
	return issues
}

func checkSkill(skill *taxonomy.Skill, ids map[string]struct{}) []Issue {
	var issues []Issue

	add := func(rule Rule, format string, args ...any) {
		issues = append(issues, Issue{
			Rule:    rule,
			SkillID: skill.ID,
			Message: fmt.Sprintf(format, args...),
		})
	}

	if skill.ID == "" || skill.CanonicalName == "" {
		add(RuleRequiredFields, "id and canonical_name are required")
	}
	if !idPattern.MatchString(skill.ID) {
		add(RuleIDFormat, "id %q is not lowercase snake_case", skill.ID)
	}
	if length := len(skill.Description); length < MinDescriptionLen || length > MaxDescriptionLen {
		add(RuleDescription, "description length %d not in %d-%d", length, MinDescriptionLen, MaxDescriptionLen)
	}
	if len(skill.Aliases) == 0 {
		add(RuleAliases, "skill has no aliases")
	}
	if len(skill.TypicalRoles) == 0 {
		add(RuleRoles, "skill has no typical roles")
	}
	if !skill.IndustryDemand.Valid() {
		add(RuleDemand, "invalid industry demand %q", skill.IndustryDemand)
	}

	issues = append(issues, checkProficiency(skill)...)
	issues = append(issues, checkReferences(skill, ids)...)
	return issues
}

// checkProficiency requires exactly the four canonical levels, each with at
// least MinMarkers marker phrases.
func checkProficiency(skill *taxonomy.Skill) []Issue {
	var issues []Issue

	if len(skill.ProficiencyLevels) != len(taxonomy.Levels) {
		issues = append(issues, Issue{
			Rule:    RuleProficiency,
			SkillID: skill.ID,
			Message: fmt.Sprintf("expected %d proficiency levels, found %d", len(taxonomy.Levels), len(skill.ProficiencyLevels)),
		})
	}
	for _, level := range taxonomy.Levels {
		prof, ok := skill.ProficiencyLevels[level]
		if !ok {
			issues = append(issues, Issue{
				Rule:    RuleProficiency,
				SkillID: skill.ID,
				Message: fmt.Sprintf("missing proficiency level %q", level),
			})
			continue
		}
		if len(prof.Markers) < MinMarkers {
			issues = append(issues, Issue{
				Rule:    RuleProficiency,
				SkillID: skill.ID,
				Message: fmt.Sprintf("level %q needs at least %d markers, found %d", level, MinMarkers, len(prof.Markers)),
			})
		}
	}
	return issues
}

// checkReferences verifies every edge resolves, transfer scores are in
// bounds, and the skill never references itself.
func checkReferences(skill *taxonomy.Skill, ids map[string]struct{}) []Issue {
	var issues []Issue

	add := func(rule Rule, format string, args ...any) {
		issues = append(issues, Issue{
			Rule:    rule,
			SkillID: skill.ID,
			Message: fmt.Sprintf(format, args...),
		})
	}

	edges := []struct {
		field string
		ids   []string
	}{
		{"parent_skills", skill.ParentSkills},
		{"child_skills", skill.ChildSkills},
		{"related_skills", skill.RelatedSkills},
		{"prerequisites", skill.Prerequisites},
	}
	for _, edge := range edges {
		for _, id := range edge.ids {
			if id == skill.ID {
				add(RuleSelfReference, "%s contains the skill itself", edge.field)
				continue
			}
			if _, ok := ids[id]; !ok {
				add(RuleDanglingReference, "%s references missing skill %q", edge.field, id)
			}
		}
	}

	for _, target := range sortedKeys(skill.Transferability) {
		score := skill.Transferability[target]
		if target == skill.ID {
			add(RuleSelfReference, "transferability contains the skill itself")
		} else if _, ok := ids[target]; !ok {
			add(RuleDanglingReference, "transferability references missing skill %q", target)
		}
		if score < 0.0 || score > 1.0 {
			add(RuleTransferScore, "score %.2f to %q outside [0,1]", score, target)
		}
	}
	return issues
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
