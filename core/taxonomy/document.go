package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// Taxonomy Document
// =============================================================================
//
// The on-disk contract: a document with a categories mapping, each category
// holding a subcategories mapping, each subcategory holding an ordered list
// of skill records. JSON is the primary format; YAML is accepted for
// hand-maintained taxonomies.

// Document is the parsed taxonomy source file.
type Document struct {
	Version     string              `json:"version" yaml:"version"`
	LastUpdated string              `json:"last_updated" yaml:"last_updated"`
	Categories  map[string]Category `json:"categories" yaml:"categories"`
}

// Category groups subcategories under a classification key.
type Category struct {
	Name          string                 `json:"name,omitempty" yaml:"name,omitempty"`
	Description   string                 `json:"description,omitempty" yaml:"description,omitempty"`
	Subcategories map[string]Subcategory `json:"subcategories" yaml:"subcategories"`
}

// Subcategory holds the ordered skill records nested under it.
type Subcategory struct {
	Name   string   `json:"name,omitempty" yaml:"name,omitempty"`
	Skills []*Skill `json:"skills" yaml:"skills"`
}

// Skills flattens the document into a single ordered slice. Category and
// subcategory keys are visited in sorted order so the result is stable
// across loads; within a subcategory, document order is preserved.
func (d *Document) Skills() []*Skill {
	categoryKeys := make([]string, 0, len(d.Categories))
	for key := range d.Categories {
		categoryKeys = append(categoryKeys, key)
	}
	sort.Strings(categoryKeys)

	var skills []*Skill
	for _, categoryKey := range categoryKeys {
		category := d.Categories[categoryKey]

		subcategoryKeys := make([]string, 0, len(category.Subcategories))
		for key := range category.Subcategories {
			subcategoryKeys = append(subcategoryKeys, key)
		}
		sort.Strings(subcategoryKeys)

		for _, subcategoryKey := range subcategoryKeys {
			skills = append(skills, category.Subcategories[subcategoryKey].Skills...)
		}
	}
	return skills
}

// ParseDocument decodes a JSON taxonomy document. A document that fails to
// decode or has no categories is rejected outright; there is no partial load.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if len(doc.Categories) == 0 {
		return nil, fmt.Errorf("%w: document has no categories", ErrInvalidDocument)
	}
	return &doc, nil
}

// ParseDocumentYAML decodes a YAML taxonomy document.
func ParseDocumentYAML(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if len(doc.Categories) == 0 {
		return nil, fmt.Errorf("%w: document has no categories", ErrInvalidDocument)
	}
	return &doc, nil
}

// LoadDocument reads and decodes a taxonomy file. The codec is selected by
// extension: .yaml/.yml use YAML, everything else uses JSON.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentUnavailable, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseDocumentYAML(data)
	default:
		return ParseDocument(data)
	}
}
