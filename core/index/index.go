// Package index provides ranked full-text search over the taxonomy,
// complementing the store's exact substring search. A skill's canonical
// name, aliases, tags, and description are indexed into an in-memory Bleve
// index; queries return skills with relevance scores. Query results are
// cached since the underlying store never changes.
package index

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/adalundhe/skillgraph/core/taxonomy"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// DefaultLimit is the default number of ranked results.
	DefaultLimit = 10

	// DefaultCacheSize is the default query-result cache capacity.
	DefaultCacheSize = 256
)

// ErrIndexClosed indicates the index was queried after Close.
var ErrIndexClosed = errors.New("skill index is closed")

// =============================================================================
// Skill Index
// =============================================================================

// Result is one ranked search hit.
type Result struct {
	Skill *taxonomy.Skill
	Score float64
}

// skillDocument is the shape stored in the Bleve index.
type skillDocument struct {
	Name        string `json:"name"`
	Aliases     string `json:"aliases"`
	Tags        string `json:"tags"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
}

// Index is a ranked full-text search index over one store snapshot. Build a
// new index after a store swap; indexes are not mutated in place.
type Index struct {
	store  *taxonomy.Store
	bleve  bleve.Index
	cache  *lru.Cache[string, []Result]
	closed bool
}

// New builds an in-memory index over every skill in the store.
func New(store *taxonomy.Store) (*Index, error) {
	mapping := bleve.NewIndexMapping()
	idx, err := bleve.NewMemOnly(mapping)
	if err != nil {
		return nil, fmt.Errorf("create skill index: %w", err)
	}

	batch := idx.NewBatch()
	for _, skill := range store.All() {
		doc := skillDocument{
			Name:        skill.CanonicalName,
			Aliases:     strings.Join(skill.Aliases, " "),
			Tags:        strings.Join(skill.Tags, " "),
			Description: skill.Description,
			Category:    skill.Category,
			Subcategory: skill.Subcategory,
		}
		if err := batch.Index(skill.ID, doc); err != nil {
			idx.Close()
			return nil, fmt.Errorf("index skill %q: %w", skill.ID, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		idx.Close()
		return nil, fmt.Errorf("commit skill index batch: %w", err)
	}

	cache, err := lru.New[string, []Result](DefaultCacheSize)
	if err != nil {
		idx.Close()
		return nil, err
	}

	return &Index{store: store, bleve: idx, cache: cache}, nil
}

// Query returns up to limit skills ranked by relevance. A non-positive
// limit uses DefaultLimit. Results are cached per query and limit; the
// cache never goes stale because the store is immutable.
func (i *Index) Query(ctx context.Context, query string, limit int) ([]Result, error) {
	if i.closed {
		return nil, ErrIndexClosed
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	cacheKey := fmt.Sprintf("%d:%s", limit, strings.ToLower(query))
	if cached, ok := i.cache.Get(cacheKey); ok {
		return cached, nil
	}

	match := bleve.NewMatchQuery(query)
	request := bleve.NewSearchRequestOptions(match, limit, 0, false)

	response, err := i.bleve.SearchInContext(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("skill index query: %w", err)
	}

	results := make([]Result, 0, len(response.Hits))
	for _, hit := range response.Hits {
		if skill, ok := i.store.Get(hit.ID); ok {
			results = append(results, Result{Skill: skill, Score: hit.Score})
		}
	}

	i.cache.Add(cacheKey, results)
	return results, nil
}

// Close releases the index.
func (i *Index) Close() error {
	if i.closed {
		return nil
	}
	i.closed = true
	return i.bleve.Close()
}
