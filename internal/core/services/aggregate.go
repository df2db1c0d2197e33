package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/griot-labs/griot-cli/internal/core/domain"
	"github.com/griot-labs/griot-cli/internal/logger"
)

// Aggregation limits. Two documents with three chunks each is enough
// context for the downstream prose layer without flooding it.
const (
	// MaxResultDocuments is the number of document groups kept.
	MaxResultDocuments = 2

	// MaxChunksPerDocument is the number of chunks kept per document.
	MaxChunksPerDocument = 3
)

// docGroup accumulates hits for one document during aggregation.
type docGroup struct {
	id       int
	maxScore float64
	first    int // index of the group's first hit, for deterministic ties
	hits     []domain.SearchHit
}

// Aggregate groups raw hits by document, ranks documents by their best
// chunk, and emits at most MaxResultDocuments results with compressed
// page ranges. Hits without a valid document id are dropped.
func Aggregate(hits []domain.SearchHit, catalog domain.Catalog) []domain.AggregatedResult {
	groups := make(map[int]*docGroup)
	var order []*docGroup

	for i, hit := range hits {
		if hit.Meta.DocID < 1 {
			logger.Warn("Dropping hit with unresolved document id (source %q)", hit.Meta.Source)
			continue
		}

		g, ok := groups[hit.Meta.DocID]
		if !ok {
			g = &docGroup{id: hit.Meta.DocID, maxScore: hit.Score, first: i}
			groups[hit.Meta.DocID] = g
			order = append(order, g)
		}
		if hit.Score > g.maxScore {
			g.maxScore = hit.Score
		}
		g.hits = append(g.hits, hit)
	}

	// Rank groups by max score descending; earlier first hit breaks ties.
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].maxScore != order[j].maxScore {
			return order[i].maxScore > order[j].maxScore
		}
		return order[i].first < order[j].first
	})
	if len(order) > MaxResultDocuments {
		order = order[:MaxResultDocuments]
	}

	results := make([]domain.AggregatedResult, 0, len(order))
	for _, g := range order {
		// Rank the group's chunks by score descending, stable.
		sort.SliceStable(g.hits, func(i, j int) bool {
			return g.hits[i].Score > g.hits[j].Score
		})
		kept := g.hits
		if len(kept) > MaxChunksPerDocument {
			kept = kept[:MaxChunksPerDocument]
		}

		pages := make([]int, 0, len(kept))
		texts := make([]string, 0, len(kept))
		for _, hit := range kept {
			pages = append(pages, hit.Meta.Page)
			texts = append(texts, hit.Text)
		}

		results = append(results, domain.AggregatedResult{
			ID:             g.id,
			Name:           catalog.Name(g.id),
			Pages:          CompressPageRanges(pages),
			RelevanceScore: g.maxScore,
			Text:           strings.Join(texts, "\n\n"),
		})
	}

	return results
}

// CompressPageRanges sorts the distinct page numbers ascending and
// collapses consecutive runs into "start-end" tokens; isolated pages
// remain standalone.
func CompressPageRanges(pages []int) []string {
	if len(pages) == 0 {
		return []string{}
	}

	distinct := make([]int, 0, len(pages))
	seen := make(map[int]struct{}, len(pages))
	for _, p := range pages {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		distinct = append(distinct, p)
	}
	sort.Ints(distinct)

	tokens := make([]string, 0, len(distinct))
	start, end := distinct[0], distinct[0]

	emit := func() {
		if start == end {
			tokens = append(tokens, fmt.Sprintf("%d", start))
			return
		}
		tokens = append(tokens, fmt.Sprintf("%d-%d", start, end))
	}

	for _, p := range distinct[1:] {
		if p == end+1 {
			end = p
			continue
		}
		emit()
		start, end = p, p
	}
	emit()

	return tokens
}
