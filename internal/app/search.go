package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"karilike/internal/adapters/observability"
	"karilike/internal/domain"
)

type Query struct {
	Text   string
	City   string
	AIMode bool
}

// Empty reports a query the pipeline should not be invoked with.
func (q Query) Empty() bool {
	return strings.TrimSpace(q.Text) == "" && strings.TrimSpace(q.City) == ""
}

type SearchService struct {
	ai domain.Assistant
}

func NewSearchService(ai domain.Assistant) *SearchService {
	return &SearchService{ai: ai}
}

// Search narrows corpus by city, then by text (locally or through the
// assistant). The result preserves corpus order.
func (s *SearchService) Search(ctx context.Context, q Query, corpus []domain.Property) ([]domain.Property, error) {
	if q.Empty() {
		return nil, domain.ErrEmptyQuery
	}

	filtered := corpus
	if city := strings.TrimSpace(q.City); city != "" {
		filtered = FilterCity(filtered, city)
	}

	text := strings.TrimSpace(q.Text)
	mode := "city"
	switch {
	case text == "":
	case q.AIMode:
		mode = "ai"
		filtered = s.aiFilter(ctx, text, filtered)
	default:
		mode = "local"
		filtered = MatchText(filtered, q.Text)
	}

	result := "hit"
	if len(filtered) == 0 {
		result = "empty"
	}
	observability.ObserveSearch(mode, result)
	log.Debug().Str("mode", mode).Str("city", q.City).Int("results", len(filtered)).Msg("search")
	return filtered, nil
}

func (s *SearchService) aiFilter(ctx context.Context, text string, subset []domain.Property) []domain.Property {
	if s.ai == nil || len(subset) == 0 {
		return []domain.Property{}
	}
	ids := s.ai.SearchIDs(ctx, text, subset)
	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
	}
	out := make([]domain.Property, 0, len(ids))
	for _, p := range subset {
		if _, ok := keep[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}

// FilterCity keeps entries whose derived city equals city, ignoring case.
func FilterCity(in []domain.Property, city string) []domain.Property {
	out := make([]domain.Property, 0, len(in))
	for _, p := range in {
		if strings.EqualFold(p.City(), city) {
			out = append(out, p)
		}
	}
	return out
}

// MatchText keeps entries whose title, location or category label contains
// text, ignoring case. text is matched as given, surrounding spaces included.
func MatchText(in []domain.Property, text string) []domain.Property {
	q := strings.ToLower(text)
	out := make([]domain.Property, 0, len(in))
	for _, p := range in {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Location), q) ||
			strings.Contains(strings.ToLower(p.Type.Label()), q) {
			out = append(out, p)
		}
	}
	return out
}
