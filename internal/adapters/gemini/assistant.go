package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"karilike/internal/adapters/observability"
	"karilike/internal/domain"
)

const (
	FallbackDescriptionEmpty = "Could not generate description."
	FallbackDescriptionError = "Beautiful property in a great location. Contact for details."
	FallbackChatEmpty        = "I'm having trouble connecting right now. Please try again."
	FallbackChatError        = "I'm sorry, I encountered an error. Please try again later."
)

// Assistant turns the three product use cases into completion calls.
type Assistant struct{ c domain.Completer }

func NewAssistant(c domain.Completer) *Assistant { return &Assistant{c: c} }

var _ domain.Assistant = (*Assistant)(nil)

type searchProjection struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amenities   []string        `json:"amenities"`
	Location    string          `json:"location"`
	Price       float64         `json:"price"`
	Type        domain.Category `json:"type"`
}

// SearchIDs returns matching property ids in model order. Any failure yields
// an empty slice.
func (a *Assistant) SearchIDs(ctx context.Context, query string, props []domain.Property) []string {
	proj := make([]searchProjection, 0, len(props))
	for _, p := range props {
		proj = append(proj, searchProjection{
			ID:          p.ID,
			Description: p.Description,
			Amenities:   p.Amenities,
			Location:    p.Location,
			Price:       p.Price,
			Type:        p.Type,
		})
	}
	b, err := json.Marshal(proj)
	if err != nil {
		log.Error().Err(err).Msg("ai search: marshal projection failed")
		return []string{}
	}

	text, err := a.c.Complete(ctx, domain.CompletionRequest{
		Prompt:          searchPrompt(query, string(b)),
		JSONStringArray: true,
	})
	if err != nil {
		log.Warn().Err(err).Str("err_type", observability.LabelErr(err)).Str("query", query).Msg("ai search failed")
		return []string{}
	}
	ids, err := parseIDs(text)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("ai search: malformed reply")
		return []string{}
	}
	return ids
}

func (a *Assistant) Describe(ctx context.Context, category, location, features string) string {
	text, err := a.c.Complete(ctx, domain.CompletionRequest{Prompt: describePrompt(category, location, features)})
	switch {
	case errors.Is(err, ErrEmptyReply):
		return FallbackDescriptionEmpty
	case err != nil:
		log.Warn().Err(err).Str("err_type", observability.LabelErr(err)).Msg("ai description failed")
		return FallbackDescriptionError
	case strings.TrimSpace(text) == "":
		return FallbackDescriptionEmpty
	}
	return strings.TrimSpace(text)
}

// ChatReply answers the latest message only; earlier history is not sent.
func (a *Assistant) ChatReply(ctx context.Context, message string, p *domain.Property) string {
	text, err := a.c.Complete(ctx, domain.CompletionRequest{Prompt: chatPrompt(message, p)})
	switch {
	case errors.Is(err, ErrEmptyReply):
		return FallbackChatEmpty
	case err != nil:
		log.Warn().Err(err).Str("err_type", observability.LabelErr(err)).Msg("ai chat failed")
		return FallbackChatError
	case strings.TrimSpace(text) == "":
		return FallbackChatEmpty
	}
	return strings.TrimSpace(text)
}

func searchPrompt(query, propsJSON string) string {
	return fmt.Sprintf(`You are a smart rental assistant for "KariLike" (كاري ليك).
Match the user's natural language query to the available properties.

User Query: %q

Available Properties (JSON):
%s

Instructions:
1. Work out what the user wants (budget, location, amenities, property type).
2. Select the ids of properties that are good matches.
3. Return ONLY a JSON array of strings (property ids).
4. If the query is vague but nothing matches exactly, return a diverse set of ids.
5. If nothing matches at all, return an empty array.`, query, propsJSON)
}

func describePrompt(category, location, features string) string {
	return fmt.Sprintf(`Write a compelling, professional, and warm rental listing description for a property.
Focus on the benefits for a tenant (student or employee).
Avoid jargon. Keep it under 100 words.

Property Details:
Type: %s
Location: %s
Key Features/Amenities: %s`, category, location, features)
}

func chatPrompt(message string, p *domain.Property) string {
	var b strings.Builder
	b.WriteString("You are KariLike (كاري ليك), a helpful AI assistant for a rental platform that connects renters directly to owners (no brokers).\n")
	if p != nil {
		b.WriteString("The user is currently looking at this property: ")
		b.WriteString(p.Title)
		b.WriteString(" located at ")
		b.WriteString(p.Location)
		b.WriteString(", price ")
		b.WriteString(strconv.FormatFloat(p.Price, 'f', -1, 64))
		b.WriteString(" MAD.\n")
	} else {
		b.WriteString("The user is browsing the home page.\n")
	}
	b.WriteString("\nUser: ")
	b.WriteString(message)
	b.WriteString("\n\nReply helpfully and concisely. If they ask about fees, remind them KariLike has no broker fees.")
	return b.String()
}
