package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"karilike/internal/domain"
)

// ListingDraft is the multi-step posting form as entered.
type ListingDraft struct {
	Intent       domain.ListingIntent `json:"listingType"`
	Title        string               `json:"title"`
	Category     string               `json:"type"`
	Location     string               `json:"location"`
	Price        string               `json:"price"`
	Features     string               `json:"features"`
	Description  string               `json:"description"`
	Images       []string             `json:"images"`
	OwnerName    string               `json:"ownerName"`
	OwnerContact string               `json:"ownerContact"`
}

type ListingService struct {
	sink  domain.SubmissionSink
	ai    domain.Assistant
	newID func() string
}

func NewListingService(sink domain.SubmissionSink, ai domain.Assistant) *ListingService {
	return &ListingService{sink: sink, ai: ai, newID: uuid.NewString}
}

// NewDraft returns the form defaults, pre-filled from the session user.
func NewDraft(u *domain.PublicUser) ListingDraft {
	d := ListingDraft{Intent: domain.IntentRent, Category: string(domain.CategoryApartment)}
	if u != nil {
		d.OwnerName = u.Name
		d.OwnerContact = u.Contact()
	}
	return d
}

// Submit validates the draft, builds the listing and hands it over for
// review. Only the image list is hard-validated.
func (s *ListingService) Submit(ctx context.Context, d ListingDraft, u *domain.PublicUser) (domain.Submission, error) {
	if len(d.Images) == 0 {
		return domain.Submission{}, domain.ErrNoImages
	}

	intent := d.Intent
	if intent == "" {
		intent = domain.IntentRent
	}
	sub := domain.Submission{
		Property: domain.Property{
			ID:           s.newID(),
			Title:        d.Title,
			Price:        CoercePrice(d.Price),
			Type:         domain.Category(d.Category),
			Location:     d.Location,
			Description:  d.Description,
			Amenities:    SplitFeatures(d.Features),
			Images:       append([]string(nil), d.Images...),
			OwnerName:    d.OwnerName,
			OwnerContact: d.OwnerContact,
		},
		Intent:   intent,
		Category: d.Category,
	}
	if u != nil {
		sub.OwnerID = u.ID
	}

	if err := s.sink.SubmitListing(ctx, sub); err != nil {
		return domain.Submission{}, fmt.Errorf("submit listing: %w", err)
	}
	log.Info().
		Str("listing_id", sub.ID).
		Str("owner_id", sub.OwnerID).
		Int("images", len(sub.Images)).
		Msg("listing submitted for review")
	return sub, nil
}

// GenerateDescription needs location and features to be filled in.
func (s *ListingService) GenerateDescription(ctx context.Context, d ListingDraft) (string, error) {
	if strings.TrimSpace(d.Location) == "" || strings.TrimSpace(d.Features) == "" {
		return "", domain.ErrMissingFields
	}
	intent := d.Intent
	if intent == "" {
		intent = domain.IntentRent
	}
	return s.ai.Describe(ctx, fmt.Sprintf("%s %s", intent, d.Category), d.Location, d.Features), nil
}

// SplitFeatures splits on commas, trims, and drops empty segments.
func SplitFeatures(s string) []string {
	out := []string{}
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// CoercePrice parses the price with no range check. Empty input is 0;
// unparsable input is 0 as well since NaN cannot be stored or serialized.
func CoercePrice(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != f {
		return 0
	}
	return f
}
