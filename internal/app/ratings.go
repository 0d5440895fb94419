package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"karilike/internal/domain"
)

// RatingService reads owner aggregates through the cache and applies new
// star ratings.
type RatingService struct {
	repo     domain.RatingsRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewRatingService(r domain.RatingsRepository, c domain.Cache, ttl time.Duration) *RatingService {
	return &RatingService{repo: r, cache: c, cacheTTL: ttl}
}

func aggKey(ownerKey string) string { return "agg:" + ownerKey }

func (s *RatingService) Aggregate(ctx context.Context, ownerKey string) (domain.Aggregate, error) {
	key := aggKey(ownerKey)
	var a domain.Aggregate
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &a); ok {
			return a, nil
		}
	}
	a, err := s.repo.GetAggregate(ctx, ownerKey)
	if err != nil {
		return domain.Aggregate{}, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, a, int(s.cacheTTL.Seconds()))
	}
	return a, nil
}

// Submit applies one rating. The review text is accepted but not retained.
func (s *RatingService) Submit(ctx context.Context, ownerKey string, stars int, text string) (domain.Aggregate, error) {
	if stars < 1 || stars > 5 {
		return domain.Aggregate{}, domain.ErrInvalidRating
	}
	a, err := s.repo.SubmitRating(ctx, ownerKey, stars, text)
	if err != nil {
		return domain.Aggregate{}, fmt.Errorf("submit rating for %s: %w", ownerKey, err)
	}
	s.invalidate(ctx, ownerKey)
	log.Info().Str("owner", ownerKey).Int("stars", stars).Float64("avg", a.Avg).Int("count", a.Count).Msg("rating applied")
	return a, nil
}

// Seed stores a starting aggregate for owners that have none.
func (s *RatingService) Seed(ctx context.Context, ownerKey string, a domain.Aggregate) error {
	if err := s.repo.SeedAggregate(ctx, ownerKey, a); err != nil {
		return err
	}
	s.invalidate(ctx, ownerKey)
	return nil
}

func (s *RatingService) invalidate(ctx context.Context, ownerKey string) {
	if s.cache != nil {
		_ = s.cache.Del(ctx, aggKey(ownerKey))
	}
}

// ApplyToProperty returns a copy of p carrying aggregate a. A zero count
// clears the rating.
func ApplyToProperty(p domain.Property, a domain.Aggregate) domain.Property {
	out := p.Clone()
	if a.Count <= 0 {
		out.OwnerRating = nil
		out.OwnerReviewCount = 0
		return out
	}
	avg := a.Avg
	out.OwnerRating = &avg
	out.OwnerReviewCount = a.Count
	return out
}
