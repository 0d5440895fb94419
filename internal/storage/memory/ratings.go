package memory

import (
	"context"
	"sync"

	"karilike/internal/domain"
)

type Ratings struct {
	mu   sync.Mutex
	aggs map[string]domain.Aggregate
}

func NewRatings() *Ratings { return &Ratings{aggs: map[string]domain.Aggregate{}} }

// GetAggregate returns the zero aggregate for an unknown owner.
func (r *Ratings) GetAggregate(_ context.Context, ownerKey string) (domain.Aggregate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.aggs[ownerKey], nil
}

func (r *Ratings) SubmitRating(_ context.Context, ownerKey string, stars int, _ string) (domain.Aggregate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next, err := r.aggs[ownerKey].Apply(stars)
	if err != nil {
		return domain.Aggregate{}, err
	}
	r.aggs[ownerKey] = next
	return next, nil
}

func (r *Ratings) SeedAggregate(_ context.Context, ownerKey string, a domain.Aggregate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.aggs[ownerKey]; !ok {
		r.aggs[ownerKey] = a
	}
	return nil
}
