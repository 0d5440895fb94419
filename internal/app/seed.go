package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"karilike/internal/domain"
)

// SeedOwners stores each property owner's catalog aggregate, skipping owners
// that already have one, with at most workers writes in flight.
func (s *RatingService) SeedOwners(ctx context.Context, props []domain.Property, workers int) (int, error) {
	if workers <= 0 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		seeded   int
		firstErr error
	)

	seen := map[string]struct{}{}
	for _, p := range props {
		key := p.OwnerKey()
		agg := domain.AggregateOf(p)
		if key == "" || agg.Count == 0 {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return seeded, err
		}
		wg.Add(1)
		go func(key string, agg domain.Aggregate) {
			defer wg.Done()
			defer sem.Release(1)

			if err := s.Seed(ctx, key, agg); err != nil {
				log.Warn().Str("owner", key).Err(err).Msg("seed failed")
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			mu.Lock()
			seeded++
			mu.Unlock()
		}(key, agg)
	}
	wg.Wait()
	return seeded, firstErr
}
