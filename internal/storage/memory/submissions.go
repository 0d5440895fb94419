package memory

import (
	"context"
	"sync"

	"karilike/internal/domain"
)

// Submissions keeps every listing handed over for review.
type Submissions struct {
	mu    sync.Mutex
	items []domain.Submission
}

func NewSubmissions() *Submissions { return &Submissions{} }

func (s *Submissions) SubmitListing(_ context.Context, sub domain.Submission) error {
	s.mu.Lock()
	s.items = append(s.items, sub)
	s.mu.Unlock()
	return nil
}

func (s *Submissions) List() []domain.Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Submission(nil), s.items...)
}
