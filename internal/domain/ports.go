package domain

import "context"

// KVStore is the durable string key-value collaborator backing sessions.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Completer is a raw single-turn text completion call.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

type CompletionRequest struct {
	Prompt string
	// JSONStringArray asks the model for a JSON array of strings.
	JSONStringArray bool
}

// Assistant is the AI collaborator. Implementations never return errors;
// failures collapse into safe defaults.
type Assistant interface {
	SearchIDs(ctx context.Context, query string, props []Property) []string
	Describe(ctx context.Context, category, location, features string) string
	ChatReply(ctx context.Context, message string, p *Property) string
}

type RatingsRepository interface {
	GetAggregate(ctx context.Context, ownerKey string) (Aggregate, error)
	SubmitRating(ctx context.Context, ownerKey string, stars int, text string) (Aggregate, error)
	// SeedAggregate sets an aggregate only if none exists yet.
	SeedAggregate(ctx context.Context, ownerKey string, a Aggregate) error
}

// SubmissionSink receives listings submitted for review.
type SubmissionSink interface {
	SubmitListing(ctx context.Context, s Submission) error
}
