package app_test

import (
	"context"
	"sync"

	"karilike/internal/domain"
)

// ---- fakes ----

type fakeAssistant struct {
	mu       sync.Mutex
	ids      []string
	gotQuery string
	gotProps []domain.Property
	reply    string
	describe string
	gotChat  []string
	gotProp  *domain.Property
	// block, when set, holds SearchIDs until it is closed; entered is
	// closed once SearchIDs has been reached
	block   chan struct{}
	entered chan struct{}
}

func (f *fakeAssistant) SearchIDs(ctx context.Context, query string, props []domain.Property) []string {
	if f.block != nil {
		close(f.entered)
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotQuery = query
	f.gotProps = props
	return f.ids
}

func (f *fakeAssistant) Describe(ctx context.Context, category, location, features string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotQuery = category + "|" + location + "|" + features
	return f.describe
}

func (f *fakeAssistant) ChatReply(ctx context.Context, message string, p *domain.Property) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotChat = append(f.gotChat, message)
	f.gotProp = p
	return f.reply
}

type fakeCache struct {
	store map[string]domain.Aggregate
	dels  int
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	*dst.(*domain.Aggregate) = v
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]domain.Aggregate{}
	}
	c.store[key] = v.(domain.Aggregate)
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.dels++
	delete(c.store, key)
	return nil
}

// countingKV wraps a map and counts writes.
type countingKV struct {
	mu     sync.Mutex
	m      map[string]string
	writes int
}

func newKV() *countingKV { return &countingKV{m: map[string]string{}} }

func (k *countingKV) Get(ctx context.Context, key string) (string, bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	v, ok := k.m[key]
	return v, ok, nil
}

func (k *countingKV) Set(ctx context.Context, key, value string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.writes++
	k.m[key] = value
	return nil
}

func (k *countingKV) Remove(ctx context.Context, key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.writes++
	delete(k.m, key)
	return nil
}

func ids(ps []domain.Property) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}
