package studio

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/your-org/content-studio/internal/config"
	"github.com/your-org/content-studio/internal/history"
	providertest "github.com/your-org/content-studio/llm/providers/test"
	"github.com/your-org/content-studio/llm/tasks"
)

func testSettings() *config.Settings {
	s := config.DefaultSettings()
	s.OpenAIAPIKey = "test-key"
	s.DatabaseURL = "postgres://localhost/test"
	s.SecretKey = "test-secret"
	s.ContentReviewEnabled = false
	return s
}

// memCache records sets and serves gets for cache round-trip tests
type memCache struct {
	mu    sync.Mutex
	store map[string]string
}

func newMemCache() *memCache { return &memCache{store: make(map[string]string)} }

func (c *memCache) Get(ctx context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.store[key]
	return v, ok, nil
}

func (c *memCache) Set(ctx context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[key] = value
	return nil
}

func (c *memCache) Close() error { return nil }

func TestNewRequiresDependencies(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)

	_, err = New(Options{Settings: testSettings()})
	assert.Error(t, err)
}

func TestCreateContent(t *testing.T) {
	llm := providertest.NewFakeProvider()
	llm.SetDefaultReply("generated text")

	rec := history.NewMemoryRecorder()
	s, err := New(Options{
		Settings: testSettings(),
		Logger:   zerolog.Nop(),
		Provider: llm,
		Recorder: rec,
	})
	assert.NoError(t, err)
	defer s.Close()

	result, err := s.CreateContent(context.Background(), tasks.CreateRequest{Topic: "observability"})
	assert.NoError(t, err)
	assert.Equal(t, "content_creation", result.TaskName)
	assert.Equal(t, history.StatusCompleted, result.Status)

	// Review disabled: research + draft only
	assert.Equal(t, 2, llm.GetCallCount())

	// DEFAULT_CONTENT_TYPE flows into the drafting prompt
	assert.Contains(t, llm.GetLastRequest().Messages[1].Content, "Create a article about")

	entries, err := rec.ListRecent(context.Background(), 10)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCreateContentWithReviewEnabled(t *testing.T) {
	llm := providertest.NewFakeProvider()
	llm.SetDefaultReply("generated text, score: 8")

	settings := testSettings()
	settings.ContentReviewEnabled = true

	s, err := New(Options{
		Settings: settings,
		Logger:   zerolog.Nop(),
		Provider: llm,
	})
	assert.NoError(t, err)
	defer s.Close()

	result, err := s.CreateContent(context.Background(), tasks.CreateRequest{Topic: "observability"})
	assert.NoError(t, err)
	assert.Contains(t, result.Data, "review")
	assert.Equal(t, 3, llm.GetCallCount())
}

func TestCachedRunReadThrough(t *testing.T) {
	llm := providertest.NewFakeProvider()
	llm.SetDefaultReply("research output")

	c := newMemCache()
	s, err := New(Options{
		Settings: testSettings(),
		Logger:   zerolog.Nop(),
		Provider: llm,
		Cache:    c,
	})
	assert.NoError(t, err)
	defer s.Close()

	req := tasks.ResearchRequest{Topic: "edge caching"}

	first, err := s.Research(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, 1, llm.GetCallCount())

	second, err := s.Research(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, first.TaskName, second.TaskName)
	// Served from cache, no extra provider call
	assert.Equal(t, 1, llm.GetCallCount())

	// A different topic misses the cache
	_, err = s.Research(context.Background(), tasks.ResearchRequest{Topic: "other"})
	assert.NoError(t, err)
	assert.Equal(t, 2, llm.GetCallCount())
}

func TestAgentsAndHistory(t *testing.T) {
	llm := providertest.NewFakeProvider()
	llm.SetDefaultReply("ideas: one")

	s, err := New(Options{
		Settings: testSettings(),
		Logger:   zerolog.Nop(),
		Provider: llm,
	})
	assert.NoError(t, err)
	defer s.Close()

	assert.Len(t, s.Agents(), 5)
	assert.Equal(t, []string{"fake"}, s.Providers())

	_, err = s.GenerateIdeas(context.Background(), tasks.IdeationRequest{Topic: "apis"})
	assert.NoError(t, err)

	byTopic, err := s.HistoryByTopic(context.Background(), "apis")
	assert.NoError(t, err)
	assert.Len(t, byTopic, 1)

	recent, err := s.History(context.Background(), 5)
	assert.NoError(t, err)
	assert.Len(t, recent, 1)
}

func TestPoolDo(t *testing.T) {
	p := NewPool(2, zerolog.Nop())
	defer p.Close()

	err := p.Do(context.Background(), func(ctx context.Context) error { return nil })
	assert.NoError(t, err)

	wantErr := errors.New("boom")
	err = p.Do(context.Background(), func(ctx context.Context) error { return wantErr })
	assert.ErrorIs(t, err, wantErr)
}

func TestPoolBoundsConcurrency(t *testing.T) {
	p := NewPool(2, zerolog.Nop())
	defer p.Close()

	var mu sync.Mutex
	running, peak := 0, 0

	var wg sync.WaitGroup
	for i := 0; i < 6; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.Do(context.Background(), func(ctx context.Context) error {
				mu.Lock()
				running++
				if running > peak {
					peak = running
				}
				mu.Unlock()

				time.Sleep(20 * time.Millisecond)

				mu.Lock()
				running--
				mu.Unlock()
				return nil
			})
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak, 2)
	assert.Greater(t, peak, 0)
}

func TestPoolClosed(t *testing.T) {
	p := NewPool(1, zerolog.Nop())
	p.Close()

	err := p.Do(context.Background(), func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestPoolCloseWithParkedSubmission(t *testing.T) {
	p := NewPool(1, zerolog.Nop())

	started := make(chan struct{})
	release := make(chan struct{})
	firstDone := make(chan error, 1)
	go func() {
		firstDone <- p.Do(context.Background(), func(ctx context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	// The only worker is busy, so this submission parks on the send
	secondDone := make(chan error, 1)
	go func() {
		secondDone <- p.Do(context.Background(), func(ctx context.Context) error { return nil })
	}()
	time.Sleep(20 * time.Millisecond)

	closed := make(chan struct{})
	go func() {
		p.Close()
		close(closed)
	}()
	time.Sleep(20 * time.Millisecond)
	close(release)

	assert.NoError(t, <-firstDone)

	// The parked submission must resolve cleanly, never panic
	err := <-secondDone
	assert.True(t, err == nil || errors.Is(err, ErrPoolClosed))
	<-closed
}

func TestPoolCancelledContext(t *testing.T) {
	p := NewPool(1, zerolog.Nop())
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Do(ctx, func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
