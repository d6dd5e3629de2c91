// Package studio wires configuration, providers, agents, tasks, back
// history, and the result cache into the content pipeline service.
package studio

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/your-org/content-studio/internal/cache"
	"github.com/your-org/content-studio/internal/config"
	"github.com/your-org/content-studio/internal/history"
	"github.com/your-org/content-studio/llm/agents"
	"github.com/your-org/content-studio/llm/agents/creative"
	"github.com/your-org/content-studio/llm/agents/editor"
	"github.com/your-org/content-studio/llm/agents/research"
	"github.com/your-org/content-studio/llm/agents/seo"
	"github.com/your-org/content-studio/llm/agents/writer"
	"github.com/your-org/content-studio/llm/providers"
	"github.com/your-org/content-studio/llm/providers/shared"
	"github.com/your-org/content-studio/llm/tasks"
)

// Studio runs the content pipelines
type Studio struct {
	settings *config.Settings
	log      zerolog.Logger

	registry *providers.Registry
	llm      shared.LLMProvider
	agents   *agents.Registry

	contentCreation  *tasks.ContentCreation
	contentReview    *tasks.ContentReview
	seoOptimization  *tasks.SEOOptimization
	researchTask     *tasks.Research
	creativeIdeation *tasks.CreativeIdeation

	recorder history.Recorder
	cache    cache.Cache
	pool     *Pool
}

// Options carries the studio's external dependencies
type Options struct {
	Settings *config.Settings
	Logger   zerolog.Logger
	Provider shared.LLMProvider
	Recorder history.Recorder
	Cache    cache.Cache
}

// New builds the studio: agents sized from settings, tasks wired to the
// recorder, and a worker pool bounded by MAX_WORKERS.
func New(opts Options) (*Studio, error) {
	if opts.Settings == nil {
		return nil, fmt.Errorf("settings are required")
	}
	if opts.Provider == nil {
		return nil, fmt.Errorf("an LLM provider is required")
	}
	if opts.Recorder == nil {
		opts.Recorder = history.NewMemoryRecorder()
	}
	if opts.Cache == nil {
		opts.Cache = cache.NewNoopCache()
	}

	settings := opts.Settings
	log := opts.Logger.With().Str("component", "studio").Logger()

	registry := providers.NewRegistry()
	registry.RegisterProvider(opts.Provider.Name(), opts.Provider)
	llm, err := registry.GetProvider(opts.Provider.Name())
	if err != nil {
		return nil, fmt.Errorf("resolve provider: %w", err)
	}
	log.Info().Strs("providers", registry.ListProviders()).Msg("providers registered")

	writerAgent := writer.NewWriterAgent(writer.Config{
		Model:    settings.OpenAIModel,
		MaxWords: settings.MaxContentLength,
	})
	editorAgent := editor.NewEditorAgent(editor.Config{Model: settings.OpenAIModel})
	seoAgent := seo.NewSEOAgent(seo.Config{Model: settings.OpenAIModel})
	researchAgent := research.NewResearchAgent(research.Config{Model: settings.OpenAIModel})
	creativeAgent := creative.NewCreativeAgent(creative.Config{Model: settings.OpenAIModel})

	agentRegistry := agents.NewRegistry()
	agentRegistry.Register(writerAgent)
	agentRegistry.Register(editorAgent)
	agentRegistry.Register(seoAgent)
	agentRegistry.Register(researchAgent)
	agentRegistry.Register(creativeAgent)

	taskCfg := tasks.TaskConfig{
		Logger:   opts.Logger,
		Recorder: opts.Recorder,
	}

	s := &Studio{
		settings: settings,
		log:      log,
		registry: registry,
		llm:      llm,
		agents:   agentRegistry,
		contentCreation: tasks.NewContentCreation(tasks.ContentCreationConfig{
			TaskConfig:    taskCfg,
			Writer:        writerAgent,
			Research:      researchAgent,
			Editor:        editorAgent,
			ReviewEnabled: settings.ContentReviewEnabled,
		}),
		contentReview: tasks.NewContentReview(tasks.ContentReviewConfig{
			TaskConfig: taskCfg,
			Editor:     editorAgent,
		}),
		seoOptimization: tasks.NewSEOOptimization(tasks.SEOOptimizationConfig{
			TaskConfig: taskCfg,
			SEO:        seoAgent,
		}),
		researchTask: tasks.NewResearch(tasks.ResearchConfig{
			TaskConfig: taskCfg,
			Research:   researchAgent,
		}),
		creativeIdeation: tasks.NewCreativeIdeation(tasks.CreativeIdeationConfig{
			TaskConfig: taskCfg,
			Creative:   creativeAgent,
		}),
		recorder: opts.Recorder,
		cache:    opts.Cache,
		pool:     NewPool(settings.MaxWorkers, opts.Logger),
	}
	return s, nil
}

// Close releases the worker pool and cache
func (s *Studio) Close() {
	s.pool.Close()
	if err := s.cache.Close(); err != nil {
		s.log.Warn().Err(err).Msg("failed to close cache")
	}
}

// Agents returns the registered agents
func (s *Studio) Agents() []agents.Agent {
	return s.agents.List()
}

// Providers returns the names of the registered LLM providers
func (s *Studio) Providers() []string {
	return s.registry.ListProviders()
}

// History returns the most recent back-history entries
func (s *Studio) History(ctx context.Context, limit int) ([]*history.Entry, error) {
	return s.recorder.ListRecent(ctx, limit)
}

// HistoryByTopic returns back-history entries for a topic
func (s *Studio) HistoryByTopic(ctx context.Context, topic string) ([]*history.Entry, error) {
	return s.recorder.ByTopic(ctx, topic)
}

// CreateContent runs the full content creation pipeline
func (s *Studio) CreateContent(ctx context.Context, req tasks.CreateRequest) (*tasks.Result, error) {
	if req.ContentType == "" {
		req.ContentType = s.settings.DefaultContentType
	}
	return s.cachedRun(ctx, "content_creation", "writer", req, func(ctx context.Context) (*tasks.Result, error) {
		return s.contentCreation.Run(ctx, req, s.llm)
	})
}

// ReviewContent runs an editorial review
func (s *Studio) ReviewContent(ctx context.Context, req tasks.ReviewRequest) (*tasks.Result, error) {
	return s.cachedRun(ctx, "content_review", "editor", req, func(ctx context.Context) (*tasks.Result, error) {
		return s.contentReview.Review(ctx, req, s.llm)
	})
}

// OptimizeSEO runs SEO optimization
func (s *Studio) OptimizeSEO(ctx context.Context, req tasks.OptimizeRequest) (*tasks.Result, error) {
	return s.cachedRun(ctx, "seo_optimization", "seo", req, func(ctx context.Context) (*tasks.Result, error) {
		return s.seoOptimization.Optimize(ctx, req, s.llm)
	})
}

// GenerateMetaTags generates meta tags for content
func (s *Studio) GenerateMetaTags(ctx context.Context, content string, keywords []string, contentType string) (*tasks.Result, error) {
	input := struct {
		Content     string   `json:"content"`
		Keywords    []string `json:"keywords"`
		ContentType string   `json:"content_type"`
	}{content, keywords, contentType}
	return s.cachedRun(ctx, "seo_meta_tags", "seo", input, func(ctx context.Context) (*tasks.Result, error) {
		return s.seoOptimization.GenerateMetaTags(ctx, content, keywords, contentType, s.llm)
	})
}

// Research researches a topic
func (s *Studio) Research(ctx context.Context, req tasks.ResearchRequest) (*tasks.Result, error) {
	return s.cachedRun(ctx, "research", "research", req, func(ctx context.Context) (*tasks.Result, error) {
		return s.researchTask.Investigate(ctx, req, s.llm)
	})
}

// FactCheck verifies content claims about a topic
func (s *Studio) FactCheck(ctx context.Context, content, topic string) (*tasks.Result, error) {
	input := struct {
		Content string `json:"content"`
		Topic   string `json:"topic"`
	}{content, topic}
	return s.cachedRun(ctx, "fact_check", "research", input, func(ctx context.Context) (*tasks.Result, error) {
		return s.researchTask.FactCheck(ctx, content, topic, s.llm)
	})
}

// GenerateIdeas runs creative ideation
func (s *Studio) GenerateIdeas(ctx context.Context, req tasks.IdeationRequest) (*tasks.Result, error) {
	return s.cachedRun(ctx, "creative_ideation", "creative", req, func(ctx context.Context) (*tasks.Result, error) {
		return s.creativeIdeation.GenerateIdeas(ctx, req, s.llm)
	})
}

// BrainstormHeadlines runs headline brainstorming
func (s *Studio) BrainstormHeadlines(ctx context.Context, topic, contentType string, count int, style string) (*tasks.Result, error) {
	input := struct {
		Topic       string `json:"topic"`
		ContentType string `json:"content_type"`
		Count       int    `json:"count"`
		Style       string `json:"style"`
	}{topic, contentType, count, style}
	return s.cachedRun(ctx, "brainstorm_headlines", "creative", input, func(ctx context.Context) (*tasks.Result, error) {
		return s.creativeIdeation.BrainstormHeadlines(ctx, topic, contentType, count, style, s.llm)
	})
}

// cachedRun executes fn through the worker pool with a read-through
// result cache keyed by the task, agent, and serialized input.
func (s *Studio) cachedRun(ctx context.Context, task, agent string, input any, fn func(context.Context) (*tasks.Result, error)) (*tasks.Result, error) {
	rawInput, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("marshal task input: %w", err)
	}
	key := cache.Key(task, agent, string(rawInput))

	if cached, found, err := s.cache.Get(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("task", task).Msg("cache lookup failed")
	} else if found {
		var result tasks.Result
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			s.log.Debug().Str("task", task).Msg("cache hit")
			return &result, nil
		}
	}

	var result *tasks.Result
	err = s.pool.Do(ctx, func(ctx context.Context) error {
		var runErr error
		result, runErr = fn(ctx)
		return runErr
	})
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(ctx, key, string(encoded)); err != nil {
			s.log.Warn().Err(err).Str("task", task).Msg("cache store failed")
		}
	}
	return result, nil
}
