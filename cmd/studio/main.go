package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/your-org/content-studio/api/server"
	"github.com/your-org/content-studio/internal/auth"
	"github.com/your-org/content-studio/internal/cache"
	"github.com/your-org/content-studio/internal/config"
	"github.com/your-org/content-studio/internal/history"
	"github.com/your-org/content-studio/llm/providers/openai"
	"github.com/your-org/content-studio/llm/services/studio"
	"github.com/your-org/content-studio/llm/tasks"
)

// Outgoing completion throttle, shared across all agents
const (
	providerRPS   = 3.0
	providerBurst = 3
)

var (
	envFile string
	verbose bool
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "studio",
		Short: "AI Content Studio - multi-agent content creation pipelines",
		Long: `A content creation system that coordinates writer, editor, SEO, research,
and creative agents into complete workflows: researched drafts, editorial
reviews, SEO optimization, fact checking, and creative ideation.`,
	}

	rootCmd.PersistentFlags().StringVarP(&envFile, "env-file", "e", ".env", "environment file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Serve command
	var serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the content studio API server",
		Long:  `Start the HTTP API, backed by Postgres history and the Redis result cache.`,
		RunE:  runServe,
	}
	serveCmd.Flags().StringP("addr", "a", ":8000", "listen address")

	// Create command
	var createCmd = &cobra.Command{
		Use:   "create [topic]",
		Short: "Run the content creation pipeline for a topic",
		Long:  `Research the topic, draft content from the findings, and print the result as JSON.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runCreate,
	}
	createCmd.Flags().String("content-type", "", "content type (article, blog post, ...)")
	createCmd.Flags().String("audience", "general", "target audience")
	createCmd.Flags().String("tone", "professional", "writing tone")
	createCmd.Flags().Int("words", 1000, "target word count")

	// Research command
	var researchCmd = &cobra.Command{
		Use:   "research [topic]",
		Short: "Research a topic",
		Long:  `Run the research pipeline on a topic and print the findings as JSON.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runResearch,
	}
	researchCmd.Flags().String("depth", "comprehensive", "research depth (basic, comprehensive, expert)")

	// Ideas command
	var ideasCmd = &cobra.Command{
		Use:   "ideas [topic]",
		Short: "Generate content ideas for a topic",
		Long:  `Run the creative ideation pipeline and print the generated ideas as JSON.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runIdeas,
	}
	ideasCmd.Flags().Int("count", 10, "number of ideas to generate")

	// Config command
	var configCmd = &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	var configCheckCmd = &cobra.Command{
		Use:   "check",
		Short: "Validate the environment configuration",
		Long:  `Check that all required environment variables are set and the configuration is valid.`,
		RunE:  runConfigCheck,
	}
	configCmd.AddCommand(configCheckCmd)

	rootCmd.AddCommand(serveCmd, createCmd, researchCmd, ideasCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := settings.NewLogger()

	store, err := history.Open(settings.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer store.Close()

	resultCache, err := cache.New(settings.RedisURL, cache.DefaultTTL)
	if err != nil {
		return fmt.Errorf("failed to connect to cache: %w", err)
	}

	st, err := buildStudio(settings, logger, store, resultCache)
	if err != nil {
		return err
	}
	defer st.Close()

	authManager, err := auth.NewManager(auth.Config{
		SecretKey: settings.SecretKey,
		Algorithm: settings.Algorithm,
		TokenTTL:  time.Duration(settings.AccessTokenExpireMinutes) * time.Minute,
	})
	if err != nil {
		return fmt.Errorf("failed to set up auth: %w", err)
	}

	addr, _ := cmd.Flags().GetString("addr")
	return server.New(st, authManager, logger).Start(addr)
}

func runCreate(cmd *cobra.Command, args []string) error {
	st, cleanup, err := oneShotStudio()
	if err != nil {
		return err
	}
	defer cleanup()

	contentType, _ := cmd.Flags().GetString("content-type")
	audience, _ := cmd.Flags().GetString("audience")
	tone, _ := cmd.Flags().GetString("tone")
	words, _ := cmd.Flags().GetInt("words")

	result, err := st.CreateContent(context.Background(), tasks.CreateRequest{
		Topic:          args[0],
		ContentType:    contentType,
		TargetAudience: audience,
		Tone:           tone,
		WordCount:      words,
	})
	if err != nil {
		return fmt.Errorf("content creation failed: %w", err)
	}
	return printResult(result)
}

func runResearch(cmd *cobra.Command, args []string) error {
	st, cleanup, err := oneShotStudio()
	if err != nil {
		return err
	}
	defer cleanup()

	depth, _ := cmd.Flags().GetString("depth")
	result, err := st.Research(context.Background(), tasks.ResearchRequest{
		Topic:         args[0],
		ResearchDepth: depth,
	})
	if err != nil {
		return fmt.Errorf("research failed: %w", err)
	}
	return printResult(result)
}

func runIdeas(cmd *cobra.Command, args []string) error {
	st, cleanup, err := oneShotStudio()
	if err != nil {
		return err
	}
	defer cleanup()

	count, _ := cmd.Flags().GetInt("count")
	result, err := st.GenerateIdeas(context.Background(), tasks.IdeationRequest{
		Topic:     args[0],
		IdeaCount: count,
	})
	if err != nil {
		return fmt.Errorf("idea generation failed: %w", err)
	}
	return printResult(result)
}

func runConfigCheck(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(envFile)
	if err != nil {
		if missing := config.MissingRequired(); len(missing) > 0 {
			return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
		}
		return err
	}

	fmt.Println("Configuration is valid.")
	if verbose {
		settings.OpenAIAPIKey = "***"
		settings.SecretKey = "***"
		encoded, _ := json.MarshalIndent(settings, "", "  ")
		fmt.Println(string(encoded))
	}
	return nil
}

// oneShotStudio builds a studio for a single CLI pipeline run. History
// falls back to memory when Postgres is unreachable so one-shot commands
// still work without the full backing stack.
func oneShotStudio() (*studio.Studio, func(), error) {
	settings, err := config.Load(envFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := settings.NewLogger()

	var recorder history.Recorder
	var closeStore func()
	store, err := history.Open(settings.DatabaseURL)
	if err != nil {
		logger.Warn().Err(err).Msg("history store unavailable, using in-memory recorder")
		recorder = history.NewMemoryRecorder()
		closeStore = func() {}
	} else {
		recorder = store
		closeStore = func() { store.Close() }
	}

	resultCache, err := cache.New(settings.RedisURL, cache.DefaultTTL)
	if err != nil {
		logger.Warn().Err(err).Msg("cache unavailable, running without result cache")
		resultCache = cache.NewNoopCache()
	}

	st, err := buildStudio(settings, logger, recorder, resultCache)
	if err != nil {
		closeStore()
		return nil, nil, err
	}

	cleanup := func() {
		st.Close()
		closeStore()
	}
	return st, cleanup, nil
}

func buildStudio(settings *config.Settings, logger zerolog.Logger, recorder history.Recorder, resultCache cache.Cache) (*studio.Studio, error) {
	provider, err := openai.NewProvider(openai.Config{
		APIKey:            settings.OpenAIAPIKey,
		RequestsPerSecond: providerRPS,
		Burst:             providerBurst,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM provider: %w", err)
	}

	st, err := studio.New(studio.Options{
		Settings: settings,
		Logger:   logger,
		Provider: provider,
		Recorder: recorder,
		Cache:    resultCache,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build studio: %w", err)
	}
	return st, nil
}

func printResult(result *tasks.Result) error {
	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}
