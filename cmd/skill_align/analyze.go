package main

import (
	"context"
	"fmt"
	"os"

	"github.com/novonex/skill-align/internal/alignment"
	"github.com/novonex/skill-align/internal/analysis"
	"github.com/novonex/skill-align/internal/cache"
	"github.com/novonex/skill-align/internal/config"
	"github.com/novonex/skill-align/internal/db"
	"github.com/novonex/skill-align/internal/fetch"
	"github.com/novonex/skill-align/internal/llm"
	"github.com/novonex/skill-align/internal/observability"
	"github.com/novonex/skill-align/internal/prompts"
	"github.com/novonex/skill-align/internal/schemas"
	"github.com/novonex/skill-align/internal/types"
	"github.com/spf13/cobra"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a company and role (or a job posting) into a requirement set",
	Long: `Asks the model for a structured analysis of a company/role pair, or of a
job posting fetched from a URL, and derives a skill requirement set from
the response. Results for company/role pairs are cached in Redis and
persisted to PostgreSQL when those services are configured.

If a profile is provided (--profile, --profile-id, or --demo), the derived
requirements are also scored against it.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath    string
	analyzeCompany       string
	analyzeRole          string
	analyzePostingURL    string
	analyzeAPIKey        string
	analyzeDatabaseURL   string
	analyzeRedisAddr     string
	analyzeRedisPassword string
	analyzeProfilePath   string
	analyzeProfileID     string
	analyzeMatchPolicy   string
	analyzeRefresh       bool
	analyzeDemo          bool
	analyzeJSON          bool
	analyzeVerbose       bool
)

func init() {
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	analyzeCommand.Flags().StringVarP(&analyzeCompany, "company", "c", "", "Company name (mutually exclusive with --posting-url)")
	analyzeCommand.Flags().StringVarP(&analyzeRole, "role", "r", "", "Role title (required with --company)")
	analyzeCommand.Flags().StringVar(&analyzePostingURL, "posting-url", "", "URL of a job posting to analyze instead of a company/role pair")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCommand.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	analyzeCommand.Flags().StringVar(&analyzeDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	analyzeCommand.Flags().StringVar(&analyzeRedisAddr, "redis-addr", "", "Redis address for the analysis cache (optional, defaults to REDIS_ADDR env var)")
	analyzeCommand.Flags().StringVar(&analyzeRedisPassword, "redis-password", "", "Redis password (optional, defaults to REDIS_PASSWORD env var)")
	analyzeCommand.Flags().StringVarP(&analyzeProfilePath, "profile", "p", "", "Path to a profile JSON file to score against the analysis")
	analyzeCommand.Flags().StringVar(&analyzeProfileID, "profile-id", "", "Profile UUID to load from the database")
	analyzeCommand.Flags().StringVar(&analyzeMatchPolicy, "match-policy", "", "Requirement matching policy: contains, word, or exact")
	analyzeCommand.Flags().BoolVar(&analyzeRefresh, "refresh", false, "Bypass the cache and re-run the analysis")
	analyzeCommand.Flags().BoolVar(&analyzeDemo, "demo", false, "Score the built-in demo profile against the analysis")
	analyzeCommand.Flags().BoolVar(&analyzeJSON, "json", false, "Print the analysis as JSON instead of the boxed summary")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg := config.Config{
		Company:       analyzeCompany,
		Role:          analyzeRole,
		PostingURL:    analyzePostingURL,
		ProfileID:     analyzeProfileID,
		MatchPolicy:   analyzeMatchPolicy,
		APIKey:        analyzeAPIKey,
		DatabaseURL:   analyzeDatabaseURL,
		RedisAddr:     analyzeRedisAddr,
		RedisPassword: analyzeRedisPassword,
		Verbose:       analyzeVerbose,
	}
	cfg, err := loadMergedConfig(cfg, analyzeConfigPath, analyzeVerbose)
	if err != nil {
		return err
	}

	// Environment fallbacks for service credentials
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	}
	if cfg.RedisPassword == "" {
		cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	}

	byPosting := cfg.PostingURL != ""
	if byPosting && cfg.Company != "" {
		return fmt.Errorf("--company and --posting-url are mutually exclusive; provide only one")
	}
	if !byPosting && (cfg.Company == "" || cfg.Role == "") {
		return fmt.Errorf("either --company and --role, or --posting-url must be provided (via flag or config)")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	printer := observability.NewPrinter(os.Stdout)

	var analysisCache *cache.AnalysisCache
	if cfg.RedisAddr != "" {
		analysisCache, err = cache.New(cfg.RedisAddr, cfg.RedisPassword, cache.DefaultTTL)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer func() { _ = analysisCache.Close() }()
	}

	var result *types.CompanyAnalysis
	cached := false

	if analysisCache != nil && !byPosting && !analyzeRefresh {
		if hit, ok, cacheErr := analysisCache.Get(ctx, cfg.Company, cfg.Role); cacheErr == nil && ok {
			result = hit
			cached = true
			if cfg.Verbose {
				printer.PrintStep("Using cached analysis")
			}
		}
	}

	if result == nil {
		result, err = generateAnalysis(ctx, cfg, byPosting, printer)
		if err != nil {
			return err
		}
	}

	if !cached && !byPosting {
		persistAnalysis(ctx, cfg, analysisCache, result, printer)
	}

	requirements := analysis.Requirements(result)

	if analyzeJSON {
		return printJSON(struct {
			Company      string                   `json:"company,omitempty"`
			Role         string                   `json:"role,omitempty"`
			Cached       bool                     `json:"cached"`
			Analysis     *types.CompanyAnalysis   `json:"analysis"`
			Requirements []types.SkillRequirement `json:"requirements"`
		}{Company: cfg.Company, Role: cfg.Role, Cached: cached, Analysis: result, Requirements: requirements})
	}

	printer.PrintAnalysis(cfg.Company, cfg.Role, result)

	// Score the profile against the derived requirements when one is given.
	if analyzeProfilePath != "" || cfg.ProfileID != "" || analyzeDemo {
		doc, profileErr := loadProfileDocument(ctx, cfg, analyzeProfilePath, analyzeDemo)
		if profileErr != nil {
			return profileErr
		}
		resolver, resolverErr := newResolver(doc, cfg)
		if resolverErr != nil {
			return resolverErr
		}
		resolved := resolver.ResolveRequirements(requirements)
		score := alignment.Score(resolved, requirements)
		statuses, counts := alignment.Summarize(resolved, requirements)
		printer.PrintAlignmentReport(score, statuses, counts)
	}

	return nil
}

// generateAnalysis runs the model call for either analysis mode and parses
// the response into a CompanyAnalysis.
func generateAnalysis(ctx context.Context, cfg config.Config, byPosting bool, printer *observability.Printer) (*types.CompanyAnalysis, error) {
	var prompt string
	if byPosting {
		if cfg.Verbose {
			printer.PrintStep(fmt.Sprintf("Fetching posting from %s", cfg.PostingURL))
		}
		posting, err := fetch.PostingURL(ctx, cfg.PostingURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch posting: %w", err)
		}
		prompt = prompts.PostingAnalysisPrompt(posting.Text)
	} else {
		prompt = prompts.CompanyAnalysisPrompt(cfg.Company, cfg.Role)
	}

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create model client: %w", err)
	}
	defer func() { _ = client.Close() }()

	if cfg.Verbose {
		printer.PrintStep("Requesting analysis from the model")
	}
	payload, err := client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("model request failed: %w", err)
	}

	if err := schemas.ValidateAnalysisPayload(payload); err != nil {
		return nil, fmt.Errorf("model returned an invalid analysis: %w", err)
	}

	result, err := analysis.ParseCompanyAnalysis([]byte(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to parse analysis: %w", err)
	}
	return result, nil
}

// persistAnalysis writes the analysis to the cache and the database on a
// best-effort basis; failures are reported but do not fail the run.
func persistAnalysis(ctx context.Context, cfg config.Config, analysisCache *cache.AnalysisCache, result *types.CompanyAnalysis, printer *observability.Printer) {
	if analysisCache != nil {
		if err := analysisCache.Set(ctx, cfg.Company, cfg.Role, result); err != nil && cfg.Verbose {
			printer.PrintStep(fmt.Sprintf("Cache write failed: %v", err))
		}
	}

	if cfg.DatabaseURL != "" {
		store, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			if cfg.Verbose {
				printer.PrintStep(fmt.Sprintf("Database connection failed: %v", err))
			}
			return
		}
		defer store.Close()
		if err := store.EnsureSchema(ctx); err != nil {
			if cfg.Verbose {
				printer.PrintStep(fmt.Sprintf("Schema setup failed: %v", err))
			}
			return
		}
		if _, err := store.SaveAnalysis(ctx, cfg.Company, cfg.Role, result); err != nil && cfg.Verbose {
			printer.PrintStep(fmt.Sprintf("Database write failed: %v", err))
		}
	}
}
