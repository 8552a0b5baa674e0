package main

import (
	"fmt"
	"os"

	"github.com/novonex/skill-align/internal/config"
	"github.com/novonex/skill-align/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start an HTTP server that exposes REST endpoints for alignment scoring,
gap classification, radar projection, quizzes, simulations, and AI
company analysis. Scoring endpoints always work; profile storage,
caching, and analysis require DATABASE_URL, REDIS_ADDR, and
GEMINI_API_KEY respectively.`,
	RunE: runServe,
}

var (
	serveConfigPath  string
	servePort        int
	serveMatchPolicy string
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveMatchPolicy, "match-policy", "", "Requirement matching policy: contains, word, or exact")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		MatchPolicy: serveMatchPolicy,
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	cfg, err := loadMergedConfig(cfg, serveConfigPath, false)
	if err != nil {
		return err
	}
	cfg = cfg.MergeWithDefaults(config.Config{
		Port:          servePort,
		APIKey:        os.Getenv("GEMINI_API_KEY"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	})

	policy, err := cfg.ResolveMatchPolicy()
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:          cfg.Port,
		DatabaseURL:   cfg.DatabaseURL,
		RedisAddr:     cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		APIKey:        cfg.APIKey,
		MatchPolicy:   policy,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
