package main

import (
	"context"
	"os"

	"github.com/novonex/skill-align/internal/alignment"
	"github.com/novonex/skill-align/internal/config"
	"github.com/novonex/skill-align/internal/observability"
	"github.com/spf13/cobra"
)

var alignCommand = &cobra.Command{
	Use:   "align",
	Short: "Score a skill profile against a role's requirement set",
	Long: `Resolves each role requirement against the profile (explicit skills first,
then the domain vault), computes the alignment percentage, and classifies
every requirement as met, partial, or a gap.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runAlignCmd,
}

var (
	alignConfigPath  string
	alignProfilePath string
	alignProfileID   string
	alignDatabaseURL string
	alignRole        string
	alignMatchPolicy string
	alignDemo        bool
	alignJSON        bool
	alignVerbose     bool
)

func init() {
	alignCommand.Flags().StringVar(&alignConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	alignCommand.Flags().StringVarP(&alignProfilePath, "profile", "p", "", "Path to a profile JSON file")
	alignCommand.Flags().StringVar(&alignProfileID, "profile-id", "", "Profile UUID to load from the database")
	alignCommand.Flags().StringVar(&alignDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	alignCommand.Flags().StringVarP(&alignRole, "role", "r", "", "Catalog role id to align against (e.g. backend)")
	alignCommand.Flags().StringVar(&alignMatchPolicy, "match-policy", "", "Requirement matching policy: contains, word, or exact")
	alignCommand.Flags().BoolVar(&alignDemo, "demo", false, "Use the built-in demo profile")
	alignCommand.Flags().BoolVar(&alignJSON, "json", false, "Print the full report as JSON instead of the boxed summary")
	alignCommand.Flags().BoolVarP(&alignVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(alignCommand)
}

// alignReport is the JSON shape emitted by --json.
type alignReport struct {
	Role     string                  `json:"role"`
	Score    int                     `json:"score"`
	Counts   alignment.Counts        `json:"counts"`
	Statuses []alignment.SkillStatus `json:"statuses"`
}

func runAlignCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg := config.Config{
		ProfileID:   alignProfileID,
		DatabaseURL: alignDatabaseURL,
		Role:        alignRole,
		MatchPolicy: alignMatchPolicy,
		Verbose:     alignVerbose,
	}
	cfg, err := loadMergedConfig(cfg, alignConfigPath, alignVerbose)
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	doc, err := loadProfileDocument(ctx, cfg, alignProfilePath, alignDemo)
	if err != nil {
		return err
	}

	role, requirements, err := requirementsForRole(cfg.Role)
	if err != nil {
		return err
	}

	resolver, err := newResolver(doc, cfg)
	if err != nil {
		return err
	}
	resolved := resolver.ResolveRequirements(requirements)

	score := alignment.Score(resolved, requirements)
	statuses, counts := alignment.Summarize(resolved, requirements)

	if alignJSON {
		return printJSON(alignReport{
			Role:     role.ID,
			Score:    score,
			Counts:   counts,
			Statuses: statuses,
		})
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintAlignmentReport(score, statuses, counts)
	return nil
}
