package main

import (
	"context"
	"os"

	"github.com/novonex/skill-align/internal/config"
	"github.com/novonex/skill-align/internal/radar"
	"github.com/novonex/skill-align/internal/types"
	"github.com/spf13/cobra"
)

var radarCommand = &cobra.Command{
	Use:   "radar",
	Short: "Project radar chart geometry for a profile against a role",
	Long: `Maps the role's requirements onto radar chart axes, one spoke per
requirement, with the user's resolved level as the plotted value. The
first axis points straight up and the rest follow clockwise. Output is
the chart geometry as JSON: polygon points, spokes, label positions,
and grid circle ratios.`,
	RunE: runRadarCmd,
}

var (
	radarConfigPath  string
	radarProfilePath string
	radarProfileID   string
	radarDatabaseURL string
	radarRole        string
	radarMatchPolicy string
	radarRadius      float64
	radarDemo        bool
	radarVerbose     bool
)

func init() {
	radarCommand.Flags().StringVar(&radarConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	radarCommand.Flags().StringVarP(&radarProfilePath, "profile", "p", "", "Path to a profile JSON file")
	radarCommand.Flags().StringVar(&radarProfileID, "profile-id", "", "Profile UUID to load from the database")
	radarCommand.Flags().StringVar(&radarDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	radarCommand.Flags().StringVarP(&radarRole, "role", "r", "", "Catalog role id to align against (e.g. backend)")
	radarCommand.Flags().StringVar(&radarMatchPolicy, "match-policy", "", "Requirement matching policy: contains, word, or exact")
	radarCommand.Flags().Float64Var(&radarRadius, "radius", 100, "Chart radius in pixels")
	radarCommand.Flags().BoolVar(&radarDemo, "demo", false, "Use the built-in demo profile")
	radarCommand.Flags().BoolVarP(&radarVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(radarCommand)
}

func runRadarCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg := config.Config{
		ProfileID:   radarProfileID,
		DatabaseURL: radarDatabaseURL,
		Role:        radarRole,
		MatchPolicy: radarMatchPolicy,
		Verbose:     radarVerbose,
	}
	cfg, err := loadMergedConfig(cfg, radarConfigPath, radarVerbose)
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	doc, err := loadProfileDocument(ctx, cfg, radarProfilePath, radarDemo)
	if err != nil {
		return err
	}

	_, requirements, err := requirementsForRole(cfg.Role)
	if err != nil {
		return err
	}

	resolver, err := newResolver(doc, cfg)
	if err != nil {
		return err
	}
	resolved := resolver.ResolveRequirements(requirements)

	axes := make([]radar.Axis, len(requirements))
	for i, req := range requirements {
		axes[i] = radar.Axis{
			Label:    req.Name,
			Value:    float64(resolved[i].Level),
			MaxValue: float64(types.LevelMax),
		}
	}

	chart := radar.Project(axes, radarRadius)
	return printJSON(chart)
}
