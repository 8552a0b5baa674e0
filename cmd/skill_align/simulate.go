package main

import (
	"context"
	"os"

	"github.com/novonex/skill-align/internal/catalog"
	"github.com/novonex/skill-align/internal/config"
	"github.com/novonex/skill-align/internal/observability"
	"github.com/novonex/skill-align/internal/simulation"
	"github.com/novonex/skill-align/internal/types"
	"github.com/spf13/cobra"
)

var simulateCommand = &cobra.Command{
	Use:   "simulate",
	Short: "Project the alignment score after completing learning actions",
	Long: `Applies the selected learning actions on top of the current profile,
recomputes the alignment score against the role, and reports the
current score, the projected score, and the delta. The profile itself
is never modified.`,
	RunE: runSimulateCmd,
}

var (
	simConfigPath  string
	simProfilePath string
	simProfileID   string
	simDatabaseURL string
	simRole        string
	simMatchPolicy string
	simActions     []string
	simDemo        bool
	simJSON        bool
	simVerbose     bool
)

func init() {
	simulateCommand.Flags().StringVar(&simConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	simulateCommand.Flags().StringVarP(&simProfilePath, "profile", "p", "", "Path to a profile JSON file")
	simulateCommand.Flags().StringVar(&simProfileID, "profile-id", "", "Profile UUID to load from the database")
	simulateCommand.Flags().StringVar(&simDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	simulateCommand.Flags().StringVarP(&simRole, "role", "r", "", "Catalog role id to align against (e.g. backend)")
	simulateCommand.Flags().StringVar(&simMatchPolicy, "match-policy", "", "Requirement matching policy: contains, word, or exact")
	simulateCommand.Flags().StringSliceVarP(&simActions, "actions", "a", nil, "Action ids to toggle on (comma-separated, e.g. dsa-problems,sql-course)")
	simulateCommand.Flags().BoolVar(&simDemo, "demo", false, "Use the built-in demo profile")
	simulateCommand.Flags().BoolVar(&simJSON, "json", false, "Print the outcome as JSON instead of the boxed summary")
	simulateCommand.Flags().BoolVarP(&simVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(simulateCommand)
}

func runSimulateCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg := config.Config{
		ProfileID:   simProfileID,
		DatabaseURL: simDatabaseURL,
		Role:        simRole,
		MatchPolicy: simMatchPolicy,
		Verbose:     simVerbose,
	}
	cfg, err := loadMergedConfig(cfg, simConfigPath, simVerbose)
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	doc, err := loadProfileDocument(ctx, cfg, simProfilePath, simDemo)
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
	baseline := resolver.ResolveRequirements(requirements)

	active := make(map[string]bool, len(simActions))
	for _, id := range simActions {
		active[id] = true
	}

	// Only actions targeting a required skill can move the score.
	actions := catalog.ActionsForRole(role)
	outcome := simulation.Simulate(baseline, actions, active, requirements)

	var applied []types.SimulationAction
	for _, action := range actions {
		if active[action.ID] {
			applied = append(applied, action)
		}
	}

	if simJSON {
		return printJSON(struct {
			simulation.Outcome
			Applied []types.SimulationAction `json:"applied"`
		}{Outcome: outcome, Applied: applied})
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintSimulationOutcome(&outcome, applied)
	return nil
}
