package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/novonex/skill-align/internal/catalog"
	"github.com/novonex/skill-align/internal/db"
	"github.com/novonex/skill-align/internal/observability"
	"github.com/novonex/skill-align/internal/profile"
	"github.com/novonex/skill-align/internal/types"
	"github.com/spf13/cobra"
)

var dsaCommand = &cobra.Command{
	Use:   "dsa",
	Short: "Track DSA topic progress for a stored profile",
	Long: `Tracks data-structures/algorithms preparation against a role's topic
list. Each topic is in exactly one of three states: not started, in
progress, or completed. Transitions are persisted to the stored profile.`,
}

var dsaStartCommand = &cobra.Command{
	Use:   "start",
	Short: "Mark a DSA topic as in progress",
	RunE:  runDSAStart,
}

var dsaCompleteCommand = &cobra.Command{
	Use:   "complete",
	Short: "Mark a DSA topic as completed",
	RunE:  runDSAComplete,
}

var dsaShowCommand = &cobra.Command{
	Use:   "show",
	Short: "Show DSA progress against a role's topic list",
	RunE:  runDSAShow,
}

var (
	dsaProfileID   string
	dsaDatabaseURL string
	dsaRole        string
	dsaTopic       string
	dsaJSON        bool
)

func init() {
	dsaCommand.PersistentFlags().StringVar(&dsaProfileID, "profile-id", "", "Stored profile UUID (required)")
	dsaCommand.PersistentFlags().StringVar(&dsaDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	dsaCommand.PersistentFlags().StringVarP(&dsaRole, "role", "r", "", "Role id whose topic list to use (defaults to the profile's selected role)")
	dsaStartCommand.Flags().StringVarP(&dsaTopic, "topic", "t", "", "DSA topic id (required)")
	dsaCompleteCommand.Flags().StringVarP(&dsaTopic, "topic", "t", "", "DSA topic id (required)")
	dsaShowCommand.Flags().BoolVar(&dsaJSON, "json", false, "Output as JSON")
	_ = dsaStartCommand.MarkFlagRequired("topic")
	_ = dsaCompleteCommand.MarkFlagRequired("topic")

	dsaCommand.AddCommand(dsaStartCommand)
	dsaCommand.AddCommand(dsaCompleteCommand)
	dsaCommand.AddCommand(dsaShowCommand)
	rootCmd.AddCommand(dsaCommand)
}

func runDSAStart(cmd *cobra.Command, _ []string) error {
	return transitionDSATopic(profile.StartDSATopic, "in progress")
}

func runDSAComplete(cmd *cobra.Command, _ []string) error {
	return transitionDSATopic(profile.CompleteDSATopic, "completed")
}

// transitionDSATopic loads the stored profile, applies the state change for
// the --topic flag, and writes the progress section back.
func transitionDSATopic(transition func(types.DSAProgress, string) types.DSAProgress, verb string) error {
	ctx := context.Background()

	id, store, err := dsaStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	doc, err := store.LoadProfile(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load profile %s: %w", id, err)
	}

	role, err := dsaRoleFor(doc)
	if err != nil {
		return err
	}
	if !roleHasTopic(role, dsaTopic) {
		return fmt.Errorf("unknown DSA topic %q for role %q", dsaTopic, role.ID)
	}

	progress := transition(doc.DSAProgress, dsaTopic)
	if err := store.SaveDSAProgress(ctx, id, progress); err != nil {
		return fmt.Errorf("failed to save DSA progress for profile %s: %w", id, err)
	}

	fmt.Printf("Marked topic %q %s for profile %s\n", dsaTopic, verb, id)
	return nil
}

func runDSAShow(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	id, store, err := dsaStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	doc, err := store.LoadProfile(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load profile %s: %w", id, err)
	}

	role, err := dsaRoleFor(doc)
	if err != nil {
		return err
	}

	if dsaJSON {
		return printJSON(struct {
			Role     string            `json:"role"`
			Topics   []types.DSATopic  `json:"topics"`
			Progress types.DSAProgress `json:"progress"`
		}{Role: role.ID, Topics: role.DSATopics, Progress: doc.DSAProgress})
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintDSAProgress(role, doc.DSAProgress)
	return nil
}

// dsaStore parses the --profile-id flag and opens the profile database.
func dsaStore(ctx context.Context) (uuid.UUID, *db.DB, error) {
	if dsaProfileID == "" {
		return uuid.Nil, nil, fmt.Errorf("--profile-id is required")
	}
	id, err := uuid.Parse(dsaProfileID)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("invalid profile id %q: %w", dsaProfileID, err)
	}

	databaseURL := dsaDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return uuid.Nil, nil, fmt.Errorf("a database URL is required (--db-url flag or DATABASE_URL env var)")
	}

	store, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := store.EnsureSchema(ctx); err != nil {
		store.Close()
		return uuid.Nil, nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	return id, store, nil
}

// dsaRoleFor resolves the topic list's role: the --role flag when set,
// otherwise the profile's selected role.
func dsaRoleFor(doc *types.ProfileDocument) (types.Role, error) {
	roleID := dsaRole
	if roleID == "" {
		roleID = doc.SelectedRole
	}
	if roleID == "" {
		return types.Role{}, fmt.Errorf("--role is required (the profile has no selected role)")
	}
	role, ok := catalog.RoleByID(roleID)
	if !ok {
		return types.Role{}, fmt.Errorf("unknown role %q", roleID)
	}
	return role, nil
}

func roleHasTopic(role types.Role, topicID string) bool {
	for _, topic := range role.DSATopics {
		if topic.ID == topicID {
			return true
		}
	}
	return false
}
