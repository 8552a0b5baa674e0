package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/novonex/skill-align/internal/db"
	"github.com/novonex/skill-align/internal/profile"
	"github.com/novonex/skill-align/internal/types"
	"github.com/spf13/cobra"
)

var profileCommand = &cobra.Command{
	Use:   "profile",
	Short: "Manage stored skill profiles",
}

var profileSaveCommand = &cobra.Command{
	Use:   "save",
	Short: "Validate a profile JSON file and store it in the database",
	RunE:  runProfileSave,
}

var profileShowCommand = &cobra.Command{
	Use:   "show",
	Short: "Print a stored profile as JSON",
	RunE:  runProfileShow,
}

var profileSetLevelCommand = &cobra.Command{
	Use:   "set-level",
	Short: "Set a skill's level in a stored profile's domain vault",
	RunE:  runProfileSetLevel,
}

var (
	profileFile        string
	profileID          string
	profileDatabaseURL string
	setLevelDomain     string
	setLevelSkill      string
	setLevelValue      int
)

func init() {
	profileCommand.PersistentFlags().StringVar(&profileID, "profile-id", "", "Profile UUID (a new one is generated on save when omitted)")
	profileCommand.PersistentFlags().StringVar(&profileDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	profileSaveCommand.Flags().StringVarP(&profileFile, "file", "f", "", "Path to the profile JSON file (required)")
	_ = profileSaveCommand.MarkFlagRequired("file")
	profileSetLevelCommand.Flags().StringVarP(&setLevelDomain, "domain", "d", "", "Domain id holding the skill (required)")
	profileSetLevelCommand.Flags().StringVarP(&setLevelSkill, "skill", "s", "", "Skill id (required)")
	profileSetLevelCommand.Flags().IntVarP(&setLevelValue, "level", "l", 0, "New level, 0-4 (required)")
	_ = profileSetLevelCommand.MarkFlagRequired("domain")
	_ = profileSetLevelCommand.MarkFlagRequired("skill")
	_ = profileSetLevelCommand.MarkFlagRequired("level")

	profileCommand.AddCommand(profileSaveCommand)
	profileCommand.AddCommand(profileShowCommand)
	profileCommand.AddCommand(profileSetLevelCommand)
	rootCmd.AddCommand(profileCommand)
}

func profileStore(ctx context.Context) (*db.DB, error) {
	databaseURL := profileDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return nil, fmt.Errorf("a database URL is required (--db-url flag or DATABASE_URL env var)")
	}

	store, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := store.EnsureSchema(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	return store, nil
}

func runProfileSave(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	doc, err := readProfileFile(profileFile)
	if err != nil {
		return err
	}

	id := uuid.New()
	if profileID != "" {
		id, err = uuid.Parse(profileID)
		if err != nil {
			return fmt.Errorf("invalid profile id %q: %w", profileID, err)
		}
	}

	store, err := profileStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SaveProfile(ctx, id, doc); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	fmt.Printf("Saved profile %s\n", id)
	return nil
}

func runProfileSetLevel(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	if profileID == "" {
		return fmt.Errorf("--profile-id is required")
	}
	id, err := uuid.Parse(profileID)
	if err != nil {
		return fmt.Errorf("invalid profile id %q: %w", profileID, err)
	}
	if setLevelValue < 0 || setLevelValue > int(types.LevelMax) {
		return fmt.Errorf("level must be between 0 and %d", types.LevelMax)
	}

	store, err := profileStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	doc, err := store.LoadProfile(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load profile %s: %w", id, err)
	}

	domains, found := profile.SetVaultLevel(doc.UserDomains, setLevelDomain, setLevelSkill, setLevelValue)
	if !found {
		return fmt.Errorf("skill %q not found in domain %q", setLevelSkill, setLevelDomain)
	}
	if err := store.SaveDomains(ctx, id, domains); err != nil {
		return fmt.Errorf("failed to save domains for profile %s: %w", id, err)
	}

	// Keep the flat skill list in step when it already tracks the skill.
	for _, s := range doc.UserSkills {
		if s.SkillID == setLevelSkill {
			s.Level = types.ClampLevel(setLevelValue)
			if err := store.SaveSkills(ctx, id, profile.UpsertUserSkill(doc.UserSkills, s)); err != nil {
				return fmt.Errorf("failed to save skills for profile %s: %w", id, err)
			}
			break
		}
	}

	fmt.Printf("Set %s to %s in profile %s\n", setLevelSkill, types.ClampLevel(setLevelValue).Label(), id)
	return nil
}

func runProfileShow(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	if profileID == "" {
		return fmt.Errorf("--profile-id is required")
	}
	id, err := uuid.Parse(profileID)
	if err != nil {
		return fmt.Errorf("invalid profile id %q: %w", profileID, err)
	}

	store, err := profileStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	doc, err := store.LoadProfile(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load profile %s: %w", id, err)
	}

	return printJSON(doc)
}
