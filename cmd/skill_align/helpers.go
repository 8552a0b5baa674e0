package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/novonex/skill-align/internal/catalog"
	"github.com/novonex/skill-align/internal/config"
	"github.com/novonex/skill-align/internal/db"
	"github.com/novonex/skill-align/internal/profile"
	"github.com/novonex/skill-align/internal/schemas"
	"github.com/novonex/skill-align/internal/types"
)

// loadMergedConfig loads the optional config file, validates it, and applies
// it underneath values already set on cfg by CLI flags.
func loadMergedConfig(cfg config.Config, configPath string, verbose bool) (config.Config, error) {
	if configPath == "" {
		return cfg, nil
	}

	loaded, err := config.LoadConfig(configPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		return cfg, err
	}
	if verbose {
		_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", configPath)
	}

	return cfg.MergeWithDefaults(*loaded), nil
}

// readProfileFile loads a profile document from disk, schema-validating it
// before decoding.
func readProfileFile(path string) (*types.ProfileDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
	}
	if err := schemas.ValidateProfileDocument(string(data)); err != nil {
		return nil, fmt.Errorf("invalid profile file %s: %w", path, err)
	}
	var doc types.ProfileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse profile file %s: %w", path, err)
	}
	return &doc, nil
}

// loadProfileDocument resolves the skill profile for a run, in priority
// order: an explicit profile JSON file, a stored profile loaded by UUID from
// the database, or the built-in demo profile.
func loadProfileDocument(ctx context.Context, cfg config.Config, profilePath string, demo bool) (*types.ProfileDocument, error) {
	if profilePath != "" {
		return readProfileFile(profilePath)
	}

	if cfg.ProfileID != "" {
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("--profile-id requires a database URL (--db-url flag, config file, or DATABASE_URL env var)")
		}
		profileID, err := uuid.Parse(cfg.ProfileID)
		if err != nil {
			return nil, fmt.Errorf("invalid profile id %q: %w", cfg.ProfileID, err)
		}
		store, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		defer store.Close()
		doc, err := store.LoadProfile(ctx, profileID)
		if err != nil {
			return nil, fmt.Errorf("failed to load profile %s: %w", profileID, err)
		}
		return doc, nil
	}

	if demo {
		doc := catalog.DemoProfile()
		return &doc, nil
	}

	return nil, fmt.Errorf("no profile source: provide --profile, --profile-id, or --demo")
}

// requirementsForRole looks up a catalog role by id and returns its
// requirement set.
func requirementsForRole(roleID string) (types.Role, []types.SkillRequirement, error) {
	if roleID == "" {
		return types.Role{}, nil, fmt.Errorf("--role is required (via flag or config)")
	}
	role, ok := catalog.RoleByID(roleID)
	if !ok {
		return types.Role{}, nil, fmt.Errorf("unknown role %q", roleID)
	}
	return role, role.RequiredSkills, nil
}

// newResolver builds a profile resolver over the document with the
// configured match policy.
func newResolver(doc *types.ProfileDocument, cfg config.Config) (*profile.Resolver, error) {
	policy, err := cfg.ResolveMatchPolicy()
	if err != nil {
		return nil, err
	}
	r := profile.NewResolver(doc.UserSkills, doc.UserDomains)
	r.Policy = policy
	return r, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	out := json.NewEncoder(os.Stdout)
	out.SetIndent("", "  ")
	return out.Encode(v)
}
