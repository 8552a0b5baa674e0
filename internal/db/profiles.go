package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/novonex/skill-align/internal/profile"
	"github.com/novonex/skill-align/internal/types"
)

// Profile section identifiers. Each section is stored as its own JSONB row
// so partial updates never rewrite the whole profile.
const (
	SectionSkills     = "user_skills"
	SectionDomains    = "user_domains"
	SectionDSA        = "dsa_progress"
	SectionSelections = "selections"
)

// selections holds the company/role pair a profile is currently targeting.
type selections struct {
	Company string `json:"selectedCompany,omitempty"`
	Role    string `json:"selectedRole,omitempty"`
}

// LoadProfile assembles a profile document from its stored sections.
// Missing sections yield zero values, so a brand-new profile loads as an
// empty document rather than an error. Sections are fetched concurrently.
func (db *DB) LoadProfile(ctx context.Context, profileID uuid.UUID) (*types.ProfileDocument, error) {
	doc := &types.ProfileDocument{}
	sel := selections{}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return db.loadSection(gCtx, profileID, SectionSkills, &doc.UserSkills)
	})
	g.Go(func() error {
		return db.loadSection(gCtx, profileID, SectionDomains, &doc.UserDomains)
	})
	g.Go(func() error {
		return db.loadSection(gCtx, profileID, SectionDSA, &doc.DSAProgress)
	})
	g.Go(func() error {
		return db.loadSection(gCtx, profileID, SectionSelections, &sel)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	doc.SelectedCompany = sel.Company
	doc.SelectedRole = sel.Role
	// Stored progress may list a topic in more than one set; restore the
	// partition invariant before handing the document out.
	doc.DSAProgress = profile.NormalizeDSAProgress(doc.DSAProgress)
	return doc, nil
}

// SaveProfile writes every section of a profile document.
func (db *DB) SaveProfile(ctx context.Context, profileID uuid.UUID, doc *types.ProfileDocument) error {
	if doc == nil {
		return fmt.Errorf("profile document is nil")
	}

	sections := map[string]any{
		SectionSkills:  doc.UserSkills,
		SectionDomains: doc.UserDomains,
		SectionDSA:     doc.DSAProgress,
		SectionSelections: selections{
			Company: doc.SelectedCompany,
			Role:    doc.SelectedRole,
		},
	}

	for section, content := range sections {
		if err := db.saveSection(ctx, profileID, section, content); err != nil {
			return err
		}
	}
	return nil
}

// SaveSkills writes only the user skills section.
func (db *DB) SaveSkills(ctx context.Context, profileID uuid.UUID, skills []types.UserSkill) error {
	return db.saveSection(ctx, profileID, SectionSkills, skills)
}

// SaveDomains writes only the skill domains section.
func (db *DB) SaveDomains(ctx context.Context, profileID uuid.UUID, domains []types.SkillDomain) error {
	return db.saveSection(ctx, profileID, SectionDomains, domains)
}

// SaveDSAProgress writes only the DSA progress section.
func (db *DB) SaveDSAProgress(ctx context.Context, profileID uuid.UUID, progress types.DSAProgress) error {
	return db.saveSection(ctx, profileID, SectionDSA, progress)
}

// SaveSelections writes only the company/role selections section.
func (db *DB) SaveSelections(ctx context.Context, profileID uuid.UUID, company, role string) error {
	return db.saveSection(ctx, profileID, SectionSelections, selections{Company: company, Role: role})
}

// DeleteProfile removes every section of a profile.
func (db *DB) DeleteProfile(ctx context.Context, profileID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`DELETE FROM profile_sections WHERE profile_id = $1`,
		profileID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

// ProfileExists reports whether any section is stored for the profile.
func (db *DB) ProfileExists(ctx context.Context, profileID uuid.UUID) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM profile_sections WHERE profile_id = $1)`,
		profileID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check profile existence: %w", err)
	}
	return exists, nil
}

func (db *DB) loadSection(ctx context.Context, profileID uuid.UUID, section string, out any) error {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM profile_sections WHERE profile_id = $1 AND section = $2`,
		profileID, section,
	).Scan(&content)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load profile section %s: %w", section, err)
	}

	if err := json.Unmarshal(content, out); err != nil {
		return fmt.Errorf("failed to decode profile section %s: %w", section, err)
	}
	return nil
}

func (db *DB) saveSection(ctx context.Context, profileID uuid.UUID, section string, content any) error {
	jsonBytes, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to encode profile section %s: %w", section, err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO profile_sections (profile_id, section, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (profile_id, section) DO UPDATE SET content = $3, updated_at = NOW()`,
		profileID, section, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile section %s: %w", section, err)
	}
	return nil
}
