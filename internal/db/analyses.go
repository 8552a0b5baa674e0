package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/novonex/skill-align/internal/profile"
	"github.com/novonex/skill-align/internal/types"
)

// AnalysisRecord is a stored company/role analysis.
type AnalysisRecord struct {
	ID        uuid.UUID
	Company   string
	Role      string
	Analysis  *types.CompanyAnalysis
	CreatedAt time.Time
}

// SaveAnalysis upserts the analysis for a company/role pair. The lookup key
// is canonicalized so differently-cased inputs collapse to one record.
func (db *DB) SaveAnalysis(ctx context.Context, company, role string, analysis *types.CompanyAnalysis) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(analysis)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to encode analysis: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO company_analyses (company_key, role_key, company, role, content)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (company_key, role_key)
		 DO UPDATE SET company = $3, role = $4, content = $5, created_at = NOW()
		 RETURNING id`,
		analysisKey(company), analysisKey(role), company, role, jsonBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis returns the stored analysis for a company/role pair, or nil
// when none exists.
func (db *DB) GetAnalysis(ctx context.Context, company, role string) (*AnalysisRecord, error) {
	var rec AnalysisRecord
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, company, role, content, created_at
		 FROM company_analyses WHERE company_key = $1 AND role_key = $2`,
		analysisKey(company), analysisKey(role),
	).Scan(&rec.ID, &rec.Company, &rec.Role, &content, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	var analysis types.CompanyAnalysis
	if err := json.Unmarshal(content, &analysis); err != nil {
		return nil, fmt.Errorf("failed to decode analysis: %w", err)
	}
	rec.Analysis = &analysis

	return &rec, nil
}

// ListAnalyses returns stored analyses ordered by recency.
func (db *DB) ListAnalyses(ctx context.Context, limit int) ([]AnalysisRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, company, role, content, created_at
		 FROM company_analyses ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var records []AnalysisRecord
	for rows.Next() {
		var rec AnalysisRecord
		var content []byte
		if err := rows.Scan(&rec.ID, &rec.Company, &rec.Role, &content, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		var analysis types.CompanyAnalysis
		if err := json.Unmarshal(content, &analysis); err != nil {
			return nil, fmt.Errorf("failed to decode analysis: %w", err)
		}
		rec.Analysis = &analysis
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read analysis rows: %w", err)
	}

	return records, nil
}

// analysisKey canonicalizes a company or role name for keyed lookups.
func analysisKey(s string) string {
	return strings.ReplaceAll(profile.Canonicalize(s), " ", "-")
}
