// Package analysis is the boundary between loosely-typed AI analysis
// payloads and the engine's strongly-typed data model. Payloads are decoded
// tolerantly exactly once, here: missing arrays and objects default to
// empty structures, levels arrive as numbers or strings, and malformed
// entries are dropped or defaulted rather than re-checked at each use site.
package analysis

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/novonex/skill-align/internal/profile"
	"github.com/novonex/skill-align/internal/types"
)

// rawEnvelope mirrors the provider response shape: the analysis sits under
// a "data" key, but some providers return it bare.
type rawEnvelope struct {
	Data *rawAnalysis `json:"data"`
}

type rawAnalysis struct {
	CompanyProfile struct {
		CompanyCategory    string `json:"company_category"`
		EngineeringCulture string `json:"engineering_culture"`
		Industry           string `json:"industry"`
		OrganizationScale  string `json:"organization_scale"`
	} `json:"company_profile"`
	RoleProfile struct {
		RoleSummary         string   `json:"role_summary"`
		KeyResponsibilities []string `json:"key_responsibilities"`
	} `json:"role_profile"`
	RequiredSkills struct {
		CoreSkills       []rawSkillEntry `json:"core_skills"`
		SupportingSkills []rawSkillEntry `json:"supporting_skills"`
		BonusSkills      []rawSkillEntry `json:"bonus_skills"`
	} `json:"required_skills"`
	ProgrammingLanguages struct {
		PrimaryLanguages   []string `json:"primary_languages"`
		SecondaryLanguages []string `json:"secondary_languages"`
	} `json:"programming_languages"`
	ToolsAndTechnologies []struct {
		Tool          string `json:"tool"`
		ExpectedLevel string `json:"expected_level"`
	} `json:"tools_and_technologies"`
	PreparationGuidance struct {
		FocusAreas                       []string `json:"focus_areas"`
		CommonMistakes                   []string `json:"common_mistakes"`
		WhatDistinguishesStrongCandidate []string `json:"what_distinguishes_strong_candidates"`
	} `json:"preparation_guidance"`
}

type rawSkillEntry struct {
	Name  string    `json:"name"`
	Level flexLevel `json:"level"`
}

// flexLevel accepts a required level as a JSON number ("level": 3), a
// quoted number ("level": "3"), or nothing at all. Absent or unparseable
// levels default to 1; parsed values clamp into [1,4].
type flexLevel int

func (l *flexLevel) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*l = 1
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*l = 1
		return nil
	}
	*l = flexLevel(clampRequiredLevel(int(f)))
	return nil
}

func clampRequiredLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 4 {
		return 4
	}
	return level
}

// ParseCompanyAnalysis decodes a provider payload into a CompanyAnalysis.
// Partial data never fails the decode; it only produces a sparser result.
// Only a payload that is not JSON at all returns an error.
func ParseCompanyAnalysis(payload []byte) (*types.CompanyAnalysis, error) {
	var envelope rawEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, &ParseError{Message: "payload is not valid JSON", Cause: err}
	}

	raw := envelope.Data
	if raw == nil {
		// Bare payload without the data envelope.
		raw = &rawAnalysis{}
		if err := json.Unmarshal(payload, raw); err != nil {
			return nil, &ParseError{Message: "payload is not valid JSON", Cause: err}
		}
	}

	out := &types.CompanyAnalysis{
		CompanyProfile: types.CompanyProfile{
			Category:           raw.CompanyProfile.CompanyCategory,
			EngineeringCulture: raw.CompanyProfile.EngineeringCulture,
			Industry:           raw.CompanyProfile.Industry,
			OrganizationScale:  raw.CompanyProfile.OrganizationScale,
		},
		RoleProfile: types.RoleProfile{
			Summary:          raw.RoleProfile.RoleSummary,
			Responsibilities: orEmpty(raw.RoleProfile.KeyResponsibilities),
		},
		RequiredSkills: types.TieredSkills{
			Core:       convertEntries(raw.RequiredSkills.CoreSkills),
			Supporting: convertEntries(raw.RequiredSkills.SupportingSkills),
			Bonus:      convertEntries(raw.RequiredSkills.BonusSkills),
		},
		ProgrammingLanguages: types.Languages{
			Primary:   orEmpty(raw.ProgrammingLanguages.PrimaryLanguages),
			Secondary: orEmpty(raw.ProgrammingLanguages.SecondaryLanguages),
		},
		Guidance: types.PreparationGuidance{
			FocusAreas:       orEmpty(raw.PreparationGuidance.FocusAreas),
			CommonMistakes:   orEmpty(raw.PreparationGuidance.CommonMistakes),
			StrongCandidates: orEmpty(raw.PreparationGuidance.WhatDistinguishesStrongCandidate),
		},
	}

	out.Tools = make([]types.ToolExpectation, 0, len(raw.ToolsAndTechnologies))
	for _, tool := range raw.ToolsAndTechnologies {
		if tool.Tool == "" {
			continue
		}
		out.Tools = append(out.Tools, types.ToolExpectation{
			Tool:          tool.Tool,
			ExpectedLevel: tool.ExpectedLevel,
		})
	}

	return out, nil
}

// convertEntries keeps entries with a name and drops the rest. A missing
// level has already defaulted to 1 during decoding.
func convertEntries(raw []rawSkillEntry) []types.RequiredSkillEntry {
	out := make([]types.RequiredSkillEntry, 0, len(raw))
	for _, entry := range raw {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			continue
		}
		level := int(entry.Level)
		if level == 0 {
			// Entry decoded without touching the level field.
			level = 1
		}
		out = append(out, types.RequiredSkillEntry{
			Name:  name,
			Level: types.SkillLevel(clampRequiredLevel(level)),
		})
	}
	return out
}

// Requirements flattens the analysis skill tiers into a requirement set
// ready for scoring. Core skills are treated as technical requirements and
// supporting/bonus tiers as tools, mirroring how catalog roles categorize
// their requirements. Skill ids derive from the canonicalized name.
func Requirements(a *types.CompanyAnalysis) []types.SkillRequirement {
	if a == nil {
		return nil
	}

	var out []types.SkillRequirement
	appendTier := func(entries []types.RequiredSkillEntry, category types.SkillCategory) {
		for _, entry := range entries {
			out = append(out, types.SkillRequirement{
				SkillID:       SkillID(entry.Name),
				Name:          entry.Name,
				RequiredLevel: entry.Level,
				Category:      category,
			})
		}
	}
	appendTier(a.RequiredSkills.Core, types.CategoryTechnical)
	appendTier(a.RequiredSkills.Supporting, types.CategoryTools)
	appendTier(a.RequiredSkills.Bonus, types.CategoryTools)
	return out
}

// SkillID derives a stable lowercase identifier from a free-text skill name
func SkillID(name string) string {
	return strings.ReplaceAll(profile.Canonicalize(name), " ", "-")
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
