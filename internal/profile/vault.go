package profile

import "github.com/novonex/skill-align/internal/types"

// SetVaultLevel returns a copy of the domains with the given skill's level
// set (clamped to [0,4]). Domains and skills not addressed are returned
// unchanged. The second return reports whether the skill was found.
func SetVaultLevel(domains []types.SkillDomain, domainID, skillID string, level int) ([]types.SkillDomain, bool) {
	out := make([]types.SkillDomain, len(domains))
	found := false
	for i, domain := range domains {
		out[i] = domain
		if domain.ID != domainID {
			continue
		}
		skills := make([]types.SkillItem, len(domain.Skills))
		copy(skills, domain.Skills)
		for j, skill := range skills {
			if skill.ID == skillID {
				skills[j].Level = types.ClampLevel(level)
				found = true
			}
		}
		out[i].Skills = skills
	}
	return out, found
}

// RecordAssessment returns a copy of the domains with the assessed skill's
// level set (clamped to [0,4]) in every domain that holds it. Used after a
// quiz to write the inferred level back to the vault. The second return
// reports whether any domain held the skill.
func RecordAssessment(domains []types.SkillDomain, skillID string, level int) ([]types.SkillDomain, bool) {
	out := make([]types.SkillDomain, len(domains))
	found := false
	for i, domain := range domains {
		out[i] = domain
		hit := false
		for _, skill := range domain.Skills {
			if skill.ID == skillID {
				hit = true
				break
			}
		}
		if !hit {
			continue
		}
		skills := make([]types.SkillItem, len(domain.Skills))
		copy(skills, domain.Skills)
		for j, skill := range skills {
			if skill.ID == skillID {
				skills[j].Level = types.ClampLevel(level)
			}
		}
		out[i].Skills = skills
		found = true
	}
	return out, found
}

// UpsertUserSkill returns a copy of the flat list with the given skill
// replaced, or appended if absent. Identity is the skill id. The level is
// clamped on write.
func UpsertUserSkill(skills []types.UserSkill, skill types.UserSkill) []types.UserSkill {
	skill.Level = types.ClampLevel(int(skill.Level))

	out := make([]types.UserSkill, 0, len(skills)+1)
	replaced := false
	for _, s := range skills {
		if s.SkillID == skill.SkillID {
			out = append(out, skill)
			replaced = true
			continue
		}
		out = append(out, s)
	}
	if !replaced {
		out = append(out, skill)
	}
	return out
}
