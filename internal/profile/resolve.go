// Package profile reconciles a user's skill levels across the two stores
// that can hold them: the flat per-role skill list and the domain-organized
// vault. It also owns the update operations on both stores; all functions
// treat their inputs as read-only snapshots and return new values.
package profile

import (
	"strings"

	"github.com/novonex/skill-align/internal/types"
)

// MatchPolicy selects how loosely skill names are matched during
// reconciliation. Containment matching admits false positives (e.g. "Java"
// contained in "JavaScript"); it is kept as the default for compatibility
// with the historical behavior, and stricter policies are available rather
// than silently changing the matching.
type MatchPolicy int

// Matching policies, strictest first
const (
	// MatchExact matches on canonical id or canonical name equality only.
	MatchExact MatchPolicy = iota
	// MatchWholeWord additionally matches when one name appears as a whole
	// word inside the other.
	MatchWholeWord
	// MatchContains additionally matches on arbitrary substring containment
	// in either direction. Historical default.
	MatchContains
)

// Canonicalize normalizes a skill name or id for matching: lowercase, trim,
// collapse runs of whitespace. Separator punctuation ("SQL/Databases",
// "Git & GitHub") becomes a word break so each part stays matchable on its
// own; joining punctuation ("Node.js", "C++") is dropped without splitting
// the token.
func Canonicalize(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '/', r == '\\', r == '&', r == ',',
			r == ';', r == ':', r == '|', r == '-', r == '_':
			b.WriteRune(' ')
		}
		// Everything else ('.', '+', '#', ...) is dropped.
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Resolver resolves a target skill to the user's best-known level across
// the flat list and the vault.
type Resolver struct {
	Skills  []types.UserSkill
	Domains []types.SkillDomain
	Policy  MatchPolicy
}

// NewResolver builds a Resolver with the historical containment policy.
func NewResolver(skills []types.UserSkill, domains []types.SkillDomain) *Resolver {
	return &Resolver{Skills: skills, Domains: domains, Policy: MatchContains}
}

// Resolve returns the user's level for the given skill name and id.
// Resolution order: the flat list first (id match, then name match, then
// containment); if there is no flat match, or the matched level is 0, the
// same cascade runs across every domain's skills and the maximum level
// found wins. Unknown skills resolve to 0, which downstream classifies as
// a gap.
func (r *Resolver) Resolve(name, id string) types.SkillLevel {
	canonName := Canonicalize(name)
	canonID := Canonicalize(id)

	best := types.LevelNone
	for _, s := range r.Skills {
		if r.matches(canonName, canonID, Canonicalize(s.Name), Canonicalize(s.SkillID)) {
			if s.Level > best {
				best = types.ClampLevel(int(s.Level))
			}
		}
	}
	if best > types.LevelNone {
		return best
	}

	for _, domain := range r.Domains {
		for _, s := range domain.Skills {
			if r.matches(canonName, canonID, Canonicalize(s.Name), Canonicalize(s.ID)) {
				if s.Level > best {
					best = types.ClampLevel(int(s.Level))
				}
			}
		}
	}
	return best
}

// ResolveRequirements maps each requirement of a role to a flat UserSkill
// carrying the resolved level, ready for scoring.
func (r *Resolver) ResolveRequirements(reqs []types.SkillRequirement) []types.UserSkill {
	resolved := make([]types.UserSkill, len(reqs))
	for i, req := range reqs {
		resolved[i] = types.UserSkill{
			SkillID:  req.SkillID,
			Name:     req.Name,
			Level:    r.Resolve(req.Name, req.SkillID),
			Category: req.Category,
		}
	}
	return resolved
}

func (r *Resolver) matches(targetName, targetID, candName, candID string) bool {
	if targetID != "" && candID == targetID {
		return true
	}
	if targetName != "" && candName == targetName {
		return true
	}

	switch r.Policy {
	case MatchExact:
		return false
	case MatchWholeWord:
		return containsWord(targetName, candName) || containsWord(candName, targetName)
	default:
		if targetName == "" || candName == "" {
			return false
		}
		return strings.Contains(targetName, candName) || strings.Contains(candName, targetName)
	}
}

// containsWord reports whether needle appears as a whole space-delimited
// word inside haystack.
func containsWord(haystack, needle string) bool {
	if haystack == "" || needle == "" {
		return false
	}
	for _, word := range strings.Fields(haystack) {
		if word == needle {
			return true
		}
	}
	return false
}
