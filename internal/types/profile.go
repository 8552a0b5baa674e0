package types

// ProfileDocument is the persisted per-user value the engine consumes and
// produces. Encoding is owned by the storage layer; the engine only sees
// plain values matching these shapes.
type ProfileDocument struct {
	UserSkills      []UserSkill   `json:"userSkills"`
	UserDomains     []SkillDomain `json:"userDomains"`
	DSAProgress     DSAProgress   `json:"dsaProgress"`
	SelectedCompany string        `json:"selectedCompany,omitempty"`
	SelectedRole    string        `json:"selectedRole,omitempty"`
}
