package types

// CompanyAnalysis is the strongly-typed result of an AI company/role
// analysis, produced by the boundary decoder in internal/analysis.
// All slices are non-nil after decoding; missing payload fields default
// to empty structures.
type CompanyAnalysis struct {
	CompanyProfile       CompanyProfile      `json:"companyProfile"`
	RoleProfile          RoleProfile         `json:"roleProfile"`
	RequiredSkills       TieredSkills        `json:"requiredSkills"`
	ProgrammingLanguages Languages           `json:"programmingLanguages"`
	Tools                []ToolExpectation   `json:"tools"`
	Guidance             PreparationGuidance `json:"guidance"`
}

// CompanyProfile describes the analyzed company
type CompanyProfile struct {
	Category           string `json:"category"`
	EngineeringCulture string `json:"engineeringCulture"`
	Industry           string `json:"industry"`
	OrganizationScale  string `json:"organizationScale"`
}

// RoleProfile summarizes the analyzed role
type RoleProfile struct {
	Summary          string   `json:"summary"`
	Responsibilities []string `json:"responsibilities"`
}

// RequiredSkillEntry is one (name, level) pair from an analysis.
// Level is always in [1,4]: entries missing a level default to 1,
// entries missing a name are discarded at the boundary.
type RequiredSkillEntry struct {
	Name  string     `json:"name"`
	Level SkillLevel `json:"level"`
}

// TieredSkills groups required skills into core/supporting/bonus tiers
type TieredSkills struct {
	Core       []RequiredSkillEntry `json:"core"`
	Supporting []RequiredSkillEntry `json:"supporting"`
	Bonus      []RequiredSkillEntry `json:"bonus"`
}

// Languages lists programming languages by priority
type Languages struct {
	Primary   []string `json:"primary"`
	Secondary []string `json:"secondary"`
}

// ToolExpectation pairs a tool with the expected familiarity described in prose
type ToolExpectation struct {
	Tool          string `json:"tool"`
	ExpectedLevel string `json:"expectedLevel"`
}

// PreparationGuidance carries preparation advice from the analysis
type PreparationGuidance struct {
	FocusAreas       []string `json:"focusAreas"`
	CommonMistakes   []string `json:"commonMistakes"`
	StrongCandidates []string `json:"strongCandidates"`
}
