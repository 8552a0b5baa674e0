package types

// Difficulty grades a DSA topic
type Difficulty string

// DSA topic difficulties
const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DSATopic is one data-structures/algorithms topic a role may expect
type DSATopic struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Difficulty Difficulty `json:"difficulty"`
	Required   bool       `json:"required"`
}

// Role is a target position with its skill requirements and DSA topics
type Role struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	RequiredSkills []SkillRequirement `json:"requiredSkills"`
	DSATopics      []DSATopic         `json:"dsaTopics"`
}

// CompanyType is a coarse company classification a user targets
type CompanyType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DSAProgress partitions a role's DSA topic ids into three pairwise
// disjoint sets. Every topic id appears in at most one set at a time.
type DSAProgress struct {
	Completed  []string `json:"completed"`
	InProgress []string `json:"inProgress"`
	NotStarted []string `json:"notStarted"`
}
