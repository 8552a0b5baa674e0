package types

// QuizQuestion is one multiple-choice question in a skill assessment.
// CorrectAnswer is an index into Options.
type QuizQuestion struct {
	ID            string   `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// QuizResult holds the selected option index per question, in question order.
// A value of -1 marks a skipped question.
type QuizResult struct {
	SkillID string `json:"skillId"`
	Answers []int  `json:"answers"`
}
