package quiz

import "github.com/novonex/skill-align/internal/types"

// Session is the linear assessment flow over a fixed question list: a
// cursor from 0 to len(questions)-1 with two transitions (answer, skip)
// and one terminal state. Skipped questions are recorded as -1 and scored
// as incorrect.
type Session struct {
	SkillID   string
	Questions []types.QuizQuestion
	Answers   []int
	Index     int
	Done      bool
}

// NewSession starts an assessment for the given skill
func NewSession(skillID string) *Session {
	return &Session{
		SkillID:   skillID,
		Questions: QuestionsForSkill(skillID),
	}
}

// Current returns the question under the cursor, or false once the session
// is finished.
func (s *Session) Current() (types.QuizQuestion, bool) {
	if s.Done || s.Index >= len(s.Questions) {
		return types.QuizQuestion{}, false
	}
	return s.Questions[s.Index], true
}

// Answer records the selected option for the current question and advances.
// Answering the last question terminates the session.
func (s *Session) Answer(optionIndex int) {
	if s.Done {
		return
	}
	s.Answers = append(s.Answers, optionIndex)
	s.Index++
	if s.Index >= len(s.Questions) {
		s.Done = true
	}
}

// Skip ends the session early: all remaining questions are recorded as
// skipped and count as incorrect.
func (s *Session) Skip() {
	if s.Done {
		return
	}
	for len(s.Answers) < len(s.Questions) {
		s.Answers = append(s.Answers, -1)
	}
	s.Index = len(s.Questions)
	s.Done = true
}

// Result returns the answers collected so far as a gradeable QuizResult
func (s *Session) Result() types.QuizResult {
	answers := make([]int, len(s.Answers))
	copy(answers, s.Answers)
	return types.QuizResult{SkillID: s.SkillID, Answers: answers}
}
