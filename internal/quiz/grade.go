package quiz

import "github.com/novonex/skill-align/internal/types"

// ScoreAnswers counts answers matching each question's correct option.
// Missing or skipped answers (index -1, or fewer answers than questions)
// count as incorrect; extra answers beyond the question list are ignored.
func ScoreAnswers(questions []types.QuizQuestion, answers []int) int {
	score := 0
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		if answers[i] == q.CorrectAnswer {
			score++
		}
	}
	return score
}

// LevelForScore maps a quiz score to a skill level via the fixed table:
// 0 -> 0, 1-2 -> 1, 3 -> 2, 4 -> 3, 5 -> 4. The mapping is monotonic and
// total over all integers by saturating at both ends.
func LevelForScore(score int) types.SkillLevel {
	switch {
	case score <= 0:
		return 0
	case score <= 2:
		return 1
	case score == 3:
		return 2
	case score == 4:
		return 3
	default:
		return 4
	}
}

// Grade scores a quiz result against a skill's question bank and returns
// the score and the inferred level.
func Grade(result types.QuizResult) (int, types.SkillLevel) {
	questions := QuestionsForSkill(result.SkillID)
	score := ScoreAnswers(questions, result.Answers)
	return score, LevelForScore(score)
}
