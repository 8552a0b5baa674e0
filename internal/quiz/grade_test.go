package quiz

import (
	"testing"

	"github.com/novonex/skill-align/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelForScore_FixedTable(t *testing.T) {
	assert.Equal(t, types.SkillLevel(0), LevelForScore(0))
	assert.Equal(t, types.SkillLevel(1), LevelForScore(1))
	assert.Equal(t, types.SkillLevel(1), LevelForScore(2))
	assert.Equal(t, types.SkillLevel(2), LevelForScore(3))
	assert.Equal(t, types.SkillLevel(3), LevelForScore(4))
	assert.Equal(t, types.SkillLevel(4), LevelForScore(5))
}

func TestLevelForScore_SaturatesAtEnds(t *testing.T) {
	assert.Equal(t, types.SkillLevel(0), LevelForScore(-3))
	assert.Equal(t, types.SkillLevel(4), LevelForScore(7))
}

func TestLevelForScore_Monotonic(t *testing.T) {
	prev := LevelForScore(-1)
	for score := 0; score <= 6; score++ {
		level := LevelForScore(score)
		assert.GreaterOrEqual(t, level, prev, "score %d", score)
		prev = level
	}
}

func TestScoreAnswers_AllCorrect(t *testing.T) {
	questions := QuestionsForSkill("python")
	answers := make([]int, len(questions))
	for i, q := range questions {
		answers[i] = q.CorrectAnswer
	}
	assert.Equal(t, 5, ScoreAnswers(questions, answers))
}

func TestScoreAnswers_SkippedAndMissingAreIncorrect(t *testing.T) {
	questions := QuestionsForSkill("sql")
	// Two correct, one skipped, rest unanswered.
	answers := []int{questions[0].CorrectAnswer, questions[1].CorrectAnswer, -1}
	assert.Equal(t, 2, ScoreAnswers(questions, answers))
}

func TestGrade_FourOfFiveIsAdvanced(t *testing.T) {
	questions := QuestionsForSkill("javascript")
	answers := make([]int, len(questions))
	for i, q := range questions {
		answers[i] = q.CorrectAnswer
	}
	// Spoil the last answer.
	answers[4] = (questions[4].CorrectAnswer + 1) % len(questions[4].Options)

	score, level := Grade(types.QuizResult{SkillID: "javascript", Answers: answers})
	assert.Equal(t, 4, score)
	assert.Equal(t, types.SkillLevel(3), level)
	assert.Equal(t, "Advanced", level.Label())
}

func TestQuestionsForSkill_DedicatedBanks(t *testing.T) {
	for _, id := range []string{"javascript", "react", "python", "typescript", "sql"} {
		questions := QuestionsForSkill(id)
		require.Len(t, questions, QuestionCount, "bank %s", id)
		for _, q := range questions {
			assert.Len(t, q.Options, 4)
			assert.GreaterOrEqual(t, q.CorrectAnswer, 0)
			assert.Less(t, q.CorrectAnswer, len(q.Options))
		}
	}
}

func TestQuestionsForSkill_GenericFallback(t *testing.T) {
	questions := QuestionsForSkill("raspberry-pi")
	require.Len(t, questions, QuestionCount)
	assert.Contains(t, questions[0].Text, "raspberry pi")
	for _, q := range questions {
		assert.GreaterOrEqual(t, q.CorrectAnswer, 0)
		assert.Less(t, q.CorrectAnswer, len(q.Options))
	}
}
