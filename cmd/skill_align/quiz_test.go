package main

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
	"testing"

	"github.com/novonex/skill-align/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnswers(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{
			name:  "All numeric",
			input: "2,0,1,3,2",
			want:  []int{2, 0, 1, 3, 2},
		},
		{
			name:  "Skips marked with x",
			input: "2,x,1,X,0",
			want:  []int{2, -1, 1, -1, 0},
		},
		{
			name:  "Empty entries are skips",
			input: "2,,1",
			want:  []int{2, -1, 1},
		},
		{
			name:  "Whitespace tolerated",
			input: " 2 , 0 ",
			want:  []int{2, 0},
		},
		{
			name:  "Empty string",
			input: "",
			want:  nil,
		},
		{
			name:    "Non-numeric answer",
			input:   "2,maybe,1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAnswers(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunInteractiveQuiz_AnswersEveryQuestion(t *testing.T) {
	session := quiz.NewSession("python")
	require.Len(t, session.Questions, quiz.QuestionCount)

	in := strings.NewReader("0\n0\n0\n0\n0\n")
	var out bytes.Buffer

	err := runInteractiveQuiz(session, in, &out)
	require.NoError(t, err)
	assert.True(t, session.Done)
	assert.Len(t, session.Result().Answers, quiz.QuestionCount)
	assert.Contains(t, out.String(), "Q1.")
}

func TestRunInteractiveQuiz_SkipEndsSession(t *testing.T) {
	session := quiz.NewSession("python")

	in := strings.NewReader("0\ns\n")
	var out bytes.Buffer

	err := runInteractiveQuiz(session, in, &out)
	require.NoError(t, err)
	assert.True(t, session.Done)

	answers := session.Result().Answers
	require.Len(t, answers, quiz.QuestionCount)
	assert.Equal(t, -1, answers[len(answers)-1])
}

func TestRunInteractiveQuiz_RejectsOutOfRangeOption(t *testing.T) {
	session := quiz.NewSession("python")

	// First input is out of range and must be re-asked, not recorded.
	in := strings.NewReader("9\n0\ns\n")
	var out bytes.Buffer

	err := runInteractiveQuiz(session, in, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Please enter one of the option numbers.")
	assert.NotEqual(t, 9, session.Result().Answers[0])
}

func TestQuizCommand_RequiresSkill(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "quiz")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestQuizCommand_ProfileIDValidation(t *testing.T) {
	binaryPath := getBinaryPath(t)

	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "Invalid profile id",
			args:        []string{"quiz", "--skill", "python", "--answers", "0,0,0,0,0", "--profile-id", "not-a-uuid"},
			errorString: "invalid profile id",
		},
		{
			name:        "Missing database URL",
			args:        []string{"quiz", "--skill", "python", "--answers", "0,0,0,0,0", "--profile-id", "fd5fd6f1-7e29-4f3e-9de5-4f8a3f7c9a10"},
			errorString: "requires a database URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			// Strip DATABASE_URL so the validation path is deterministic.
			cmd.Env = []string{"PATH=/usr/bin:/bin"}
			output, err := cmd.CombinedOutput()

			assert.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}

func TestQuizCommand_GradesAnswerList(t *testing.T) {
	binaryPath := getBinaryPath(t)

	// Build a fully correct answer list from the question bank.
	questions := quiz.QuestionsForSkill("python")
	parts := make([]string, len(questions))
	for i, q := range questions {
		parts[i] = fmt.Sprintf("%d", q.CorrectAnswer)
	}

	cmd := exec.Command(binaryPath, "quiz", "--skill", "python", "--answers", strings.Join(parts, ","))
	output, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Contains(t, string(output), "Expert")
}
