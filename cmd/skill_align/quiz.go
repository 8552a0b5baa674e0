package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/novonex/skill-align/internal/db"
	"github.com/novonex/skill-align/internal/observability"
	"github.com/novonex/skill-align/internal/profile"
	"github.com/novonex/skill-align/internal/quiz"
	"github.com/novonex/skill-align/internal/types"
	"github.com/spf13/cobra"
)

var quizCommand = &cobra.Command{
	Use:   "quiz",
	Short: "Assess a skill level with a short multiple-choice quiz",
	Long: `Runs the five-question assessment for a skill and maps the number of
correct answers to a skill level from None to Expert. Without --answers
the quiz is interactive; answer with the option number, or "s" to skip
the rest.`,
	RunE: runQuizCmd,
}

var (
	quizSkill       string
	quizAnswers     string
	quizProfileID   string
	quizDatabaseURL string
)

func init() {
	quizCommand.Flags().StringVarP(&quizSkill, "skill", "s", "", "Skill id to assess (required)")
	quizCommand.Flags().StringVarP(&quizAnswers, "answers", "a", "", "Comma-separated option indexes, one per question (e.g. 2,0,1,3,2); use x to skip a question")
	quizCommand.Flags().StringVar(&quizProfileID, "profile-id", "", "Stored profile UUID to write the inferred level back to")
	quizCommand.Flags().StringVar(&quizDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	_ = quizCommand.MarkFlagRequired("skill")

	rootCmd.AddCommand(quizCommand)
}

// parseAnswers parses a comma-separated answer list into option indexes.
// "x" (or an empty entry) marks a skipped question and is recorded as -1.
func parseAnswers(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	answers := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" || strings.EqualFold(part, "x") {
			answers = append(answers, -1)
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid answer %q: want an option index or x", part)
		}
		answers = append(answers, n)
	}
	return answers, nil
}

func runQuizCmd(cmd *cobra.Command, _ []string) error {
	session := quiz.NewSession(quizSkill)
	if len(session.Questions) == 0 {
		return fmt.Errorf("no questions available for skill %q", quizSkill)
	}

	if quizAnswers != "" {
		answers, err := parseAnswers(quizAnswers)
		if err != nil {
			return err
		}
		for _, a := range answers {
			session.Answer(a)
		}
	} else {
		if err := runInteractiveQuiz(session, os.Stdin, os.Stdout); err != nil {
			return err
		}
	}

	result := session.Result()
	score, level := quiz.Grade(result)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintQuizResult(quizSkill, score, len(session.Questions), level)

	if quizProfileID != "" {
		return saveQuizLevel(context.Background(), quizSkill, level)
	}
	return nil
}

// saveQuizLevel writes a quiz-inferred level back to the stored profile's
// domain vault.
func saveQuizLevel(ctx context.Context, skillID string, level types.SkillLevel) error {
	id, err := uuid.Parse(quizProfileID)
	if err != nil {
		return fmt.Errorf("invalid profile id %q: %w", quizProfileID, err)
	}

	databaseURL := quizDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("--profile-id requires a database URL (--db-url flag or DATABASE_URL env var)")
	}

	store, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer store.Close()
	if err := store.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	doc, err := store.LoadProfile(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load profile %s: %w", id, err)
	}

	domains, found := profile.RecordAssessment(doc.UserDomains, skillID, int(level))
	if !found {
		fmt.Printf("Skill %q is not in the profile's domain vault; nothing saved.\n", skillID)
		return nil
	}
	if err := store.SaveDomains(ctx, id, domains); err != nil {
		return fmt.Errorf("failed to save domains for profile %s: %w", id, err)
	}

	fmt.Printf("Saved %s level %s to profile %s\n", skillID, level.Label(), id)
	return nil
}

// runInteractiveQuiz walks the session question by question, reading option
// numbers from in. "s" skips the remaining questions.
func runInteractiveQuiz(session *quiz.Session, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	for {
		question, ok := session.Current()
		if !ok {
			return nil
		}

		_, _ = fmt.Fprintf(out, "\nQ%d. %s\n", session.Index+1, question.Text)
		for i, option := range question.Options {
			_, _ = fmt.Fprintf(out, "  %d) %s\n", i, option)
		}
		_, _ = fmt.Fprint(out, "Answer (number, or s to skip the rest): ")

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			session.Skip()
			return nil
		}
		line = strings.TrimSpace(line)

		if strings.EqualFold(line, "s") {
			session.Skip()
			return nil
		}

		n, convErr := strconv.Atoi(line)
		if convErr != nil || n < 0 || n >= len(question.Options) {
			_, _ = fmt.Fprintln(out, "Please enter one of the option numbers.")
			continue
		}
		session.Answer(n)
	}
}
