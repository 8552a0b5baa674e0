// Package main provides the skill_align command-line interface and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skill_align",
	Short: "Skill alignment and gap-analysis engine",
	Long:  "skill_align compares a user's skill profile against role requirement sets, scores the alignment, classifies gaps, and projects radar chart geometry. It can also infer skill levels from short quizzes, simulate learning actions, and derive requirements from an AI company/role analysis.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
