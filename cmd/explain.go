package cmd

import (
	"context"
	"fmt"

	"github.com/Kairavparikh/quizwhiz/internal/explain"
	"github.com/Kairavparikh/quizwhiz/internal/learnstate"
	"github.com/Kairavparikh/quizwhiz/internal/llm"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Generate an explanation and follow-up question for an answer",
	Long: "Generate an LLM explanation of a quiz answer plus a follow-up question.\n" +
		"The explanation tone and follow-up difficulty track the learner's state\n" +
		"(confidently wrong answers get a same-difficulty retry, hesitant correct\n" +
		"answers get a harder stretch).",
	RunE: func(cmd *cobra.Command, args []string) error {
		concept, _ := cmd.Flags().GetString("concept")
		question, _ := cmd.Flags().GetString("question")
		answer, _ := cmd.Flags().GetString("answer")
		given, _ := cmd.Flags().GetString("given")
		correct, _ := cmd.Flags().GetBool("correct")
		confidence, _ := cmd.Flags().GetString("confidence")

		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			if discovered, ok := llm.DiscoverConfig(); ok {
				cfg = discovered
			} else {
				return fmt.Errorf("no LLM provider configured: %w", err)
			}
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		provider, err := llm.NewProvider(ctx, cfg, s.EventRepo())
		if err != nil {
			return err
		}

		state := learnstate.Classify(correct, learnstate.ParseConfidence(confidence))
		explainer := explain.NewExplainer(provider, explain.DefaultConfig())

		res, err := explainer.Explain(ctx, explain.Request{
			Concept:       concept,
			QuestionText:  question,
			CorrectAnswer: answer,
			LearnerAnswer: given,
			State:         state,
		})
		if err != nil {
			return err
		}

		fmt.Println(res.Explanation)
		fmt.Println()
		fmt.Printf("Follow-up (%s): %s\n", res.Difficulty, res.FollowUp.Text)
		for i, opt := range res.FollowUp.Options {
			marker := " "
			if i == res.FollowUp.CorrectIndex {
				marker = "*"
			}
			fmt.Printf("  %s %c) %s\n", marker, 'a'+i, opt)
		}
		return nil
	},
}

func init() {
	explainCmd.Flags().String("concept", "", "Concept the question tested (required)")
	explainCmd.Flags().String("question", "", "The question text (required)")
	explainCmd.Flags().String("answer", "", "The correct answer (required)")
	explainCmd.Flags().String("given", "", "The learner's answer (required)")
	explainCmd.Flags().Bool("correct", false, "Whether the answer was correct")
	explainCmd.Flags().String("confidence", "low", "Self-reported confidence: low, medium or high")
	_ = explainCmd.MarkFlagRequired("concept")
	_ = explainCmd.MarkFlagRequired("question")
	_ = explainCmd.MarkFlagRequired("answer")
	_ = explainCmd.MarkFlagRequired("given")
}
