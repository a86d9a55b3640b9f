package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/Kairavparikh/quizwhiz/internal/learning"
	"github.com/Kairavparikh/quizwhiz/internal/learnstate"
	"github.com/spf13/cobra"
)

var observeCmd = &cobra.Command{
	Use:   "observe",
	Short: "Record a graded answer observation",
	Long: "Record one graded quiz answer. The answer is classified by correctness and\n" +
		"confidence, the misconception ledger is updated when a --type is given, and\n" +
		"the concept's next review is scheduled.",
	RunE: func(cmd *cobra.Command, args []string) error {
		concept, _ := cmd.Flags().GetString("concept")
		mtype, _ := cmd.Flags().GetString("type")
		correct, _ := cmd.Flags().GetBool("correct")
		confidence, _ := cmd.Flags().GetString("confidence")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		svc := learning.NewService(s.MisconceptionRepo(), s.ReviewRepo(), s.EventRepo())

		out, err := svc.Observe(context.Background(), learning.Observation{
			OwnerID:           ownerFlag(cmd),
			Concept:           concept,
			MisconceptionType: mtype,
			Correct:           correct,
			Confidence:        learnstate.ParseConfidence(confidence),
		}, time.Now())
		if err != nil {
			return err
		}

		info := out.State.Info()
		fmt.Printf("State:     %s (priority %d)\n", info.Label, info.Priority)
		fmt.Printf("           %s\n", info.Message)
		fmt.Printf("Follow-up: %s difficulty\n", out.FollowUp)

		if out.Record != nil {
			fmt.Printf("Ledger:    %s/%s strength %d, streak %d, %s\n",
				out.Record.Concept, out.Record.Type,
				out.Record.Strength, out.Record.CorrectStreak, out.Record.Status)
		}
		fmt.Printf("Review:    %s (in %d days)\n",
			out.Review.NextReviewDate.Local().Format("2006-01-02"),
			info.ReviewIntervalDays)

		return nil
	},
}

func init() {
	observeCmd.Flags().String("concept", "", "Concept the question tested (required)")
	observeCmd.Flags().String("type", "", "Misconception type behind the error, e.g. sign-error")
	observeCmd.Flags().Bool("correct", false, "Whether the answer was correct")
	observeCmd.Flags().String("confidence", "low", "Self-reported confidence: low, medium or high")
	_ = observeCmd.MarkFlagRequired("concept")
}
