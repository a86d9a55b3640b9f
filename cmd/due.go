package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Kairavparikh/quizwhiz/internal/learning"
	"github.com/spf13/cobra"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List review items due now",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		svc := learning.NewService(s.MisconceptionRepo(), s.ReviewRepo(), s.EventRepo())

		now := time.Now()
		due, err := svc.DueReviews(context.Background(), ownerFlag(cmd), now)
		if err != nil {
			return fmt.Errorf("query due reviews: %w", err)
		}

		if len(due) == 0 {
			fmt.Println("Nothing due for review.")
			return nil
		}

		fmt.Printf("%-30s  %-8s  %-12s  %s\n", "Concept", "Priority", "Due", "Overdue")
		fmt.Println(strings.Repeat("─", 64))
		for _, it := range due {
			overdue := ""
			if d := it.OverdueDays(now); d >= 1 {
				overdue = fmt.Sprintf("%.0fd", d)
			}
			fmt.Printf("%-30s  %-8d  %-12s  %s\n",
				it.ConceptID,
				it.Priority,
				it.NextReviewDate.Local().Format("2006-01-02"),
				overdue,
			)
		}
		return nil
	},
}
