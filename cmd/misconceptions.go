package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/Kairavparikh/quizwhiz/internal/misconception"
	"github.com/spf13/cobra"
)

var misconceptionsCmd = &cobra.Command{
	Use:     "misconceptions",
	Aliases: []string{"mc"},
	Short:   "Inspect the misconception ledger",
}

var misconceptionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked misconceptions, strongest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		records, err := s.MisconceptionRepo().ListByOwner(context.Background(), ownerFlag(cmd))
		if err != nil {
			return fmt.Errorf("list misconceptions: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No misconceptions tracked.")
			return nil
		}

		fmt.Printf("%-24s  %-20s  %-8s  %-6s  %-9s  %s\n",
			"Concept", "Type", "Strength", "Streak", "Status", "Last seen")
		fmt.Println(strings.Repeat("─", 90))
		for _, r := range records {
			fmt.Printf("%-24s  %-20s  %-8d  %-6d  %-9s  %s\n",
				r.Concept, r.Type, r.Strength, r.CorrectStreak, r.Status,
				r.LastObservedAt.Local().Format("2006-01-02"))
		}
		return nil
	},
}

var misconceptionsGraphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Show related misconceptions grouped by concept and category",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		records, err := s.MisconceptionRepo().ListByOwner(context.Background(), ownerFlag(cmd))
		if err != nil {
			return fmt.Errorf("list misconceptions: %w", err)
		}

		g := misconception.BuildGraph(records, misconception.DefaultCategoryRules())
		if len(g.Nodes) == 0 {
			fmt.Println("No misconceptions tracked.")
			return nil
		}

		fmt.Printf("%d misconceptions, %d relations\n\n", len(g.Nodes), len(g.Edges))
		for _, n := range g.Nodes {
			fmt.Printf("%s  [%s]  strength %d, %s\n", n.ID, n.Category, n.Strength, n.Status)
		}

		if len(g.Edges) > 0 {
			fmt.Println()
			for _, e := range g.Edges {
				fmt.Printf("%s <-> %s  (%s)\n", e.From, e.To, e.Relation)
			}
		}
		return nil
	},
}

var misconceptionsRemoveCmd = &cobra.Command{
	Use:   "remove <concept> <type>",
	Short: "Remove a misconception record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		concept, mtype := args[0], args[1]
		owner := ownerFlag(cmd)
		ctx := context.Background()

		rec, err := s.MisconceptionRepo().Find(ctx, owner, concept, mtype)
		if err != nil {
			return fmt.Errorf("find misconception: %w", err)
		}
		if rec == nil {
			return fmt.Errorf("no record for %s/%s", concept, mtype)
		}

		if err := s.MisconceptionRepo().Delete(ctx, owner, concept, mtype); err != nil {
			return fmt.Errorf("delete misconception: %w", err)
		}
		fmt.Printf("Removed %s/%s\n", concept, mtype)
		return nil
	},
}

func init() {
	misconceptionsCmd.AddCommand(misconceptionsListCmd)
	misconceptionsCmd.AddCommand(misconceptionsGraphCmd)
	misconceptionsCmd.AddCommand(misconceptionsRemoveCmd)
}
