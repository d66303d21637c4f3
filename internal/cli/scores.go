package cli

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Aanishnithin07/Schedulyze/internal/planfile"
	"github.com/Aanishnithin07/Schedulyze/internal/scheduler"
	"github.com/Aanishnithin07/Schedulyze/pkg/model"
)

func newScoresCmd() *cobra.Command {
	var flagStart string

	cmd := &cobra.Command{
		Use:   "scores <plan-file>",
		Short: "Rank subjects by priority score without building a schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := planfile.Load(args[0])
			if err != nil {
				return err
			}
			plan, err := doc.Resolve()
			if err != nil {
				return err
			}

			today := plan.StartDate
			if flagStart != "" {
				today, err = time.Parse(planfile.DateLayout, flagStart)
				if err != nil {
					return fmt.Errorf("invalid --start date %q: want YYYY-MM-DD", flagStart)
				}
			}
			if today.IsZero() {
				today = time.Now()
			}

			scorer := scheduler.DefaultScorer()
			if errs := scheduler.NewValidator(scorer).ValidateSubjects(plan.Subjects); len(errs) > 0 {
				return model.NewInvalidSubjectError(errs...)
			}

			rows := scorer.Rank(plan.Subjects, today)
			if len(rows) == 0 {
				fmt.Println("No subjects to score.")
				return nil
			}

			printScores(rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagStart, "start", "", "Score as of this date (YYYY-MM-DD, default today)")

	return cmd
}

func printScores(rows []scheduler.ScoreBreakdown) {
	fmt.Printf("%-4s  %-20s  %-7s  %-7s  %-6s  %-12s  %s\n", "RANK", "SUBJECT", "SCORE", "URGENCY", "SHARE", "DEADLINE", "DUE")
	fmt.Printf("%-4s  %-20s  %-7s  %-7s  %-6s  %-12s  %s\n", "----", "-------", "-----", "-------", "-----", "--------", "---")
	for _, row := range rows {
		fmt.Printf("%-4d  %-20s  %-7.3f  %-7.3f  %5.1f%%  %-12s  %s\n",
			row.Rank, row.Subject, row.Score, row.Urgency, row.Share*100,
			row.Deadline.Format(planfile.DateLayout), humanize.Time(row.Deadline))
	}
}
