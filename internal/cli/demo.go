package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aanishnithin07/Schedulyze/internal/scheduler"
	"github.com/Aanishnithin07/Schedulyze/pkg/model"
)

// demoSubjects returns a sample course load with deadlines relative to
// today, so the demo always produces a live-looking plan.
func demoSubjects(today time.Time) []model.Subject {
	return []model.Subject{
		{Name: "Calculus", Deadline: today.AddDate(0, 0, 7), HoursNeeded: 9, Difficulty: 5, Importance: 4},
		{Name: "Chemistry", Deadline: today.AddDate(0, 0, 10), HoursNeeded: 8, Difficulty: 4, Importance: 5},
		{Name: "History", Deadline: today.AddDate(0, 0, 14), HoursNeeded: 6, Difficulty: 2},
		{Name: "English Essay", Deadline: today.AddDate(0, 0, 21), HoursNeeded: 4, Difficulty: 3},
	}
}

func newDemoCmd() *cobra.Command {
	var (
		flagDays     int
		flagWeekends bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Generate a schedule for a built-in sample course load",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today := time.Now()
			subjects := demoSubjects(today)

			settings := model.DefaultSettings()
			settings.HorizonDays = flagDays
			settings.IncludeWeekends = flagWeekends

			scorer := scheduler.DefaultScorer()
			schedule, err := scheduler.NewPlanner(scorer, logger).Generate(subjects, settings, today)
			if err != nil {
				return err
			}

			printScores(scorer.Rank(subjects, today))
			fmt.Printf("\nSample plan starting %s:\n\n", today.Format("2006-01-02"))
			printSchedule(schedule)
			return nil
		},
	}

	cmd.Flags().IntVar(&flagDays, "days", 14, "Scheduling horizon in days")
	cmd.Flags().BoolVar(&flagWeekends, "weekends", false, "Include Saturdays and Sundays")

	return cmd
}
