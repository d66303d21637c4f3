package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aanishnithin07/Schedulyze/internal/export"
	"github.com/Aanishnithin07/Schedulyze/internal/planfile"
	"github.com/Aanishnithin07/Schedulyze/internal/scheduler"
	"github.com/Aanishnithin07/Schedulyze/pkg/model"
)

func newPlanCmd() *cobra.Command {
	var (
		flagStart string
		flagJSON  bool
		flagICS   string
		flagCSV   string
	)

	cmd := &cobra.Command{
		Use:   "plan <plan-file>",
		Short: "Generate a study schedule from a YAML plan file",
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

			start := plan.StartDate
			if flagStart != "" {
				start, err = time.Parse(planfile.DateLayout, flagStart)
				if err != nil {
					return fmt.Errorf("invalid --start date %q: want YYYY-MM-DD", flagStart)
				}
			}
			if start.IsZero() {
				start = time.Now()
			}

			planner := scheduler.NewPlanner(scheduler.DefaultScorer(), logger)
			schedule, err := planner.Generate(plan.Subjects, plan.Settings, start)
			if err != nil {
				return err
			}

			if flagICS != "" {
				if err := os.WriteFile(flagICS, export.ICS(schedule), 0o644); err != nil {
					return fmt.Errorf("write calendar file: %w", err)
				}
				fmt.Printf("Calendar written to %s\n", flagICS)
			}
			if flagCSV != "" {
				out, err := export.CSV(schedule)
				if err != nil {
					return err
				}
				if err := os.WriteFile(flagCSV, out, 0o644); err != nil {
					return fmt.Errorf("write CSV file: %w", err)
				}
				fmt.Printf("CSV written to %s\n", flagCSV)
			}

			if flagJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(schedule)
			}
			printSchedule(schedule)
			return nil
		},
	}

	cmd.Flags().StringVar(&flagStart, "start", "", "Schedule start date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "Print the schedule as JSON")
	cmd.Flags().StringVar(&flagICS, "ics", "", "Also write an iCalendar file to this path")
	cmd.Flags().StringVar(&flagCSV, "csv", "", "Also write a Google Calendar CSV to this path")

	return cmd
}

func printSchedule(schedule *model.Schedule) {
	if len(schedule.Entries) == 0 {
		fmt.Println("Nothing to schedule.")
		return
	}

	var lastDay string
	for _, entry := range schedule.Entries {
		day := entry.Date.Format("Mon 2006-01-02")
		if day != lastDay {
			if lastDay != "" {
				fmt.Println()
			}
			fmt.Println(day)
			lastDay = day
		}
		span := entry.Start.Format("15:04") + "-" + entry.End.Format("15:04")
		if entry.IsBreak() {
			fmt.Printf("  %s  %s\n", span, entry.Subject)
			continue
		}
		fmt.Printf("  %s  %s (%d min)\n", span, entry.Subject, entry.DurationMinutes)
	}

	s := schedule.Summary
	fmt.Println()
	fmt.Printf("%d sessions over %d day(s), %s study time\n", s.Sessions, s.Days, formatMinutes(s.StudyMinutes))

	for _, o := range schedule.Overflow {
		fmt.Printf("Did not fit: %s (%.1fh remaining)\n", o.Subject, o.RemainingHours())
	}
}

func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	if minutes%60 == 0 {
		return fmt.Sprintf("%dh", minutes/60)
	}
	return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
}
