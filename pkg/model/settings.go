package model

import (
	"fmt"
	"time"
)

// Default schedule settings.
const (
	DefaultSessionMinutes     = 90
	DefaultBreakMinutes       = 15
	DefaultDailyBudgetMinutes = 480
	DefaultDayStart           = "09:00"
	DefaultHorizonDays        = 30
)

// ScheduleSettings controls how study time is carved into sessions: block
// and break lengths, the daily study budget, the start-of-day clock, and
// the horizon the scheduler may fill.
type ScheduleSettings struct {
	SessionMinutes     int    `json:"session_minutes"`
	BreakMinutes       int    `json:"break_minutes"`
	DailyBudgetMinutes int    `json:"daily_budget_minutes"`
	DayStart           string `json:"day_start"`
	IncludeWeekends    bool   `json:"include_weekends"`
	HorizonDays        int    `json:"horizon_days"`
}

// DefaultSettings returns the product defaults: 90-minute sessions with
// 15-minute breaks in an 8-hour study day starting at 09:00, weekends
// included, over a 30-day horizon.
func DefaultSettings() ScheduleSettings {
	return ScheduleSettings{
		SessionMinutes:     DefaultSessionMinutes,
		BreakMinutes:       DefaultBreakMinutes,
		DailyBudgetMinutes: DefaultDailyBudgetMinutes,
		DayStart:           DefaultDayStart,
		IncludeWeekends:    true,
		HorizonDays:        DefaultHorizonDays,
	}
}

// DayStartClock parses DayStart ("HH:MM", 24-hour) into hour and minute.
func (s ScheduleSettings) DayStartClock() (hour, minute int, err error) {
	t, err := time.Parse("15:04", s.DayStart)
	if err != nil {
		return 0, 0, fmt.Errorf("parse day_start %q: %w", s.DayStart, err)
	}
	return t.Hour(), t.Minute(), nil
}
