package system

import (
	"time"

	"mlb-stats-service/internal/timeutil"
)

// Service answers the date/time utility operations agents use to anchor
// "current season" style questions.
type Service struct {
	now func() time.Time
}

func NewService(now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{now: now}
}

// CurrentDate returns the local date as YYYY-MM-DD.
func (s *Service) CurrentDate() map[string]any {
	return map[string]any{"current_date": timeutil.FormatDate(s.now())}
}

// CurrentTime returns the local time as HH:MM:SS.
func (s *Service) CurrentTime() map[string]any {
	return map[string]any{"current_time": timeutil.FormatClock(s.now())}
}
