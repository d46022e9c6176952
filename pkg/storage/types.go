package storage

import "time"

// WeekStat summarizes one cached GPS week.
type WeekStat struct {
	Week      int
	FetchedAt time.Time
	LineCount int
}
