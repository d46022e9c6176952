package products

import (
	"fmt"
	"time"
)

// day096 is 2025 day-of-year 096, i.e. 2025-04-06 00:00 UTC.
var day096 = time.Date(2025, time.April, 6, 0, 0, 0, 0, time.UTC)

func rec(center, project, solution string, end time.Time, days int, category string) Record {
	r := Record{
		AnalysisCenter: center,
		ProjectType:    project,
		SolutionType:   solution,
		EndValidity:    end,
		Duration:       time.Duration(days) * 24 * time.Hour,
		FileCategory:   category,
	}
	r.RawName = r.Filename()
	return r
}

func lines(records ...Record) []string {
	var out []string
	for i, r := range records {
		// Trailing metadata mimics a real listing rendering.
		out = append(out, fmt.Sprintf("%s 2025:04:17 10:38:56    %d.19KB", r.Filename(), 60+i))
	}
	return out
}
