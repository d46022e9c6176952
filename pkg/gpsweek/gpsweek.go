// Package gpsweek converts between calendar timestamps and GPS week
// numbers, the unit the product archive partitions its listings by.
package gpsweek

import "time"

// Epoch is the first instant of GPS week zero.
var Epoch = time.Date(1980, time.January, 6, 0, 0, 0, 0, time.UTC)

const week = 7 * 24 * time.Hour

// FromTime returns the GPS week number containing t.
func FromTime(t time.Time) int {
	return int(t.Sub(Epoch) / week)
}

// Start returns the first instant of the given GPS week.
func Start(n int) time.Time {
	return Epoch.Add(time.Duration(n) * week)
}

// Range returns every GPS week touched by the span from start to end,
// both bounds inclusive. Start and end in the same week yield that single
// week.
func Range(start, end time.Time) []int {
	first, last := FromTime(start), FromTime(end)
	weeks := make([]int, 0, last-first+1)
	for n := first; n <= last; n++ {
		weeks = append(weeks, n)
	}
	return weeks
}
