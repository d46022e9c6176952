package cmd

import (
	"reflect"
	"testing"
	"time"
)

func TestParseWindow(t *testing.T) {
	window, err := parseWindow("2025-07-05_00:00:00", "2025-07-05_23:59:30")
	if err != nil {
		t.Fatal(err)
	}
	if want := time.Date(2025, time.July, 5, 0, 0, 0, 0, time.UTC); !window.Start.Equal(want) {
		t.Fatalf("start = %s, want %s", window.Start, want)
	}
	if want := time.Date(2025, time.July, 5, 23, 59, 30, 0, time.UTC); !window.End.Equal(want) {
		t.Fatalf("end = %s, want %s", window.End, want)
	}
}

func TestParseWindowErrors(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
	}{
		{"bad start format", "2025-07-05T00:00:00", "2025-07-05_23:59:30"},
		{"bad end format", "2025-07-05_00:00:00", "tomorrow"},
		{"empty start", "", "2025-07-05_23:59:30"},
		{"inverted", "2025-07-06_00:00:00", "2025-07-05_00:00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseWindow(tt.start, tt.end); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestLoadPrioritiesOverride(t *testing.T) {
	table, err := loadPriorities(`{"projects":["OPS","MGX"],"solutions":["RAP"]}`)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(table.Projects, []string{"OPS", "MGX"}) {
		t.Fatalf("unexpected projects: %v", table.Projects)
	}
	if !reflect.DeepEqual(table.Solutions, []string{"RAP"}) {
		t.Fatalf("unexpected solutions: %v", table.Solutions)
	}
}

func TestLoadPrioritiesInvalidJSON(t *testing.T) {
	if _, err := loadPriorities(`{"projects":`); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}
