package products

import "testing"

func TestSelectOptimalProjectPriorityIsOutermost(t *testing.T) {
	// FIN ranks highest among solutions but only exists under OPS; MGX
	// outranks OPS, so its best available solution (RAP) must win.
	coverage := Coverage{
		"COD": {
			{ProjectType: "MGX", SolutionType: "RAP"},
			{ProjectType: "MGX", SolutionType: "ULT"},
			{ProjectType: "OPS", SolutionType: "FIN"},
		},
	}
	table := PriorityTable{Projects: []string{"MGX", "OPS"}, Solutions: []string{"FIN", "RAP", "ULT"}}

	combo, ok := SelectOptimal(coverage, "COD", table)
	if !ok {
		t.Fatal("expected a selection")
	}
	if combo != (Combination{ProjectType: "MGX", SolutionType: "RAP"}) {
		t.Fatalf("expected (MGX, RAP), got %v", combo)
	}
}

func TestSelectOptimal(t *testing.T) {
	coverage := Coverage{
		"COD": {
			{ProjectType: "MGX", SolutionType: "FIN"},
			{ProjectType: "MGX", SolutionType: "RAP"},
		},
		"GFZ": {
			{ProjectType: "MGX", SolutionType: "ULT"},
		},
		"EMR": {
			{ProjectType: "OPS", SolutionType: "FIN"},
		},
	}

	tests := []struct {
		name   string
		center string
		table  PriorityTable
		want   Combination
		wantOK bool
	}{
		{"best available", "COD", DefaultPriorities(), Combination{"MGX", "FIN"}, true},
		{"falls through solutions", "GFZ", DefaultPriorities(), Combination{"MGX", "ULT"}, true},
		{"project not prioritized", "EMR", DefaultPriorities(), Combination{}, false},
		{"unknown center", "XXX", DefaultPriorities(), Combination{}, false},
		{"empty table", "COD", PriorityTable{}, Combination{}, false},
		{
			"custom ordering",
			"COD",
			PriorityTable{Projects: []string{"MGX"}, Solutions: []string{"RAP", "FIN"}},
			Combination{"MGX", "RAP"},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			combo, ok := SelectOptimal(coverage, tt.center, tt.table)
			if ok != tt.wantOK || combo != tt.want {
				t.Fatalf("SelectOptimal() = %v, %v; want %v, %v", combo, ok, tt.want, tt.wantOK)
			}
		})
	}
}
