package products

// PriorityTable holds the ordered preference lists consulted by
// SelectOptimal. It is data supplied by the caller rather than a
// process-wide constant, so deployments can tune the ordering (e.g. a
// future constellation-aware project ranking) without code changes.
type PriorityTable struct {
	Projects  []string
	Solutions []string
}

// DefaultPriorities prefers multi-GNSS products and final over rapid over
// ultra-rapid solutions.
func DefaultPriorities() PriorityTable {
	return PriorityTable{
		Projects:  []string{"MGX"},
		Solutions: []string{"FIN", "RAP", "ULT"},
	}
}

// SelectOptimal picks the preferred (project, solution) pair for one
// analysis center out of its covering combinations. Project priority is
// evaluated outermost: any solution under a higher-ranked project beats
// the top solution under a lower-ranked project. The boolean is false
// when nothing in the table intersects the center's coverage, which is a
// normal no-preference outcome, not an error.
func SelectOptimal(coverage Coverage, center string, table PriorityTable) (Combination, bool) {
	combos := coverage[center]
	for _, project := range table.Projects {
		available := make(map[string]struct{})
		for _, combo := range combos {
			if combo.ProjectType == project {
				available[combo.SolutionType] = struct{}{}
			}
		}
		for _, solution := range table.Solutions {
			if _, ok := available[solution]; ok {
				return Combination{ProjectType: project, SolutionType: solution}, true
			}
		}
	}
	return Combination{}, false
}
