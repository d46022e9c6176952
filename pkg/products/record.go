package products

import (
	"fmt"
	"time"
)

// endValidityLayout is the 11-digit YYYYDDDHHMM timestamp embedded in
// product filenames: 4-digit year, 3-digit day of year, hour, minute.
const endValidityLayout = "20060021504"

// Record is one parsed product catalog entry.
type Record struct {
	AnalysisCenter string        // 3-char producer code, e.g. "COD"
	ProjectType    string        // 3-char product family, e.g. "MGX"
	SolutionType   string        // 3-char latency class, e.g. "FIN"
	EndValidity    time.Time     // last instant the file is authoritative for
	Duration       time.Duration // forward extension past EndValidity
	FileCategory   string        // content kind, e.g. "CLK", "BIA", "SP3"
	RawName        string        // original filename, kept for diagnostics only
}

// Identity keys a record by its (center, project, solution) combination.
type Identity struct {
	AnalysisCenter string
	ProjectType    string
	SolutionType   string
}

// Combination is a (project, solution) pair under one analysis center.
type Combination struct {
	ProjectType  string
	SolutionType string
}

func (r Record) Identity() Identity {
	return Identity{
		AnalysisCenter: r.AnalysisCenter,
		ProjectType:    r.ProjectType,
		SolutionType:   r.SolutionType,
	}
}

// Reaches reports whether the record's data extends to t or beyond, i.e.
// EndValidity + Duration >= t.
func (r Record) Reaches(t time.Time) bool {
	return !r.EndValidity.Add(r.Duration).Before(t)
}

// Filename renders r back into the archive naming scheme. The version
// digit, sample rate and content code the parser ignores come out as
// fixed placeholders, so Parse(r.Filename()) reproduces r.
func (r Record) Filename() string {
	days := int(r.Duration / (24 * time.Hour))
	return fmt.Sprintf("%s0%s%s_%s_%02dD_01D_OSB.%s",
		r.AnalysisCenter, r.ProjectType, r.SolutionType,
		r.EndValidity.UTC().Format(endValidityLayout), days, r.FileCategory)
}
