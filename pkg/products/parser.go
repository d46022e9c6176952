package products

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// filenamePattern matches the archive product naming scheme:
//
//	AAA0PPPSSS_YYYYDDDHHMM_DDu_RRu_xxx.CCC[.ext]
//
// Capture order: analysis center, project type, solution type, end
// validity, duration digits, sample-rate digits, file category. The 4th
// filename character is version padding and the three characters before
// the category are a content code; both are ignored, as is any trailing
// compression extension.
var filenamePattern = regexp.MustCompile(`^([A-Z0-9]{3})[0-9]([A-Z]{3})([A-Z]{3})_(\d{11})_([0-9]{2})._([0-9]{2})._.{3}\.([A-Z0-9]+)`)

// Parse decodes one catalog listing line into a Record. Only the first
// whitespace-delimited token is considered; trailing size and date stamps
// rendered by listing sources are ignored. A line that does not match the
// naming scheme, or whose embedded timestamp does not decode, is rejected
// rather than erred: the second return is false and no record exists.
func Parse(line string) (Record, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Record{}, false
	}
	m := filenamePattern.FindStringSubmatch(fields[0])
	if m == nil {
		return Record{}, false
	}
	end, err := time.Parse(endValidityLayout, m[4])
	if err != nil {
		// Undecodable day-of-year or time fields.
		return Record{}, false
	}
	days, err := strconv.Atoi(m[5])
	if err != nil {
		return Record{}, false
	}
	return Record{
		AnalysisCenter: m[1],
		ProjectType:    m[2],
		SolutionType:   m[3],
		EndValidity:    end,
		// The duration unit letter is accepted but not interpreted:
		// archive durations are day counts in current data.
		Duration:     time.Duration(days) * 24 * time.Hour,
		FileCategory: m[7],
		RawName:      fields[0],
	}, true
}

// ParseAll parses a batch of listing lines, dropping the ones Parse
// rejects. The rejected count is returned alongside so callers can watch
// for data-quality regressions without failing the batch. Blank lines are
// skipped and not counted.
func ParseAll(lines []string) (records []Record, rejected int) {
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, ok := Parse(line)
		if !ok {
			rejected++
			continue
		}
		records = append(records, r)
	}
	return records, rejected
}
