package products

import "time"

// Catalog is a collection of parsed product records. It is built once per
// resolution request and treated as immutable afterwards: queries group
// and filter but never mutate, so a catalog may be shared by concurrent
// resolutions.
type Catalog struct {
	records  []Record
	rejected int
}

// BuildCatalog parses every line in the batch, discarding lines the
// parser rejects. An empty batch is not an error; it yields an empty
// catalog, which later resolves to no coverage.
func BuildCatalog(lines []string) *Catalog {
	records, rejected := ParseAll(lines)
	return &Catalog{records: records, rejected: rejected}
}

// Len returns the number of accepted records.
func (c *Catalog) Len() int { return len(c.records) }

// Rejected returns how many non-blank lines failed to parse during build.
func (c *Catalog) Rejected() int { return c.rejected }

// Records returns the accepted records in insertion order. The order
// carries no meaning; every query re-groups.
func (c *Catalog) Records() []Record { return c.records }

// GroupByIdentity groups the records by (center, project, solution).
func (c *Catalog) GroupByIdentity() map[Identity][]Record {
	groups := make(map[Identity][]Record)
	for _, r := range c.records {
		id := r.Identity()
		groups[id] = append(groups[id], r)
	}
	return groups
}

// CoveringOrPast returns the records whose end validity plus duration
// reaches t or beyond. The resolver's upper-bound pass runs on this set.
func (c *Catalog) CoveringOrPast(t time.Time) []Record {
	var out []Record
	for _, r := range c.records {
		if r.Reaches(t) {
			out = append(out, r)
		}
	}
	return out
}

// SettledBy returns the records whose end validity is at or before t. The
// resolver's lower-bound gap check runs on this set.
func (c *Catalog) SettledBy(t time.Time) []Record {
	var out []Record
	for _, r := range c.records {
		if !r.EndValidity.After(t) {
			out = append(out, r)
		}
	}
	return out
}
