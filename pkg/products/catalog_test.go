package products

import (
	"testing"
	"time"
)

func TestBuildCatalogDropsMalformedLines(t *testing.T) {
	batch := append(lines(
		rec("COD", "MGX", "FIN", day096, 1, "BIA"),
		rec("COD", "MGX", "FIN", day096, 1, "CLK"),
	), "SOME_RANDOM_FILE.html", "gnss/")

	c := BuildCatalog(batch)
	if c.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", c.Len())
	}
	if c.Rejected() != 2 {
		t.Fatalf("expected 2 rejects, got %d", c.Rejected())
	}
}

func TestBuildCatalogEmptyBatch(t *testing.T) {
	c := BuildCatalog(nil)
	if c.Len() != 0 || c.Rejected() != 0 {
		t.Fatalf("empty batch should yield empty catalog, got len=%d rejected=%d", c.Len(), c.Rejected())
	}
}

func TestGroupByIdentity(t *testing.T) {
	c := BuildCatalog(lines(
		rec("COD", "MGX", "FIN", day096, 1, "BIA"),
		rec("COD", "MGX", "FIN", day096.Add(-24*time.Hour), 1, "BIA"),
		rec("COD", "MGX", "RAP", day096, 1, "BIA"),
		rec("GFZ", "MGX", "FIN", day096, 1, "BIA"),
	))

	groups := c.GroupByIdentity()
	if len(groups) != 3 {
		t.Fatalf("expected 3 identities, got %d", len(groups))
	}
	codFin := Identity{AnalysisCenter: "COD", ProjectType: "MGX", SolutionType: "FIN"}
	if got := len(groups[codFin]); got != 2 {
		t.Fatalf("expected 2 records for %v, got %d", codFin, got)
	}
}

func TestCatalogWindowedFilters(t *testing.T) {
	c := BuildCatalog(lines(
		rec("COD", "MGX", "FIN", day096, 1, "BIA"),                    // reaches day096+1d
		rec("COD", "MGX", "FIN", day096.Add(-48*time.Hour), 1, "BIA"), // reaches day096-1d
	))

	if got := len(c.CoveringOrPast(day096.Add(24 * time.Hour))); got != 1 {
		t.Fatalf("CoveringOrPast at exact reach: expected 1 record, got %d", got)
	}
	if got := len(c.CoveringOrPast(day096.Add(24*time.Hour + time.Minute))); got != 0 {
		t.Fatalf("CoveringOrPast past reach: expected 0 records, got %d", got)
	}
	if got := len(c.SettledBy(day096)); got != 2 {
		t.Fatalf("SettledBy at boundary: expected 2 records, got %d", got)
	}
	if got := len(c.SettledBy(day096.Add(-time.Minute))); got != 1 {
		t.Fatalf("SettledBy before boundary: expected 1 record, got %d", got)
	}
}
