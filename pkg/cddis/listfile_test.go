package cddis

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestListFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "CDDIS.list")

	in := []string{
		"COD0MGXFIN_20250960000_01D_01D_OSB.BIA.gz",
		"not-a-product.txt", // dropped on write
		"COD0MGXFIN_20250960000_01D_01D_OSB.CLK.gz",
	}
	if err := WriteListFile(path, in); err != nil {
		t.Fatal(err)
	}

	lines, err := ReadListFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 replay lines, got %d: %v", len(lines), lines)
	}
	want := "COD0MGXFIN_20250960000_01D_01D_OSB.BIA.gz 2025-04-06 00:00:00"
	if lines[0] != want {
		t.Fatalf("unexpected replay line.\nwant: %q\ngot:  %q", want, lines[0])
	}
	if !strings.HasPrefix(lines[1], "COD0MGXFIN_20250960000_01D_01D_OSB.CLK.gz ") {
		t.Fatalf("unexpected second line: %q", lines[1])
	}
}

func TestReadListFileMissing(t *testing.T) {
	if _, err := ReadListFile(filepath.Join(t.TempDir(), "nope.list")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
