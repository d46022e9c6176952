package cddis

import (
	"bufio"
	"fmt"
	"os"

	"github.com/nocookie2/gnsscope/pkg/products"
)

// WriteListFile persists listing lines to a flat replay file, one
// filename and its decoded end validity per line, no header or footer.
// Entries that don't carry a decodable product name are skipped, so a
// replay file only ever contains well-formed entries.
func WriteListFile(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		r, ok := products.Parse(line)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s %s\n", r.RawName, r.EndValidity.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

// ReadListFile loads a flat replay file written by WriteListFile, or any
// listing dump in the same one-entry-per-line format.
func ReadListFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
