package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// The CSV backend keeps each collection in one flat row-oriented file under a
// data directory, mirroring the deployment this system replaces. Every write
// rewrites the whole table; every read loads it in full. Load failures (file
// missing, unreadable, malformed rows) degrade to an empty collection: "no
// data yet" and "corrupt file" are treated identically. Save failures are
// always returned to the caller.

func readCSVTable(path string, wantColumns int) [][]string {
	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("[repository][csv] unreadable table %s, starting empty: %v", path, err)
		}
		return nil
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		log.Printf("[repository][csv] corrupt table %s, starting empty: %v", path, err)
		return nil
	}
	if len(rows) <= 1 {
		return nil
	}

	// Skip the header; drop rows with the wrong arity instead of failing the
	// whole table.
	records := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != wantColumns {
			log.Printf("[repository][csv] skipping malformed row in %s (%d columns)", path, len(row))
			continue
		}
		records = append(records, row)
	}
	return records
}

func writeCSVTable(path string, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write table %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write table %s: %w", path, err)
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("write table %s: %w", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write table %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write table %s: %w", path, err)
	}
	return nil
}
