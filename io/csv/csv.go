// Package csv reads and writes the CSV oligo container described in
// spec.md §6: one oligo per row, with optional advisory metadata columns.
// Classification and address extraction always come from the DNA itself,
// never from these columns — they're a convenience for humans reading
// the file, not an input to the codec.
//
// The teacher's own reader (io/csv/read.go) hand-splits each line on
// commas or spaces; this repo uses the standard library's encoding/csv
// instead, since no repo in the retrieval pack carries a third-party CSV
// library and quoted fields need real CSV parsing.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Record is one row of the container: the oligo sequence plus whatever
// advisory metadata accompanied it.
type Record struct {
	Sequence string
	Block    int // -1 if absent
	Pool     int // -1 if absent
	Address  int // -1 if absent
}

var header = []string{"sequence", "block", "pool", "address"}

// Read parses an oligo CSV container. A bare header-less file (just one
// sequence per line, or "sequence,block,pool,address" with header) is
// accepted; missing metadata columns are left as -1.
func Read(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadFrom(f)
}

// ReadFrom parses an oligo CSV container from an already-open reader.
func ReadFrom(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows may have 1..4 fields

	var records []Record
	first := true
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: %w", err)
		}

		if first {
			first = false
			if len(row) > 0 && (row[0] == "sequence" || row[0] == "Sequence") {
				continue // skip header
			}
		}

		rec := Record{Block: -1, Pool: -1, Address: -1}
		if len(row) > 0 {
			rec.Sequence = row[0]
		}
		if len(row) > 1 {
			rec.Block = atoiOr(row[1], -1)
		}
		if len(row) > 2 {
			rec.Pool = atoiOr(row[2], -1)
		}
		if len(row) > 3 {
			rec.Address = atoiOr(row[3], -1)
		}

		records = append(records, rec)
	}

	return records, nil
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

// Write emits an oligo CSV container with the full advisory header.
func Write(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteTo(f, records)
}

// WriteTo emits an oligo CSV container to an already-open writer.
func WriteTo(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("csv: %w", err)
	}

	for _, r := range records {
		row := []string{r.Sequence, itoaOrEmpty(r.Block), itoaOrEmpty(r.Pool), itoaOrEmpty(r.Address)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func itoaOrEmpty(n int) string {
	if n < 0 {
		return ""
	}
	return strconv.Itoa(n)
}
