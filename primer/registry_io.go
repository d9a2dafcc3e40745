package primer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// LoadRegistryCSV builds a Registry from a "pool,block,forward,reverse"
// CSV file, registered in file order so the classifier's tie-break stays
// reproducible across runs.
func LoadRegistryCSV(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadRegistryFrom(f)
}

// LoadRegistryFrom parses registrations from an already-open reader.
func LoadRegistryFrom(r io.Reader) (*Registry, error) {
	reg := NewRegistry()

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 4

	first := true
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("primer: registry csv: %w", err)
		}

		if first {
			first = false
			if row[0] == "pool" || row[0] == "Pool" {
				continue
			}
		}

		pool, err := strconv.ParseUint(row[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("primer: registry csv: invalid pool %q", row[0])
		}
		blk, err := strconv.ParseUint(row[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("primer: registry csv: invalid block %q", row[1])
		}

		if err := reg.Register(uint32(pool), uint32(blk), row[2], row[3]); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

// SaveRegistryCSV writes the registry's live entries out in registration
// order.
func SaveRegistryCSV(path string, reg *Registry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"pool", "block", "forward", "reverse"}); err != nil {
		return err
	}

	for i, e := range reg.entries {
		if reg.byKey[e.Key] != i {
			continue // superseded by a later registration
		}
		row := []string{
			strconv.FormatUint(uint64(e.Pool), 10),
			strconv.FormatUint(uint64(e.Block), 10),
			e.Forward,
			e.Reverse,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
