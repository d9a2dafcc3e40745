// Package fastq reads the FASTQ oligo container described in spec.md §6:
// standard 4-line records, sequence line consumed, quality line parsed
// but otherwise ignored by the core (a future consensus layer would use
// it — spec.md's Non-goals exclude building that layer here).
//
// Adapted directly from the teacher's io/fastq/read.go scanner loop,
// including transparent gzip support.
package fastq

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one FASTQ entry.
type Record struct {
	ID       string
	Sequence string
	Quality  []byte // Phred scores, quality char minus '!'
}

// Read parses a FASTQ file, transparently gunzipping if it's gzipped.
func Read(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if gz, gzErr := gzip.NewReader(f); gzErr == nil {
		defer gz.Close()
		r = gz
	} else if _, seekErr := f.Seek(0, io.SeekStart); seekErr != nil {
		return nil, seekErr
	}

	return ReadFrom(r)
}

// ReadFrom parses FASTQ records from an already-open, already-decompressed
// reader.
func ReadFrom(r io.Reader) ([]Record, error) {
	var records []Record

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		idLine := sc.Text()
		if idLine == "" {
			continue
		}
		if !strings.HasPrefix(idLine, "@") {
			return nil, fmt.Errorf("fastq: expected '@id' line, got %q", idLine)
		}

		if !sc.Scan() {
			return nil, errors.New("fastq: expecting sequence line")
		}
		seq := sc.Text()

		if !sc.Scan() {
			return nil, errors.New("fastq: expecting '+' line")
		}

		if !sc.Scan() {
			return nil, errors.New("fastq: expecting quality line")
		}
		qualLine := sc.Text()
		if len(qualLine) != len(seq) {
			return nil, fmt.Errorf("fastq: sequence/quality length mismatch: %d vs %d", len(seq), len(qualLine))
		}

		qual := make([]byte, len(qualLine))
		for i := 0; i < len(qualLine); i++ {
			qual[i] = qualLine[i] - '!'
		}

		records = append(records, Record{ID: strings.TrimPrefix(idLine, "@"), Sequence: seq, Quality: qual})
	}

	return records, sc.Err()
}

// Write emits a FASTQ file using each record's Quality; a record with nil
// Quality gets a flat Phred 40 on every base, since the encoder has no
// sequencing-error model to draw qualities from.
func Write(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteTo(f, records)
}

func WriteTo(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range records {
		qual := r.Quality
		if qual == nil {
			qual = make([]byte, len(r.Sequence))
			for i := range qual {
				qual[i] = 40 // Phred 40, a conventional "high confidence" placeholder
			}
		}

		fmt.Fprintf(bw, "@%s\n%s\n+\n", r.ID, r.Sequence)
		qline := make([]byte, len(qual))
		for i, q := range qual {
			qline[i] = q + '!'
		}
		bw.Write(qline)
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
