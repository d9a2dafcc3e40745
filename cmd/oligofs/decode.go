package main

import (
	"fmt"
	"os"
	"sort"

	oligocsv "github.com/lanl/oligofs/io/csv"
	"github.com/lanl/oligofs/io/fastq"
	"github.com/lanl/oligofs/molfs"

	"github.com/spf13/cobra"
)

var (
	decodeOut    string
	decodeFormat string
	decodePool   uint32
)

var decodeCmd = &cobra.Command{
	Use:   "decode <oligos-file>",
	Short: "classify, validate, and reassemble oligos back into a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var records []oligocsv.Record
		var err error

		switch decodeFormat {
		case "csv":
			records, err = oligocsv.Read(args[0])
			if err != nil {
				return err
			}
			for i := range records {
				if records[i].Block < 0 {
					records[i].Block = 0
				}
				if records[i].Pool < 0 {
					records[i].Pool = int(decodePool)
				}
			}
		case "fastq":
			fqRecords, err := fastq.Read(args[0])
			if err != nil {
				return err
			}
			records = make([]oligocsv.Record, len(fqRecords))
			for i, r := range fqRecords {
				records[i] = oligocsv.Record{Sequence: r.Sequence, Block: 0, Pool: int(decodePool), Address: -1}
			}
		default:
			return fmt.Errorf("unknown --format %q, want csv or fastq", decodeFormat)
		}

		byBlock := make(map[int][]oligocsv.Record)
		for _, rec := range records {
			byBlock[rec.Block] = append(byBlock[rec.Block], rec)
		}

		blockIndices := make([]int, 0, len(byBlock))
		for idx := range byBlock {
			blockIndices = append(blockIndices, idx)
		}
		sort.Ints(blockIndices)

		sess := molfs.NewSession(registry)

		numBlocks := 0
		if len(blockIndices) > 0 {
			numBlocks = blockIndices[len(blockIndices)-1] + 1
		}

		var results []molfs.BlockResult
		blockLengths := make([]int, numBlocks)
		for _, idx := range blockIndices {
			recs := byBlock[idx]
			pool := uint32(recs[0].Pool)
			sess.SetCurrent(pool, uint32(idx))

			candidates := make([]string, len(recs))
			for j, r := range recs {
				candidates[j] = r.Sequence
			}

			data, stats := sess.Decode(candidates, -1)
			results = append(results, molfs.BlockResult{BlockIndex: idx, Pool: pool, Data: data, Stats: stats})
			blockLengths[idx] = len(data)

			logReport(idx, pool, stats)
		}

		out, errs := molfs.Reassemble(results, blockLengths)
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, e)
		}

		if decodeOut == "" {
			_, err = os.Stdout.Write(out)
			return err
		}
		return os.WriteFile(decodeOut, out, 0o644)
	},
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeOut, "out", "o", "", "output file path (default stdout)")
	decodeCmd.Flags().StringVar(&decodeFormat, "format", "csv", "input file format: csv or fastq")
	decodeCmd.Flags().Uint32Var(&decodePool, "pool", 0, "pool id for records without a pool column (fastq input, or csv rows with no pool value)")
	rootCmd.AddCommand(decodeCmd)
}
