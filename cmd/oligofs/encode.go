package main

import (
	"fmt"
	"os"

	oligocsv "github.com/lanl/oligofs/io/csv"
	"github.com/lanl/oligofs/molfs"

	"github.com/spf13/cobra"
)

var (
	encodePool      uint32
	encodeBlockSize int
	encodeOut       string
)

var encodeCmd = &cobra.Command{
	Use:   "encode <file>",
	Short: "split a file into blocks and encode each as oligos",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		chunks := molfs.Split(data, encodeBlockSize)
		sess := molfs.NewSession(registry)

		var records []oligocsv.Record
		for _, chunk := range chunks {
			sess.SetCurrent(encodePool, uint32(chunk.Index))

			oligos, _, err := sess.Encode(chunk.Data)
			if err != nil {
				return fmt.Errorf("encoding block %d: %w", chunk.Index, err)
			}

			for addr, o := range oligos {
				records = append(records, oligocsv.Record{
					Sequence: o.String(),
					Block:    int(chunk.Index),
					Pool:     int(encodePool),
					Address:  addr,
				})
			}
		}

		out := encodeOut
		if out == "" {
			return oligocsv.WriteTo(os.Stdout, records)
		}
		return oligocsv.Write(out, records)
	},
}

func init() {
	encodeCmd.Flags().Uint32Var(&encodePool, "pool", 0, "pool id to encode into")
	encodeCmd.Flags().IntVar(&encodeBlockSize, "block-size", 12*1024, "block size in bytes")
	encodeCmd.Flags().StringVarP(&encodeOut, "out", "o", "", "output CSV path (default stdout)")

	rootCmd.AddCommand(encodeCmd)
}
