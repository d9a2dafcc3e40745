package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lanl/oligofs/primer"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	poolsPool uint32
	poolsBlk  uint32
	poolsFwd  string
	poolsRev  string
)

var poolsCmd = &cobra.Command{
	Use:   "pools",
	Short: "manage the primer registry",
}

var poolsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "register a primer pair for a (pool, block)",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("registry.path")

		reg, err := primer.LoadRegistryCSV(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return err
			}
			reg = primer.NewRegistry()
		}

		if err := reg.Register(poolsPool, poolsBlk, poolsFwd, poolsRev); err != nil {
			return err
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}

		if err := primer.SaveRegistryCSV(path, reg); err != nil {
			return err
		}

		fmt.Printf("registered pool=%d block=%d forward=%s reverse=%s\n", poolsPool, poolsBlk, poolsFwd, poolsRev)
		return nil
	},
}

var poolsListCmd = &cobra.Command{
	Use:   "list",
	Short: "list registered primer pairs",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("registry.path")

		reg, err := primer.LoadRegistryCSV(path)
		if err != nil {
			return err
		}

		for _, e := range reg.Entries() {
			fmt.Printf("pool=%d block=%d forward=%s reverse=%s\n", e.Pool, e.Block, e.Forward, e.Reverse)
		}

		return nil
	},
}

func init() {
	poolsAddCmd.Flags().Uint32Var(&poolsPool, "pool", 0, "pool id")
	poolsAddCmd.Flags().Uint32Var(&poolsBlk, "block", 0, "block index")
	poolsAddCmd.Flags().StringVar(&poolsFwd, "p5", "", "5'-end (forward) primer")
	poolsAddCmd.Flags().StringVar(&poolsRev, "p3", "", "3'-end (reverse) primer")

	poolsCmd.AddCommand(poolsAddCmd)
	poolsCmd.AddCommand(poolsListCmd)
	rootCmd.AddCommand(poolsCmd)
}
