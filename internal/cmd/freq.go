package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dendrascience/dendra-huffman/huffman"
	"github.com/spf13/cobra"
)

// NewFreqCmd creates and returns the freq subcommand for the huffpack CLI.
// It prints the symbol frequency table of a file.
func NewFreqCmd() *cobra.Command {
	var (
		path      string
		showCodes bool
	)

	cmd := &cobra.Command{
		Use:   "freq [PATH]",
		Short: "Print the symbol frequencies of a file",
		Long: `Print how often every byte occurs in a file, in first-seen order.

This is the table the code is derived from. With --codes the codeword each
symbol would receive is printed next to its count.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				path = args[0]
			}
			return runFreq(cmd.OutOrStdout(), path, showCodes)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "File to analyze")
	cmd.Flags().BoolVar(&showCodes, "codes", false, "Show the codeword assigned to each symbol")

	return cmd
}

func runFreq(w io.Writer, path string, showCodes bool) error {
	if path == "" {
		return errors.New("no file given")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	ft := huffman.CountFrequencies(data)
	var table *huffman.CodeTable
	if showCodes && ft.Len() > 0 {
		table, err = huffman.BuildCodeTable(ft)
		if err != nil {
			return err
		}
	}

	for s, n := range ft.All() {
		if table != nil {
			cw, _ := table.Codeword(s)
			fmt.Fprintf(w, "0x%02x %-6s %8d %s\n", s, symbolLabel(s), n, cw)
			continue
		}
		fmt.Fprintf(w, "0x%02x %-6s %8d\n", s, symbolLabel(s), n)
	}

	fmt.Fprintf(w, "Total symbols: %d\n", ft.Total())
	fmt.Fprintf(w, "Distinct symbols: %d\n", ft.Len())
	if table != nil {
		bits := table.WeightedLength(ft)
		fmt.Fprintf(w, "Payload bits: %d (%d bytes)\n", bits, (bits+7)/8)
	}
	return nil
}
