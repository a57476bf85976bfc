package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dendrascience/dendra-huffman/huffman"
	"github.com/spf13/cobra"
)

// NewInspectCmd creates and returns the inspect subcommand for the huffpack CLI.
// It prints the header fields and code table of a container without decoding it.
func NewInspectCmd() *cobra.Command {
	var (
		asJSON    bool
		showTable bool
	)

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Show the header and code table of a container",
		Long: `Show the layout of a .bin container: padding count, header size,
payload size and, optionally, the code table. The payload is checked for
structural consistency but not decoded.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.OutOrStdout(), args[0], asJSON, showTable)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	cmd.Flags().BoolVarP(&showTable, "table", "t", false, "Print the code table")

	return cmd
}

func runInspect(w io.Writer, path string, asJSON, showTable bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	info, err := huffman.Inspect(data)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", path, err)
	}

	if asJSON {
		je := json.NewEncoder(w)
		je.SetIndent("", "  ")
		return je.Encode(info)
	}

	fmt.Fprintf(w, "Container: %s\n", path)
	fmt.Fprintf(w, "  Size: %d bytes\n", info.Size)
	fmt.Fprintf(w, "  Header: %d bytes\n", info.HeaderSize)
	fmt.Fprintf(w, "  Symbols: %d\n", len(info.Entries))
	fmt.Fprintf(w, "  Payload: %d bytes (%d bits, %d padding)\n", info.PayloadSize, info.PayloadBits, info.Padding)
	if showTable {
		for _, e := range info.Entries {
			fmt.Fprintf(w, "  0x%02x %-6s %s\n", e.Symbol, symbolLabel(e.Symbol), e.Codeword)
		}
	}
	return nil
}

// symbolLabel renders a byte for display: printable ASCII as itself,
// everything else quoted.
func symbolLabel(s huffman.Symbol) string {
	if s > 0x20 && s < 0x7f {
		return string(rune(s))
	}
	return strconv.QuoteRune(rune(s))
}
