package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/dendrascience/dendra-huffman/huffman"
	"github.com/spf13/cobra"
)

// NewDecompressCmd creates and returns the decompress subcommand for the huffpack CLI.
func NewDecompressCmd() *cobra.Command {
	var (
		outputDir string
		printText bool
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "decompress FILE...",
		Short: "Restore files from Huffman containers",
		Long: `Restore the original content of one or more .bin containers.

Each FILE is written as FILE-without-extension_decompressed.txt, either next to
the container or in --output-dir. A malformed or corrupt container aborts the
run without writing its output.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecompress(cmd.OutOrStdout(), args, outputDir, printText, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for the restored files (default: next to each container)")
	cmd.Flags().BoolVarP(&printText, "print", "p", false, "Also print the decoded text to stdout")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func runDecompress(w io.Writer, files []string, outputDir string, printText, verbose bool) error {
	if err := checkOutputs(files, func(in string) string { return DecompressedPath(in, outputDir) }); err != nil {
		return err
	}
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	if verbose {
		fmt.Printf("Decompressing %d files\n", len(files))
	}

	results, err := runBatch(files, func(path string) (fileResult, error) {
		return decompressFile(path, outputDir)
	})
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Printf("Decompressed %s -> %s\n", r.Input, r.Output)
		if verbose {
			fmt.Printf("  %d -> %d bytes\n", r.InputSize, r.OutputSize)
		}
		if printText {
			text, err := os.ReadFile(r.Output)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, string(text))
		}
	}
	return nil
}

func decompressFile(path, outputDir string) (fileResult, error) {
	container, err := os.ReadFile(path)
	if err != nil {
		return fileResult{}, err
	}

	data, err := huffman.Decompress(container)
	if err != nil {
		return fileResult{}, fmt.Errorf("decompress %s: %w", path, err)
	}

	out := DecompressedPath(path, outputDir)
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fileResult{}, err
	}
	return fileResult{
		Input:      path,
		Output:     out,
		InputSize:  len(container),
		OutputSize: len(data),
	}, nil
}
