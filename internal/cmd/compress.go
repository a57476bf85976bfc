package cmd

import (
	"bytes"
	"fmt"
	"os"
	"unicode"

	"github.com/dendrascience/dendra-huffman/huffman"
	"github.com/dendrascience/dendra-huffman/internal/config"
	"github.com/spf13/cobra"
)

// NewCompressCmd creates and returns the compress subcommand for the huffpack CLI.
// Files given as arguments are compressed; with no arguments the file named by
// the configuration file is used.
func NewCompressCmd() *cobra.Command {
	var (
		configPath string
		outputDir  string
		rstrip     bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "compress [FILE...]",
		Short: "Compress files into Huffman containers",
		Long: `Compress one or more files into self-contained Huffman containers.

Each FILE is written as FILE-without-extension.bin, either next to the input or
in --output-dir. When no FILE is given, the input is read from the
"filepath_text" key of the configuration file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files := args
			if len(files) == 0 {
				cfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				files = []string{cfg.FilepathText}
				if outputDir == "" {
					outputDir = cfg.OutputDir
				}
			}
			return runCompress(files, outputDir, rstrip, verbose)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Configuration file used when no FILE is given")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for the .bin files (default: next to each input)")
	cmd.Flags().BoolVar(&rstrip, "rstrip", false, "Strip trailing whitespace before compressing (not lossless)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func runCompress(files []string, outputDir string, rstrip, verbose bool) error {
	if err := checkOutputs(files, func(in string) string { return CompressedPath(in, outputDir) }); err != nil {
		return err
	}
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	if verbose {
		fmt.Printf("Compressing %d files\n", len(files))
	}

	results, err := runBatch(files, func(path string) (fileResult, error) {
		return compressFile(path, outputDir, rstrip)
	})
	if err != nil {
		return err
	}

	for _, r := range results {
		fmt.Printf("Compressed %s -> %s\n", r.Input, r.Output)
		if verbose {
			fmt.Printf("  %d -> %d bytes (%.1f%%)\n", r.InputSize, r.OutputSize, ratio(r.OutputSize, r.InputSize))
		}
	}
	return nil
}

func compressFile(path, outputDir string, rstrip bool) (fileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileResult{}, err
	}
	if rstrip {
		data = bytes.TrimRightFunc(data, unicode.IsSpace)
	}

	container, err := huffman.Compress(data)
	if err != nil {
		return fileResult{}, fmt.Errorf("compress %s: %w", path, err)
	}

	out := CompressedPath(path, outputDir)
	if err := os.WriteFile(out, container, 0644); err != nil {
		return fileResult{}, err
	}
	return fileResult{
		Input:      path,
		Output:     out,
		InputSize:  len(data),
		OutputSize: len(container),
	}, nil
}

// ratio returns part as a percentage of whole.
func ratio(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return 100 * float64(part) / float64(whole)
}
