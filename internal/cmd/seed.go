package cmd

import (
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/taigrr/colorhash"
)

// seedBuckets is the number of subdirectories generated files are spread over.
const seedBuckets = 16

// seedWords is the vocabulary for generated text. Repeated words give the
// files the skewed byte distribution real text has.
var seedWords = []string{
	"the", "of", "and", "a", "to", "in", "is", "you", "that", "it",
	"huffman", "prefix", "code", "symbol", "frequency", "tree", "bit", "byte",
	"compress", "decompress", "container", "padding", "payload", "table",
}

// NewSeedCmd creates and returns the seed subcommand for the huffpack CLI.
// It generates text files for exercising compress, decompress and validate.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		fileCount  int
		lines      int
		seed       uint64
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate sample text files",
		Long: `Generate sample text files for testing huffpack.

Files are named by UUID and spread over hashed bucket directories. Each file
starts with its UUID followed by lines of words drawn from a small vocabulary,
so the byte distribution is skewed the way natural text is.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(outputPath, fileCount, lines, seed, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&fileCount, "count", "c", 100, "Number of files to generate")
	cmd.Flags().IntVarP(&lines, "lines", "l", 50, "Lines of text per file")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "Seed for the word generator")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

func runSeed(outputPath string, fileCount, lines int, seed uint64, verbose bool) error {
	if verbose {
		fmt.Printf("Generating %d sample files in %s\n", fileCount, outputPath)
	}

	if err := os.MkdirAll(outputPath, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	bucketCounts := make(map[string]int)

	for i := range fileCount {
		id := uuid.New().String()
		bucket := fmt.Sprintf("%02d", colorhash.HashString(id)%seedBuckets)
		dir := filepath.Join(outputPath, bucket)
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Printf("Warning: Failed to create directory %s: %v", dir, err)
			continue
		}

		path := filepath.Join(dir, id+".txt")
		if err := os.WriteFile(path, []byte(sampleText(r, id, lines)), 0644); err != nil {
			log.Printf("Warning: Failed to write file %s: %v", path, err)
			continue
		}
		bucketCounts[bucket]++

		if verbose && (i+1)%100 == 0 {
			fmt.Printf("Created %d/%d files...\n", i+1, fileCount)
		}
	}

	if verbose {
		total := 0
		for _, n := range bucketCounts {
			total += n
		}
		fmt.Printf("Successfully created %d files\n", total)
		fmt.Printf("Files distributed across %d buckets\n", len(bucketCounts))
	}
	return nil
}

func sampleText(r *rand.Rand, id string, lines int) string {
	var sb strings.Builder
	sb.WriteString(id)
	sb.WriteByte('\n')
	for range lines {
		n := 4 + r.IntN(8)
		for w := range n {
			if w > 0 {
				sb.WriteByte(' ')
			}
			// squaring favors the front of the vocabulary
			x := r.Float64()
			sb.WriteString(seedWords[int(x*x*float64(len(seedWords)))])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
