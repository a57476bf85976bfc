package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/dendrascience/dendra-huffman/huffman"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// ErrValidationFailed is returned when at least one container did not decode.
var ErrValidationFailed = errors.New("validation failed")

// NewValidateCmd creates and returns the validate subcommand for the huffpack CLI.
// It decodes every container under a directory and reports the failures.
func NewValidateCmd() *cobra.Command {
	var (
		storagePath string
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate containers for corruption",
		Long: `Validate every .bin container found under a directory.

Each container is fully decoded. Malformed headers, inconsistent code tables
and payloads that do not resolve to whole symbols are reported. The command
fails if any container is invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(storagePath, verbose)
		},
	}

	cmd.Flags().StringVarP(&storagePath, "path", "p", "", "Directory to validate (required)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("path")

	return cmd
}

func runValidate(storagePath string, verbose bool) error {
	if _, err := os.Stat(storagePath); err != nil {
		return fmt.Errorf("storage directory: %w", err)
	}

	if verbose {
		fmt.Printf("Validating containers under %s\n", storagePath)
	}

	var containers []string
	err := filepath.WalkDir(storagePath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ContainerExt) {
			return nil
		}
		containers = append(containers, path)
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk storage directory: %w", err)
	}

	// every container is checked; failures are collected, not returned
	errs := make([]error, len(containers))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, path := range containers {
		g.Go(func() error {
			errs[i] = validateContainer(path)
			return nil
		})
	}
	g.Wait()

	totalContainers := len(containers)
	var totalErrors int
	for i, path := range containers {
		if verbose {
			fmt.Printf("Validating container: %s\n", path)
		}
		if errs[i] != nil {
			fmt.Printf("Container %s is invalid:\n  - %v\n", path, errs[i])
			totalErrors++
		} else if verbose {
			fmt.Printf("Container %s is valid\n", path)
		}
	}

	fmt.Printf("\nValidation complete:\n")
	fmt.Printf("  Containers checked: %d\n", totalContainers)
	fmt.Printf("  Total errors: %d\n", totalErrors)

	if totalErrors > 0 {
		return fmt.Errorf("%w: %d of %d containers", ErrValidationFailed, totalErrors, totalContainers)
	}
	return nil
}

func validateContainer(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = huffman.Decompress(data)
	return err
}
