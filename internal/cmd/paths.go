package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrOutputCollision is returned when an output path would overwrite an input
// or another output of the same run.
var ErrOutputCollision = errors.New("output path collision")

const (
	// ContainerExt is the extension given to compressed files.
	ContainerExt = ".bin"
	// DecompressedSuffix is appended to the base name of restored files.
	DecompressedSuffix = "_decompressed.txt"
)

// CompressedPath returns where the container for input is written.
// An empty outputDir places it next to the input.
func CompressedPath(input, outputDir string) string {
	return outputPath(input, outputDir, ContainerExt)
}

// DecompressedPath returns where the restored content of container is written.
func DecompressedPath(container, outputDir string) string {
	return outputPath(container, outputDir, DecompressedSuffix)
}

func outputPath(input, outputDir, suffix string) string {
	dir, name := filepath.Split(input)
	name = strings.TrimSuffix(name, filepath.Ext(name)) + suffix
	if outputDir != "" {
		dir = outputDir
	}
	return filepath.Join(dir, name)
}

// checkOutputs maps every input to its output with outputFor and refuses runs
// where an output replaces an input or two inputs share an output.
func checkOutputs(inputs []string, outputFor func(string) string) error {
	inputSet := make(map[string]string, len(inputs))
	for _, in := range inputs {
		abs, err := filepath.Abs(in)
		if err != nil {
			return err
		}
		inputSet[abs] = in
	}

	owners := make(map[string]string, len(inputs))
	for _, in := range inputs {
		out := outputFor(in)
		abs, err := filepath.Abs(out)
		if err != nil {
			return err
		}
		if src, ok := inputSet[abs]; ok {
			return fmt.Errorf("%w: %s would overwrite input %s", ErrOutputCollision, out, src)
		}
		if prev, ok := owners[abs]; ok {
			return fmt.Errorf("%w: %s and %s both write %s", ErrOutputCollision, prev, in, out)
		}
		owners[abs] = in
	}
	return nil
}
