package cmd

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestCompressedPath(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		outputDir string
		expected  string
	}{
		{
			name:     "text file next to input",
			input:    "/tmp/data/notes.txt",
			expected: "/tmp/data/notes.bin",
		},
		{
			name:     "no extension",
			input:    "/tmp/data/README",
			expected: "/tmp/data/README.bin",
		},
		{
			name:     "only the last extension is replaced",
			input:    "/tmp/data/archive.tar.gz",
			expected: "/tmp/data/archive.tar.bin",
		},
		{
			name:     "relative path",
			input:    "notes.txt",
			expected: "notes.bin",
		},
		{
			name:      "output directory",
			input:     "/tmp/data/notes.txt",
			outputDir: "/tmp/out",
			expected:  "/tmp/out/notes.bin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CompressedPath(filepath.FromSlash(tt.input), filepath.FromSlash(tt.outputDir))
			if result != filepath.FromSlash(tt.expected) {
				t.Errorf("CompressedPath(%q, %q) = %q, expected %q", tt.input, tt.outputDir, result, tt.expected)
			}
		})
	}
}

func TestDecompressedPath(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		outputDir string
		expected  string
	}{
		{
			name:     "container next to input",
			input:    "/tmp/data/notes.bin",
			expected: "/tmp/data/notes_decompressed.txt",
		},
		{
			name:      "output directory",
			input:     "/tmp/data/notes.bin",
			outputDir: "restored",
			expected:  "restored/notes_decompressed.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DecompressedPath(filepath.FromSlash(tt.input), filepath.FromSlash(tt.outputDir))
			if result != filepath.FromSlash(tt.expected) {
				t.Errorf("DecompressedPath(%q, %q) = %q, expected %q", tt.input, tt.outputDir, result, tt.expected)
			}
		})
	}
}

func TestCheckOutputs(t *testing.T) {
	tests := []struct {
		name      string
		inputs    []string
		outputDir string
		collides  bool
	}{
		{
			name:   "distinct outputs",
			inputs: []string{"/tmp/data/a.txt", "/tmp/data/b.txt"},
		},
		{
			name:     "output replaces its own input",
			inputs:   []string{"/tmp/data/data.bin"},
			collides: true,
		},
		{
			name:     "two inputs share an output",
			inputs:   []string{"/tmp/data/notes.txt", "/tmp/data/notes.md"},
			collides: true,
		},
		{
			name:      "output directory merges same base names",
			inputs:    []string{"/tmp/one/notes.txt", "/tmp/two/notes.txt"},
			outputDir: "/tmp/out",
			collides:  true,
		},
		{
			name:     "output replaces another input",
			inputs:   []string{"/tmp/data/a.txt", "/tmp/data/a.bin"},
			collides: true,
		},
		{
			name:      "output directory keeps a .bin input safe",
			inputs:    []string{"/tmp/data/data.bin"},
			outputDir: "/tmp/out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var inputs []string
			for _, in := range tt.inputs {
				inputs = append(inputs, filepath.FromSlash(in))
			}
			outputDir := filepath.FromSlash(tt.outputDir)
			err := checkOutputs(inputs, func(in string) string { return CompressedPath(in, outputDir) })
			if got := errors.Is(err, ErrOutputCollision); got != tt.collides {
				t.Errorf("checkOutputs(%v) = %v, want collision %v", tt.inputs, err, tt.collides)
			}
		})
	}
}
