package cmd

import (
	"github.com/dendrascience/dendra-huffman/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the huffpack CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "huffpack",
		Short: "huffpack - A lossless Huffman file compressor",
		Long: `huffpack compresses files with a Huffman prefix code.

Each compressed file is a self-contained container holding the padding count,
the code table and the packed payload, so decompression needs nothing but the
container itself.

Use subcommands to perform different operations:
  - compress: Compress files into .bin containers
  - decompress: Restore files from .bin containers
  - inspect: Show the header and code table of a container
  - validate: Check every container under a directory
  - freq: Print the symbol frequencies of a file
  - seed: Generate sample text files`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	groupCodec := "codec"
	groupUtilities := "utilities"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupCodec,
		Title: "Codec Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	compressCmd := NewCompressCmd()
	decompressCmd := NewDecompressCmd()
	inspectCmd := NewInspectCmd()
	validateCmd := NewValidateCmd()
	freqCmd := NewFreqCmd()
	seedCmd := NewSeedCmd()
	versionCmd := NewVersionCmd()

	compressCmd.GroupID = groupCodec
	decompressCmd.GroupID = groupCodec
	inspectCmd.GroupID = groupUtilities
	validateCmd.GroupID = groupUtilities
	freqCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities
	versionCmd.GroupID = groupUtilities

	// Add subcommands
	rootCmd.AddCommand(compressCmd)
	rootCmd.AddCommand(decompressCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(freqCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// NewVersionCmd creates the version subcommand.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			version.PrintVersion(cmd.OutOrStdout(), "huffpack")
		},
	}
}
