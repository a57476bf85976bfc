// Package version reports build metadata for huffpack.
//
// Version, Commit and Date are plain string variables meant to be set at link
// time:
//
//	go build -ldflags "-X github.com/dendrascience/dendra-huffman/version.Version=v0.3.0 \
//	  -X github.com/dendrascience/dendra-huffman/version.Commit=abc1234"
//
// When they are left at their defaults, GetVersion, GetCommit and GetBuildDate
// fall back to the module version and vcs settings recorded by the go tool
// (debug.ReadBuildInfo). GetInfo collects everything into an Info, FormatFull
// renders an Info on one line, and PrintVersion writes that line to a writer.
package version
