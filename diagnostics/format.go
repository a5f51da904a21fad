// Package diagnostics holds the human-facing reporting helpers shared by
// cmd/octofold: byte/count formatting and structured op dumps.
package diagnostics

import "github.com/dustin/go-humanize"

// TapeSize renders a cell count as a human-readable byte size; the CLI
// uses it for the source size in its verbose trace.
func TapeSize(cells int) string {
	return humanize.Bytes(uint64(cells))
}

// OpCount renders an instruction count with thousands separators; the
// CLI uses it for the linearized op count in its verbose trace.
func OpCount(n int) string {
	return humanize.Comma(int64(n))
}
