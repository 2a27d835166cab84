// Package terminal provides raw-mode terminal access for gtlib.
//
// Features:
//   - Scoped session: non-canonical/no-echo input, restored on every exit path
//   - Direct ANSI output, one flushed escape sequence group per cell
//   - 8-color palette plus "default" (no color code emitted)
//   - Blocking key wait with timeout and escape-sequence arrow decoding
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
