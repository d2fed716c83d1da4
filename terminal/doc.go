// @focus: #sys { term }
// Package terminal provides raw-mode terminal sessions with direct ANSI control.
//
// Features:
//   - Raw mode entry with exact restoration of the original termios on End
//   - Key decoding of control codes, Alt combinations and CSI/SS3 sequences
//     with xterm modifier parameters
//   - Synchronous or background-polled key input
//   - SGR renditions for base, 256-color and true color output
//   - SIGWINCH resize tracking as an edge-triggered flag
//   - Terminal restoration on termination signals and panics
//
// This package bypasses terminfo/termcap for output, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
