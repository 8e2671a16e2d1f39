// Package terminal provides direct ANSI terminal output for cell frames.
//
// Features:
//   - True color (24-bit) and 256-color palette support
//   - Diff engine over row-major cell frames with SGR and cursor tracking
//   - One byte buffer per frame, never partial writes
//   - Raw mode tty backend with SIGWINCH resize detection
//   - Headless capture sink for tests and snapshots
//   - Key decoding for raw-mode input
//   - Clean terminal restoration on exit/panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
