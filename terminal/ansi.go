// @focus: #terminal { ansi }
package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments
var (
	// CSI sequences
	csi      = []byte("\x1b[")
	csiClear = []byte("\x1b[2J")
	csiHome  = []byte("\x1b[H")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0  = []byte("\x1b[0m")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// OSC window title: ESC ] 2 ; title BEL
	oscTitle = []byte("\x1b]2;")
	bel      = byte(0x07)
)

// writeInt writes a non-negative integer without allocation
// Optimized for terminal values (0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [20]byte
	i := len(buf) - 1
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// writeCursorPos writes cursor positioning sequence (0-indexed input)
func writeCursorPos(w *bufio.Writer, row, col int) {
	w.Write(csi)
	writeInt(w, row+1)
	w.WriteByte(';')
	writeInt(w, col+1)
	w.WriteByte('H')
}

// writeResizeRequest writes the xterm window manipulation request CSI 8 ; rows ; cols t
func writeResizeRequest(w *bufio.Writer, rows, cols int) {
	w.Write(csi)
	w.WriteByte('8')
	w.WriteByte(';')
	writeInt(w, rows)
	w.WriteByte(';')
	writeInt(w, cols)
	w.WriteByte('t')
}

// writeTitle writes the OSC window title sequence
func writeTitle(w *bufio.Writer, title string) {
	w.Write(oscTitle)
	w.WriteString(title)
	w.WriteByte(bel)
}
