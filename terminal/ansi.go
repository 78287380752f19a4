package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csi      = []byte("\x1b[")
	csiClear = []byte("\x1b[2J\x1b[H")
	csiSGR0  = []byte("\x1b[0m")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Color prefixes
	csiFg256 = []byte("\x1b[38;5;") // followed by N;m
	csiBg256 = []byte("\x1b[48;5;") // followed by N;m
	csiFgRGB = []byte("\x1b[38;2;") // followed by R;G;B;m
	csiBgRGB = []byte("\x1b[48;2;") // followed by R;G;B;m
)

// writeInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
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

// WriteCursorPos writes ESC[row;colH. Coordinates are emitted as given, negatives clamp to 0
func WriteCursorPos(w *bufio.Writer, row, col int) {
	w.Write(csi)
	writeInt(w, row)
	w.WriteByte(';')
	writeInt(w, col)
	w.WriteByte('H')
}

// WriteFg writes a complete foreground color sequence for the given mode
func WriteFg(w *bufio.Writer, c RGB, mode ColorMode) {
	if mode == ColorModeTrueColor {
		w.Write(csiFgRGB)
		writeRGB(w, c)
		return
	}
	w.Write(csiFg256)
	writeInt(w, int(RGBTo256(c)))
	w.WriteByte('m')
}

// WriteBg writes a complete background color sequence for the given mode
func WriteBg(w *bufio.Writer, c RGB, mode ColorMode) {
	if mode == ColorModeTrueColor {
		w.Write(csiBgRGB)
		writeRGB(w, c)
		return
	}
	w.Write(csiBg256)
	writeInt(w, int(RGBTo256(c)))
	w.WriteByte('m')
}

func writeRGB(w *bufio.Writer, c RGB) {
	writeInt(w, int(c.R))
	w.WriteByte(';')
	writeInt(w, int(c.G))
	w.WriteByte(';')
	writeInt(w, int(c.B))
	w.WriteByte('m')
}

// WriteReset writes the SGR reset sequence
func WriteReset(w *bufio.Writer) {
	w.Write(csiSGR0)
}

// WriteClear writes clear-screen followed by cursor home
func WriteClear(w *bufio.Writer) {
	w.Write(csiClear)
}

// WriteCursorVisible writes the cursor show or hide sequence
func WriteCursorVisible(w *bufio.Writer, visible bool) {
	if visible {
		w.Write(csiCursorShow)
	} else {
		w.Write(csiCursorHide)
	}
}
