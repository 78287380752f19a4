package terminal

// Key represents a recognized input chunk
type Key uint8

const (
	KeyNone Key = iota // Empty chunk, nothing pressed
	KeyOther           // Unrecognized input
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// Raw sequences matched against a whole input chunk
const (
	SeqEscape = "\x1b"
	SeqUp     = "\x1b[A"
	SeqDown   = "\x1b[B"
	SeqRight  = "\x1b[C"
	SeqLeft   = "\x1b[D"
)

// MaxSequenceLen is the read size used for one input chunk
const MaxSequenceLen = 5

var keyNames = map[Key]string{
	KeyNone:   "none",
	KeyOther:  "other",
	KeyEscape: "esc",
	KeyUp:     "up",
	KeyDown:   "down",
	KeyLeft:   "left",
	KeyRight:  "right",
}

// String returns a short key name for logging
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKey classifies a raw input chunk by exact match
// Chunks carrying several sequences or trailing bytes are KeyOther
func ParseKey(chunk []byte) Key {
	switch string(chunk) {
	case "":
		return KeyNone
	case SeqEscape:
		return KeyEscape
	case SeqUp:
		return KeyUp
	case SeqDown:
		return KeyDown
	case SeqLeft:
		return KeyLeft
	case SeqRight:
		return KeyRight
	}
	return KeyOther
}

// Sequence returns the canonical raw bytes for a key, nil for KeyNone and KeyOther
func Sequence(k Key) []byte {
	switch k {
	case KeyEscape:
		return []byte(SeqEscape)
	case KeyUp:
		return []byte(SeqUp)
	case KeyDown:
		return []byte(SeqDown)
	case KeyLeft:
		return []byte(SeqLeft)
	case KeyRight:
		return []byte(SeqRight)
	}
	return nil
}
