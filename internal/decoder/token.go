package decoder

// TokenKind discriminates the classified spans of a terminal byte stream.
type TokenKind int

const (
	KindText TokenKind = iota
	KindControl
	KindBell
	KindEscape
	KindCSI
	KindOSC
	KindDCS
	KindPM
	KindAPC
)

// Token is one classified span of captured terminal output. Raw always holds
// the exact bytes the scanner consumed for it, so concatenating Raw over a
// full scan reproduces the input byte-for-byte.
//
// Params and Final are set only for a terminated CSI token. An unterminated
// CSI (no final byte before the end of the buffer) carries a zero Final and
// is rendered from Raw alone.
type Token struct {
	Kind   TokenKind
	Raw    []byte
	Params string
	Final  byte
}
