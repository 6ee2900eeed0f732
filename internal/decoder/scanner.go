package decoder

import (
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// Scan splits data into a stream of tokens. It never fails: malformed or
// truncated sequences become tokens whose Raw span runs to the end of the
// buffer, and stray control bytes become single-byte Control tokens.
func Scan(data []byte) []Token {
	var toks []Token
	for i := 0; i < len(data); {
		tok, next := scanAt(data, i)
		toks = append(toks, tok)
		i = next
	}
	return toks
}

func scanAt(data []byte, i int) (Token, int) {
	switch data[i] {
	case ansi.ESC:
		return scanEscape(data, i)
	case ansi.BEL:
		return Token{Kind: KindBell, Raw: data[i : i+1]}, i + 1
	}
	if end := scanText(data, i); end > i {
		return Token{Kind: KindText, Raw: data[i:end]}, end
	}
	return Token{Kind: KindControl, Raw: data[i : i+1]}, i + 1
}

func scanEscape(data []byte, i int) (Token, int) {
	if i+1 >= len(data) {
		// dangling ESC at end of buffer
		return Token{Kind: KindEscape, Raw: data[i:]}, len(data)
	}
	switch data[i+1] {
	case '[':
		return scanCSI(data, i)
	case ']':
		raw, end := scanOSC(data, i)
		return Token{Kind: KindOSC, Raw: raw}, end
	case 'P':
		raw, end := scanToST(data, i)
		return Token{Kind: KindDCS, Raw: raw}, end
	case '^':
		raw, end := scanToST(data, i)
		return Token{Kind: KindPM, Raw: raw}, end
	case '_':
		raw, end := scanToST(data, i)
		return Token{Kind: KindAPC, Raw: raw}, end
	}
	return Token{Kind: KindEscape, Raw: data[i : i+2]}, i + 2
}

// scanCSI consumes ESC [ up to and including the first final byte in
// [0x40, 0x7e]. Without a final byte the span runs to the end of the buffer
// and Final stays zero.
func scanCSI(data []byte, i int) (Token, int) {
	for j := i + 2; j < len(data); j++ {
		if data[j] >= 0x40 && data[j] <= 0x7e {
			return Token{
				Kind:   KindCSI,
				Raw:    data[i : j+1],
				Params: string(data[i+2 : j]),
				Final:  data[j],
			}, j + 1
		}
	}
	return Token{Kind: KindCSI, Raw: data[i:]}, len(data)
}

// scanOSC consumes ESC ] up to and including the first BEL or ST terminator,
// whichever comes first.
func scanOSC(data []byte, i int) ([]byte, int) {
	for j := i + 2; j < len(data); j++ {
		if data[j] == ansi.BEL {
			return data[i : j+1], j + 1
		}
		if data[j] == ansi.ESC && j+1 < len(data) && data[j+1] == '\\' {
			return data[i : j+2], j + 2
		}
	}
	return data[i:], len(data)
}

// scanToST consumes an ESC-marker sequence (DCS, PM, APC) terminated only by
// ST (ESC \).
func scanToST(data []byte, i int) ([]byte, int) {
	for j := i + 2; j < len(data); j++ {
		if data[j] == ansi.ESC && j+1 < len(data) && data[j+1] == '\\' {
			return data[i : j+2], j + 2
		}
	}
	return data[i:], len(data)
}

func isC0(b byte) bool {
	return b < ansi.SP || b == ansi.DEL
}

// scanText extends a text run from i: tabs, CRs and LFs pass through, other
// C0 controls stop the run, and bytes >= 0x80 are taken one UTF-8 code point
// at a time. An invalid UTF-8 byte stops the run without being consumed.
func scanText(data []byte, i int) int {
	for i < len(data) {
		b := data[i]
		if b == ansi.ESC || b == ansi.BEL {
			break
		}
		if b == ansi.LF || b == ansi.CR || b == ansi.HT {
			i++
			continue
		}
		if isC0(b) {
			break
		}
		if b < utf8.RuneSelf {
			i++
			continue
		}
		_, sz := utf8.DecodeRune(data[i:])
		if sz == 1 {
			break
		}
		i += sz
	}
	return i
}
