// Package decoder turns raw bytes captured from a terminal into a
// line-oriented debug report. It classifies VT100/ANSI/xterm control
// sequences and annotates the common ones, but never executes their effect
// and never fails: any input, however truncated or malformed, decodes to
// some deterministic output.
package decoder

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// Decode renders data as a newline-joined report, one line per sequence or
// coalesced text run. The result ends in a newline unless it is empty.
// Decode holds no state across calls and is safe to call concurrently.
func Decode(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	lines := make([]string, 0)
	var acc accumulator
	for _, tok := range Scan(data) {
		switch tok.Kind {
		case KindText:
			acc.addText(tok.Raw)
			continue
		case KindCSI:
			if n, ok := cursorForwardN(tok); ok {
				acc.addSpaces(n)
				continue
			}
		}
		lines = acc.flush(lines)
		lines = append(lines, tokenLine(tok))
	}
	lines = acc.flush(lines)
	return strings.Join(lines, "\n") + "\n"
}

func tokenLine(tok Token) string {
	switch tok.Kind {
	case KindControl:
		return fmt.Sprintf("CTL 0x%02x", tok.Raw[0])
	case KindBell:
		return "BEL"
	case KindEscape:
		if len(tok.Raw) == 1 {
			return "ESC"
		}
		return "ESC " + strconv.QuoteToASCII(string(tok.Raw))
	case KindCSI:
		return csiLine(tok)
	case KindOSC:
		return oscLine(tok)
	case KindDCS:
		return "DCS " + strconv.QuoteToASCII(string(tok.Raw))
	case KindPM:
		return "PM " + strconv.QuoteToASCII(string(tok.Raw))
	case KindAPC:
		return "APC " + strconv.QuoteToASCII(string(tok.Raw))
	}
	// KindText never reaches here; quote the raw span as a fallback
	return "TXT " + strconv.Quote(string(tok.Raw))
}

// HexDump renders data as a standard fixed-width hex dump: offset, 16 byte
// values per row, and an ASCII gutter.
func HexDump(data []byte) string {
	return hex.Dump(data)
}
