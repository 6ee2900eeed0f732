package decoder

import (
	"fmt"
	"strconv"
	"strings"
)

// cursorForwardN reports whether tok is a CSI cursor-forward (final 'C') with
// a positive count. Empty params mean 1. These sequences never become report
// lines; the coalescer absorbs them as inline spaces.
func cursorForwardN(tok Token) (int, bool) {
	if tok.Kind != KindCSI || tok.Final != 'C' {
		return 0, false
	}
	if tok.Params == "" {
		return 1, true
	}
	n, err := strconv.Atoi(tok.Params)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func csiLine(tok Token) string {
	if len(tok.Raw) < 3 {
		return "CSI " + strconv.QuoteToASCII(string(tok.Raw))
	}
	final := tok.Final
	params := tok.Params
	if final == 0 {
		// unterminated sequence: render what we have in the same layout
		final = tok.Raw[len(tok.Raw)-1]
		params = string(tok.Raw[2 : len(tok.Raw)-1])
	}

	// DEC private mode set/reset
	if strings.HasPrefix(params, "?") && (final == 'h' || final == 'l') {
		mode := params[1:]
		var line string
		if final == 'h' {
			line = "DEC SET " + mode
		} else {
			line = "DEC RST " + mode
		}
		if name, ok := decModeNames[mode]; ok {
			line += " // " + name
		}
		return line
	}

	line := "CSI " + string(final)
	if params != "" {
		line += " " + params
	}
	if final == 'm' {
		if desc := describeSGR(params); desc != "" {
			line += " // " + desc
		}
	} else if name, ok := csiCommandNames[final]; ok {
		line += " // " + name
	}
	return line
}

func describeSGR(params string) string {
	if params == "" {
		return "reset all"
	}
	parts := strings.Split(params, ";")
	if len(parts) >= 5 && parts[0] == "38" && parts[1] == "2" {
		return fmt.Sprintf("fg rgb(%s,%s,%s)", parts[2], parts[3], parts[4])
	}
	if len(parts) >= 5 && parts[0] == "48" && parts[1] == "2" {
		return fmt.Sprintf("bg rgb(%s,%s,%s)", parts[2], parts[3], parts[4])
	}
	if len(parts) == 3 && parts[0] == "38" && parts[1] == "5" {
		return fmt.Sprintf("fg color256(%s)", parts[2])
	}
	if len(parts) == 3 && parts[0] == "48" && parts[1] == "5" {
		return fmt.Sprintf("bg color256(%s)", parts[2])
	}
	if len(parts) != 1 {
		// ambiguous combos like "1;99" get no description
		return ""
	}
	n, err := strconv.Atoi(parts[0])
	if err != nil {
		return ""
	}
	if name, ok := sgrSingleNames[n]; ok {
		return name
	}
	switch {
	case n >= 30 && n <= 37:
		return fmt.Sprintf("fg ansi color %d", n-30)
	case n >= 40 && n <= 47:
		return fmt.Sprintf("bg ansi color %d", n-40)
	case n >= 90 && n <= 97:
		return fmt.Sprintf("fg bright color %d", n-90)
	case n >= 100 && n <= 107:
		return fmt.Sprintf("bg bright color %d", n-100)
	}
	return ""
}

func oscLine(tok Token) string {
	if len(tok.Raw) < 3 {
		return "OSC " + strconv.QuoteToASCII(string(tok.Raw))
	}
	inner := string(tok.Raw[2:])
	inner = strings.TrimSuffix(inner, "\x07")
	inner = strings.TrimSuffix(inner, "\x1b\\")
	if idx := strings.IndexByte(inner, ';'); idx >= 0 {
		return "OSC " + inner[:idx] + " " + strconv.QuoteToASCII(inner[idx+1:])
	}
	return "OSC " + strconv.QuoteToASCII(inner)
}
