package decoder

// Static lookup tables used by the describer. Pure data, no behavior.

var csiCommandNames = map[byte]string{
	'@': "insert character",
	'A': "cursor up",
	'B': "cursor down",
	'C': "cursor forward",
	'D': "cursor back",
	'E': "cursor next line",
	'F': "cursor prev line",
	'G': "cursor horizontal absolute",
	'H': "cursor position",
	'I': "cursor horizontal tab",
	'J': "erase display",
	'K': "erase line",
	'L': "insert line",
	'M': "delete line",
	'P': "delete character",
	'S': "scroll up",
	'T': "scroll down",
	'X': "erase character",
	'Z': "cursor backward tab",
	'a': "cursor horizontal relative",
	'b': "repeat character",
	'c': "device attributes",
	'd': "cursor vertical absolute",
	'e': "cursor vertical relative",
	'f': "horizontal vertical position",
	'g': "tab clear",
	'h': "set mode",
	'l': "reset mode",
	'm': "SGR",
	'n': "device status report",
	'r': "set scrolling region",
	's': "save cursor",
	'u': "restore cursor",
}

var decModeNames = map[string]string{
	"1":    "application cursor keys",
	"3":    "132 column mode",
	"6":    "origin mode",
	"7":    "auto wrap",
	"12":   "blinking cursor",
	"25":   "show cursor",
	"47":   "alternate screen",
	"1000": "mouse X10 tracking",
	"1002": "mouse button events",
	"1003": "mouse all events",
	"1004": "focus events",
	"1006": "SGR mouse mode",
	"1049": "alt screen + save cursor",
	"2004": "bracketed paste",
	"2026": "synchronized output",
}

var sgrSingleNames = map[int]string{
	0:  "reset all",
	1:  "bold",
	2:  "dim",
	3:  "italic",
	4:  "underline",
	5:  "blink",
	7:  "reverse",
	8:  "hidden",
	9:  "strikethrough",
	21: "doubly underlined",
	22: "normal intensity",
	23: "not italic",
	24: "not underlined",
	25: "not blinking",
	27: "not reversed",
	28: "not hidden",
	29: "not strikethrough",
	39: "default fg",
	49: "default bg",
}
