package decoder

import (
	"testing"
)

func TestDescribeSGR(t *testing.T) {
	cases := []struct {
		params string
		want   string
	}{
		{"", "reset all"},
		{"0", "reset all"},
		{"1", "bold"},
		{"4", "underline"},
		{"39", "default fg"},
		{"31", "fg ansi color 1"},
		{"47", "bg ansi color 7"},
		{"97", "fg bright color 7"},
		{"100", "bg bright color 0"},
		{"38;2;10;20;30", "fg rgb(10,20,30)"},
		{"48;2;1;2;3", "bg rgb(1,2,3)"},
		{"38;5;208", "fg color256(208)"},
		{"48;5;16", "bg color256(16)"},
		{"1;99", ""},
		{"6", ""},
		{"xyz", ""},
		{"38;5", ""},
	}
	for _, tc := range cases {
		if got := describeSGR(tc.params); got != tc.want {
			t.Fatalf("describeSGR(%q) = %q, want %q", tc.params, got, tc.want)
		}
	}
}

func scanOne(t *testing.T, in string) Token {
	t.Helper()
	toks := Scan([]byte(in))
	if len(toks) != 1 {
		t.Fatalf("expected one token for %q, got %#v", in, toks)
	}
	return toks[0]
}

func TestCSILine(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"\x1b[m", "CSI m // reset all"},
		{"\x1b[31m", "CSI m 31 // fg ansi color 1"},
		{"\x1b[1;99m", "CSI m 1;99"},
		{"\x1b[2J", "CSI J 2 // erase display"},
		{"\x1b[H", "CSI H // cursor position"},
		{"\x1b[?25h", "DEC SET 25 // show cursor"},
		{"\x1b[?1049l", "DEC RST 1049 // alt screen + save cursor"},
		{"\x1b[5~", "CSI ~ 5"},
		{"\x1b[", `CSI "\x1b["`},
	}
	for _, tc := range cases {
		if got := csiLine(scanOne(t, tc.in)); got != tc.want {
			t.Fatalf("csiLine(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestOSCLine(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"\x1b]0;title\x07", `OSC 0 "title"`},
		{"\x1b]0;title\x1b\\", `OSC 0 "title"`},
		{"\x1b]8;;http://x\x07", `OSC 8 ";http://x"`},
		{"\x1b]notitle\x07", `OSC "notitle"`},
		{"\x1b]0;tit", `OSC 0 "tit"`},
	}
	for _, tc := range cases {
		if got := oscLine(scanOne(t, tc.in)); got != tc.want {
			t.Fatalf("oscLine(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCursorForwardN(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		ok   bool
	}{
		{"\x1b[C", 1, true},
		{"\x1b[1C", 1, true},
		{"\x1b[12C", 12, true},
		{"\x1b[0C", 0, false},
		{"\x1b[-2C", 0, false},
		{"\x1b[1;2C", 0, false},
		{"\x1b[2D", 0, false},
	}
	for _, tc := range cases {
		n, ok := cursorForwardN(scanOne(t, tc.in))
		if n != tc.n || ok != tc.ok {
			t.Fatalf("cursorForwardN(%q) = (%d, %v), want (%d, %v)", tc.in, n, ok, tc.n, tc.ok)
		}
	}
}
