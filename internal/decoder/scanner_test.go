package decoder

import (
	"bytes"
	"testing"
)

// every scan must account for every input byte, in order, exactly once
func TestScanCoversInput(t *testing.T) {
	buffers := [][]byte{
		[]byte("plain text only"),
		[]byte("abc\x1b[31mred\x1b[0m\x07\x1b]0;title\x07\x00"),
		[]byte("\x1b"),
		[]byte("\x1b["),
		[]byte("\x1b[31"),
		[]byte("\x1b]no terminator"),
		[]byte("\x1bPdcs payload"),
		[]byte("\x1b^pm\x1b\\tail"),
		[]byte("\x1b_apc\x1b\\"),
		[]byte("a\xff\xfe\x00\x7f\tb\r\n"),
		[]byte("héllo wörld"),
		{0x1b, '[', '?', '2', '0', '0', '4', 'h', 0x07, 0x1b},
	}
	for _, buf := range buffers {
		var got []byte
		for _, tok := range Scan(buf) {
			got = append(got, tok.Raw...)
		}
		if !bytes.Equal(got, buf) {
			t.Fatalf("raw spans do not reproduce input:\nin:  %q\nout: %q", buf, got)
		}
	}
}

func TestScanKinds(t *testing.T) {
	toks := Scan([]byte("hi\x1b[1;2H\x1b]0;t\x07\x1bP1\x1b\\\x1b^p\x1b\\\x1b_a\x1b\\\x1b=\x07\x00"))
	wantKinds := []TokenKind{
		KindText, KindCSI, KindOSC, KindDCS, KindPM, KindAPC, KindEscape, KindBell, KindControl,
	}
	if len(toks) != len(wantKinds) {
		t.Fatalf("got %d tokens, want %d: %#v", len(toks), len(wantKinds), toks)
	}
	for i, k := range wantKinds {
		if toks[i].Kind != k {
			t.Fatalf("token %d: got kind %d, want %d (raw %q)", i, toks[i].Kind, k, toks[i].Raw)
		}
	}
}

func TestScanCSIFields(t *testing.T) {
	toks := Scan([]byte("\x1b[1;2H"))
	if len(toks) != 1 {
		t.Fatalf("expected one token, got %#v", toks)
	}
	tok := toks[0]
	if tok.Params != "1;2" || tok.Final != 'H' {
		t.Fatalf("unexpected CSI fields: params=%q final=%q", tok.Params, tok.Final)
	}
}

func TestScanUnterminatedCSI(t *testing.T) {
	toks := Scan([]byte("\x1b[31"))
	if len(toks) != 1 || toks[0].Kind != KindCSI {
		t.Fatalf("expected a single CSI token, got %#v", toks)
	}
	if toks[0].Final != 0 {
		t.Fatalf("unterminated CSI must have zero final, got %q", toks[0].Final)
	}
	if string(toks[0].Raw) != "\x1b[31" {
		t.Fatalf("unexpected raw span %q", toks[0].Raw)
	}
}

func TestScanOSCTerminators(t *testing.T) {
	// BEL-terminated: terminator included in the span
	toks := Scan([]byte("\x1b]0;a\x07x"))
	if string(toks[0].Raw) != "\x1b]0;a\x07" {
		t.Fatalf("BEL terminator not consumed: %q", toks[0].Raw)
	}
	// ST-terminated
	toks = Scan([]byte("\x1b]0;a\x1b\\x"))
	if string(toks[0].Raw) != "\x1b]0;a\x1b\\" {
		t.Fatalf("ST terminator not consumed: %q", toks[0].Raw)
	}
}

func TestScanTextStopsOnControls(t *testing.T) {
	toks := Scan([]byte("ab\x00cd"))
	if len(toks) != 3 {
		t.Fatalf("expected text/control/text, got %#v", toks)
	}
	if toks[0].Kind != KindText || string(toks[0].Raw) != "ab" {
		t.Fatalf("unexpected first token %#v", toks[0])
	}
	if toks[1].Kind != KindControl || toks[1].Raw[0] != 0x00 {
		t.Fatalf("unexpected control token %#v", toks[1])
	}
}

func TestScanUTF8(t *testing.T) {
	toks := Scan([]byte("héllo"))
	if len(toks) != 1 || string(toks[0].Raw) != "héllo" {
		t.Fatalf("multibyte text should stay one run: %#v", toks)
	}
	// invalid byte splits the run without being swallowed
	toks = Scan([]byte("a\xffb"))
	if len(toks) != 3 || toks[1].Kind != KindControl {
		t.Fatalf("invalid utf8 should yield a control token: %#v", toks)
	}
}
