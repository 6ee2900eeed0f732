package decoder

import (
	"strings"
	"testing"
)

func TestNormalizeStringArray(t *testing.T) {
	data := Normalize([]byte(`["abc","\u001b[31mred","\u001b[0m"]`))
	if string(data) != "abc\x1b[31mred\x1b[0m" {
		t.Fatalf("unexpected normalized buffer %q", data)
	}
	output := Decode(data)
	for _, line := range []string{`TXT "abc"`, `CSI m 31`, `TXT "red"`, `CSI m 0`} {
		if !strings.Contains(output, line) {
			t.Fatalf("missing decode line %q in output %q", line, output)
		}
	}
}

func TestNormalizeObjectArray(t *testing.T) {
	data := Normalize([]byte(`[{"data":"abc"},{"data":"\u001b[31mred"},{"data":"\u001b[0m"}]`))
	if string(data) != "abc\x1b[31mred\x1b[0m" {
		t.Fatalf("unexpected normalized buffer %q", data)
	}
}

func TestNormalizeBothEncodingsAgree(t *testing.T) {
	a := Normalize([]byte(`["abc","\u001b[31mred","\u001b[0m"]`))
	b := Normalize([]byte(`[{"data":"abc"},{"data":"\u001b[31mred"},{"data":"\u001b[0m"}]`))
	if string(a) != string(b) {
		t.Fatalf("encodings disagree: %q vs %q", a, b)
	}
}

func TestNormalizeRawPassthrough(t *testing.T) {
	raw := []byte("hello\x1b[31mworld")
	if got := Normalize(raw); string(got) != string(raw) {
		t.Fatalf("expected raw passthrough, got %q", got)
	}
}

func TestNormalizeMalformedJSON(t *testing.T) {
	raw := []byte(`[oops not json`)
	if got := Normalize(raw); string(got) != string(raw) {
		t.Fatalf("malformed JSON must pass through, got %q", got)
	}
}

func TestNormalizeLeadingWhitespace(t *testing.T) {
	if got := Normalize([]byte("  [\"a\",\"b\"]")); string(got) != "ab" {
		t.Fatalf("whitespace-led JSON should parse, got %q", got)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	if got := Normalize(nil); len(got) != 0 {
		t.Fatalf("empty input must pass through, got %q", got)
	}
	if got := Normalize([]byte("  ")); string(got) != "  " {
		t.Fatalf("whitespace input must pass through unchanged, got %q", got)
	}
}
